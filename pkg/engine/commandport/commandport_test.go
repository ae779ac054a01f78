// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commandport

import (
	"bufio"
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sceneport/pkg/engine"
	"github.com/walteh/sceneport/pkg/flagset"
)

// fakeHost is a minimal command port: it reads one command line at a time
// and answers with the canned reply registered for it.
func fakeHost(t *testing.T, replies map[string]string) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "listening should succeed")
	t.Cleanup(func() { listener.Close() })

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		reader := bufio.NewReader(conn)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			reply, ok := replies[line[:len(line)-1]]
			if !ok {
				reply = ""
			}
			if _, err := conn.Write(append([]byte(reply), 0)); err != nil {
				return
			}
		}
	}()

	return listener.Addr().String()
}

func testContext() context.Context {
	return zerolog.New(os.Stderr).WithContext(context.Background())
}

func TestDispatch(t *testing.T) {
	addr := fakeHost(t, map[string]string{
		`file -q -sceneName;`: "/projects/shot010.ma\n",
		`file -q -reference;`: "/assets/prop.ma\t/assets/set.ma\n",
	})

	ctx := testContext()
	eng, err := New(ctx, engine.Options{Address: addr, Timeout: time.Second})
	require.NoError(t, err, "connecting should succeed")
	defer eng.Close()

	res, err := eng.Dispatch(ctx, engine.Invocation{
		Command: "file",
		Mode:    flagset.Query,
		Flags:   []engine.Flag{{Name: "sceneName"}},
	})
	require.NoError(t, err, "dispatch should succeed")

	name, err := res.String()
	require.NoError(t, err, "scene name should be a single value")
	assert.Equal(t, "/projects/shot010.ma", name, "scene name should match")

	res, err = eng.Dispatch(ctx, engine.Invocation{
		Command: "file",
		Mode:    flagset.Query,
		Flags:   []engine.Flag{{Name: "reference"}},
	})
	require.NoError(t, err, "dispatch should succeed")
	assert.Equal(t, []string{"/assets/prop.ma", "/assets/set.ma"}, res.Strings(), "reference list should match")
}

func TestDispatchHostError(t *testing.T) {
	addr := fakeHost(t, map[string]string{
		`file -open "/missing.ma";`: "// Error: file not found: /missing.ma\n",
	})

	ctx := testContext()
	eng, err := New(ctx, engine.Options{Address: addr, Timeout: time.Second})
	require.NoError(t, err, "connecting should succeed")
	defer eng.Close()

	_, err = eng.Dispatch(ctx, engine.Invocation{
		Command: "file",
		Mode:    flagset.Create,
		Flags:   []engine.Flag{{Name: "open"}},
		Targets: []string{"/missing.ma"},
	})
	require.Error(t, err, "host error should propagate")

	var cmdErr *engine.CommandError
	require.True(t, errors.As(err, &cmdErr), "error should be *engine.CommandError")
	assert.Equal(t, "file", cmdErr.Command, "failing command should match")
	assert.Equal(t, "file not found: /missing.ma", cmdErr.Message, "host diagnostic should pass through verbatim")
}

func TestDispatchStripsWarnings(t *testing.T) {
	addr := fakeHost(t, map[string]string{
		`file -import "/assets/prop.ma";`: "// Warning: deferred nodes\n/assets/prop.ma\n",
	})

	ctx := testContext()
	eng, err := New(ctx, engine.Options{Address: addr, Timeout: time.Second})
	require.NoError(t, err, "connecting should succeed")
	defer eng.Close()

	res, err := eng.Dispatch(ctx, engine.Invocation{
		Command: "file",
		Mode:    flagset.Create,
		Flags:   []engine.Flag{{Name: "import"}},
		Targets: []string{"/assets/prop.ma"},
	})
	require.NoError(t, err, "dispatch should succeed")

	path, err := res.String()
	require.NoError(t, err, "result should be a single value")
	assert.Equal(t, "/assets/prop.ma", path, "warnings should not leak into the result")
}

func TestDispatchAfterClose(t *testing.T) {
	addr := fakeHost(t, nil)

	ctx := testContext()
	eng, err := New(ctx, engine.Options{Address: addr, Timeout: time.Second})
	require.NoError(t, err, "connecting should succeed")
	require.NoError(t, eng.Close(), "close should succeed")

	_, err = eng.Dispatch(ctx, engine.Invocation{Command: "file", Mode: flagset.Query})
	require.Error(t, err, "dispatch after close should fail")
	assert.Contains(t, err.Error(), "closed", "error should mention the closed connection")
}

func TestNewRequiresAddress(t *testing.T) {
	_, err := New(testContext(), engine.Options{})
	require.Error(t, err, "missing address should fail")
	assert.Contains(t, err.Error(), "address", "error should mention the address")
}
