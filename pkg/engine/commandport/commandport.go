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
	"net"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/sceneport/pkg/engine"
	"gitlab.com/tozd/go/errors"
)

// errorPrefix marks a host diagnostic line in a command port reply
const errorPrefix = "// Error:"

// warningPrefix marks a host warning line, which is logged and dropped
const warningPrefix = "// Warning:"

func init() {
	engine.Register("commandport", New)
}

// 🔌 Client is an Engine speaking the host's command port protocol: one TCP
// connection, one command per round trip, replies terminated by a NUL byte.
// The host runs script commands single-threaded, so the client serializes
// dispatches with a mutex rather than pipelining.
type Client struct {
	addr    string
	timeout time.Duration

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

// 🏭 New dials the host command port and returns a connected client
func New(ctx context.Context, opts engine.Options) (engine.Engine, error) {
	if opts.Address == "" {
		return nil, errors.Errorf("command port address is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", opts.Address)
	if err != nil {
		return nil, errors.Errorf("dialing command port %s: %w", opts.Address, err)
	}

	zerolog.Ctx(ctx).Debug().Str("address", opts.Address).Msg("connected to host command port")

	return &Client{
		addr:    opts.Address,
		timeout: timeout,
		conn:    conn,
		reader:  bufio.NewReader(conn),
	}, nil
}

// 🚀 Dispatch sends one encoded invocation and decodes the host's reply.
// Host-reported failures come back as *engine.CommandError, untouched.
func (c *Client) Dispatch(ctx context.Context, inv engine.Invocation) (engine.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return engine.Result{}, errors.Errorf("command port connection is closed")
	}

	command := inv.Encode()
	zerolog.Ctx(ctx).Trace().Str("command", command).Msg("dispatching host command")

	if err := c.conn.SetDeadline(c.deadline(ctx)); err != nil {
		return engine.Result{}, errors.Errorf("setting connection deadline: %w", err)
	}

	if _, err := c.conn.Write([]byte(command + "\n")); err != nil {
		return engine.Result{}, errors.Errorf("writing command to host: %w", err)
	}

	reply, err := c.reader.ReadString('\x00')
	if err != nil {
		return engine.Result{}, errors.Errorf("reading host reply: %w", err)
	}

	return c.decodeReply(ctx, inv.Command, reply)
}

// 🔒 Close shuts down the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	if err != nil {
		return errors.Errorf("closing command port connection: %w", err)
	}
	return nil
}

// deadline picks the context deadline when one is set, the configured
// timeout otherwise
func (c *Client) deadline(ctx context.Context) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return time.Now().Add(c.timeout)
}

// decodeReply strips warnings, surfaces host errors, and parses the rest
func (c *Client) decodeReply(ctx context.Context, command, reply string) (engine.Result, error) {
	logger := zerolog.Ctx(ctx)

	var kept []string
	for _, line := range strings.Split(strings.Trim(reply, "\x00\r\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, errorPrefix):
			message := strings.TrimSpace(strings.TrimPrefix(trimmed, errorPrefix))
			return engine.Result{}, &engine.CommandError{Command: command, Message: message}
		case strings.HasPrefix(trimmed, warningPrefix):
			logger.Warn().Str("command", command).Msg(strings.TrimSpace(strings.TrimPrefix(trimmed, warningPrefix)))
		default:
			kept = append(kept, line)
		}
	}

	return engine.ParseReply(command, strings.Join(kept, "\n")), nil
}
