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

package scene

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sceneport/pkg/engine/enginetest"
	"github.com/walteh/sceneport/pkg/flagset"
)

func TestFileInfoGet(t *testing.T) {
	s, rec := newTestSession()
	info := s.FileInfo()
	ctx := context.Background()

	rec.EnqueueResult("2024")
	value, ok, err := info.Get(ctx, "fiscalYear")
	require.NoError(t, err, "get should succeed")
	assert.True(t, ok, "present key should report ok")
	assert.Equal(t, "2024", value, "value should match")

	// Missing keys come back empty, not as errors.
	value, ok, err = info.Get(ctx, "missing")
	require.NoError(t, err, "missing key should not fail")
	assert.False(t, ok, "missing key should report not ok")
	assert.Empty(t, value, "missing key should have no value")

	inv, _ := rec.Last()
	assert.Equal(t, "fileInfo", inv.Command, "command should match")
	assert.Equal(t, flagset.Query, inv.Mode, "get is a query")
	assert.Equal(t, []string{"missing"}, inv.Targets, "key should be the target")
}

func TestFileInfoSetDelete(t *testing.T) {
	s, rec := newTestSession()
	info := s.FileInfo()
	ctx := context.Background()

	require.NoError(t, info.Set(ctx, "department", "layout"), "set should succeed")
	require.NoError(t, info.Delete(ctx, "department"), "delete should succeed")

	invs := rec.Invocations()
	require.Len(t, invs, 2, "set and delete should dispatch once each")

	assert.Equal(t, flagset.Create, invs[0].Mode, "set is a create call")
	assert.Equal(t, []string{"department", "layout"}, invs[0].Targets, "set should pass key and value as targets")

	key, ok := enginetest.FlagValue(invs[1], "remove")
	require.True(t, ok, "delete should use the remove flag")
	assert.Equal(t, "department", key, "removed key should match")
}

func TestFileInfoAll(t *testing.T) {
	s, rec := newTestSession()
	rec.EnqueueResult("application", "maya", "fiscalYear", "2024")

	pairs, err := s.FileInfo().All(context.Background())
	require.NoError(t, err, "listing should succeed")
	require.Len(t, pairs, 2, "pairs should be grouped")
	assert.Equal(t, [2]string{"application", "maya"}, pairs[0], "first pair should match")
	assert.Equal(t, [2]string{"fiscalYear", "2024"}, pairs[1], "second pair should match")
}

func TestFileInfoTwoHandlesObserveSameState(t *testing.T) {
	// Handles hold no state; both read whatever the host has now.
	s, rec := newTestSession()
	a := s.FileInfo()
	b := s.FileInfo()
	ctx := context.Background()

	rec.EnqueueResult("layout")
	value, _, err := a.Get(ctx, "department")
	require.NoError(t, err, "get should succeed")
	assert.Equal(t, "layout", value, "first handle should see the value")

	rec.EnqueueResult("animation")
	value, _, err = b.Get(ctx, "department")
	require.NoError(t, err, "get should succeed")
	assert.Equal(t, "animation", value, "second handle should see the host's newer value")
}
