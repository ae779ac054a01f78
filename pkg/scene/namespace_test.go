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
)

func TestNamespaceNormalization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "absolute_form", raw: ":character:rig", want: "character:rig"},
		{name: "relative_form", raw: "character:rig", want: "character:rig"},
		{name: "root", raw: ":", want: ""},
		{name: "whitespace", raw: "  :prop ", want: "prop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNamespace(tt.raw).String(), "normalized form should match")
		})
	}

	// Equal namespaces compare equal regardless of the input form.
	assert.Equal(t, NewNamespace(":a:b"), NewNamespace("a:b"), "absolute and relative forms should be the same namespace")
}

func TestNamespaceHierarchy(t *testing.T) {
	ns := NewNamespace("character:rig:controls")
	assert.Equal(t, "controls", ns.Leaf(), "leaf should match")
	assert.Equal(t, "character:rig", ns.Parent().String(), "parent should match")
	assert.Equal(t, ":character:rig:controls", ns.Absolute(), "absolute form should match")

	root := NewNamespace("")
	assert.True(t, root.IsRoot(), "zero namespace should be the root")
	assert.True(t, root.Parent().IsRoot(), "root should be its own parent")
	assert.Equal(t, ":", root.Absolute(), "root absolute form should be a bare colon")
}

func TestAddNamespace(t *testing.T) {
	s, rec := newTestSession()
	rec.EnqueueResult("prop")

	ns, err := s.AddNamespace(context.Background(), "prop")
	require.NoError(t, err, "add should succeed")
	assert.Equal(t, "prop", ns.String(), "created namespace should match")

	inv, _ := rec.Last()
	assert.Equal(t, "namespace", inv.Command, "command should match")
	name, ok := enginetest.FlagValue(inv, "add")
	require.True(t, ok, "add flag should carry the name")
	assert.Equal(t, "prop", name, "name should match")
}

func TestRemoveNamespaceMergeWithRoot(t *testing.T) {
	s, rec := newTestSession()

	err := s.RemoveNamespace(context.Background(), NewNamespace("prop"), MergeWithRoot())
	require.NoError(t, err, "remove should succeed")

	inv, _ := rec.Last()
	target, ok := enginetest.FlagValue(inv, "removeNamespace")
	require.True(t, ok, "removeNamespace flag should carry the namespace")
	assert.Equal(t, ":prop", target, "host should receive the absolute form")
	assert.True(t, enginetest.HasFlag(inv, "mergeNamespaceWithRoot"), "merge option should be forwarded")
}

func TestListNamespaces(t *testing.T) {
	s, rec := newTestSession()
	rec.EnqueueResult("character", "character:rig", "prop")

	namespaces, err := s.ListNamespaces(context.Background(), true)
	require.NoError(t, err, "list should succeed")
	require.Len(t, namespaces, 3, "all namespaces should be returned")
	assert.Equal(t, "character:rig", namespaces[1].String(), "nested namespace should be normalized")

	inv, _ := rec.Last()
	assert.Equal(t, "namespaceInfo", inv.Command, "listing should use namespaceInfo")
	assert.True(t, enginetest.HasFlag(inv, "listOnlyNamespaces"), "listing should exclude nodes")
	assert.True(t, enginetest.HasFlag(inv, "recurse"), "recurse should be forwarded")
}

func TestCurrentNamespace(t *testing.T) {
	s, rec := newTestSession()
	rec.EnqueueResult(":character:rig")

	ns, err := s.CurrentNamespace(context.Background())
	require.NoError(t, err, "query should succeed")
	assert.Equal(t, "character:rig", ns.String(), "host's absolute reply should be normalized")

	inv, _ := rec.Last()
	assert.True(t, enginetest.HasFlag(inv, "currentNamespace"), "query should use currentNamespace")
	assert.True(t, enginetest.HasFlag(inv, "absoluteName"), "query should request the absolute form")
}
