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

func TestCreateReference(t *testing.T) {
	s, rec := newTestSession()
	rec.EnqueueResult("/assets/prop.ma")  // file -reference reply
	rec.EnqueueResult("propRN")           // referenceNode lookup

	ref, err := s.CreateReference(context.Background(), "/assets/prop.ma", InNamespace("prop"))
	require.NoError(t, err, "create reference should succeed")
	assert.Equal(t, "propRN", ref.RefNode(), "handle should hold the reference node")

	invs := rec.Invocations()
	require.Len(t, invs, 2, "create should dispatch the reference then resolve its node")

	assert.True(t, enginetest.HasFlag(invs[0], "reference"), "reference flag should be present")
	ns, ok := enginetest.FlagValue(invs[0], "namespace")
	require.True(t, ok, "namespace flag should be present")
	assert.Equal(t, "prop", ns, "namespace should match the option")
	format, ok := enginetest.FlagValue(invs[0], "type")
	require.True(t, ok, "type flag should be present")
	assert.Equal(t, "mayaAscii", format, "format should be inferred from the extension")

	assert.True(t, enginetest.HasFlag(invs[1], "referenceNode"), "node lookup should use referenceNode")
	assert.Equal(t, []string{"/assets/prop.ma"}, invs[1].Targets, "node lookup should target the resolved path")
}

func TestReferenceAccessorsRequery(t *testing.T) {
	// Every accessor goes back to the host; nothing is cached on the handle.
	s, rec := newTestSession()
	ref := s.ReferenceByNode("propRN")
	ctx := context.Background()

	rec.EnqueueResult("/assets/prop.ma")
	p, err := ref.Path(ctx)
	require.NoError(t, err, "path query should succeed")
	assert.Equal(t, "/assets/prop.ma", p.String(), "path should match the host reply")

	rec.EnqueueResult("/assets/prop.ma{2}")
	p, err = ref.Path(ctx)
	require.NoError(t, err, "path query should succeed")
	assert.Equal(t, "/assets/prop.ma{2}", p.String(), "a second query should observe the host's new answer")

	assert.Equal(t, 2, rec.Count(), "each accessor call should dispatch")
	for _, inv := range rec.Invocations() {
		assert.Equal(t, "referenceQuery", inv.Command, "accessors should use referenceQuery")
		assert.Equal(t, []string{"propRN"}, inv.Targets, "accessors should target the reference node")
	}
}

func TestReferenceLoadUnload(t *testing.T) {
	s, rec := newTestSession()
	ref := s.ReferenceByNode("propRN")
	ctx := context.Background()

	require.NoError(t, ref.Load(ctx), "load should succeed")
	require.NoError(t, ref.Unload(ctx), "unload should succeed")
	require.NoError(t, ref.Remove(ctx, Force()), "remove should succeed")

	invs := rec.Invocations()
	require.Len(t, invs, 3, "each operation should dispatch once")

	node, ok := enginetest.FlagValue(invs[0], "loadReference")
	require.True(t, ok, "load should pass the node to loadReference")
	assert.Equal(t, "propRN", node, "load target should be the node")

	node, ok = enginetest.FlagValue(invs[1], "unloadReference")
	require.True(t, ok, "unload should pass the node to unloadReference")
	assert.Equal(t, "propRN", node, "unload target should be the node")

	assert.True(t, enginetest.HasFlag(invs[2], "removeReference"), "remove should use removeReference")
	assert.True(t, enginetest.HasFlag(invs[2], "force"), "remove should carry the force option")
	assert.Equal(t, []string{"propRN"}, invs[2].Targets, "remove should target the node")
}

func TestReferenceParentTopLevel(t *testing.T) {
	s, _ := newTestSession()
	ref := s.ReferenceByNode("propRN")

	parent, err := ref.Parent(context.Background())
	require.NoError(t, err, "parent query should succeed")
	assert.Nil(t, parent, "a top-level reference has no parent")
}

func TestReferenceEdits(t *testing.T) {
	s, rec := newTestSession()
	ref := s.ReferenceByNode("propRN")
	rec.EnqueueResult(
		`setAttr "prop:geo.visibility" 0`,
		`parent "prop:geo" "rig:root"`,
	)

	edits, err := ref.Edits(context.Background(), SuccessfulEdits(true))
	require.NoError(t, err, "edits query should succeed")
	require.Len(t, edits, 2, "both edits should be returned")
	assert.Equal(t, "setAttr", edits[0].Command(), "edit command should be the first field")
	assert.Equal(t, "parent", edits[1].Command(), "edit command should be the first field")

	inv, _ := rec.Last()
	assert.True(t, enginetest.HasFlag(inv, "editStrings"), "edits should be queried as strings")
	assert.True(t, enginetest.HasFlag(inv, "successfulEdits"), "filter option should be forwarded")
}
