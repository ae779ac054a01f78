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
	"strings"

	"github.com/walteh/sceneport/pkg/fileformat"
	"github.com/walteh/sceneport/pkg/flagset"
	"gitlab.com/tozd/go/errors"
)

// 🔗 FileReference is a handle on one file reference in the scene. It holds
// only the reference node's name; the path and namespace it implies are
// re-queried from the host on every access, because the host can change
// them out-of-band (a user renaming the reference in the UI, for one).
type FileReference struct {
	s    *Session
	node string
}

// 🏗️ ReferenceByNode wraps an already-known reference node name without
// touching the host
func (s *Session) ReferenceByNode(node string) *FileReference {
	return &FileReference{s: s, node: node}
}

// 🔗 CreateReference references a file into the current scene and returns
// a handle on the reference node the host created
func (s *Session) CreateReference(ctx context.Context, path string, opts ...Option) (*FileReference, error) {
	o := newOptions(kv{keyword: "reference"}).apply(opts)
	o.defaultType(path, fileformat.Read)

	res, err := s.dispatch(ctx, "file", flagset.Create, o.kvs, path)
	if err != nil {
		return nil, errors.Errorf("creating reference: %w", err)
	}
	resolved := resultPath(res, path)

	node, err := s.referenceNodeOf(ctx, resolved.String())
	if err != nil {
		return nil, err
	}
	return &FileReference{s: s, node: node}, nil
}

// 📜 ListReferences returns a handle for every top-level file reference in
// the scene
func (s *Session) ListReferences(ctx context.Context) ([]*FileReference, error) {
	res, err := s.dispatch(ctx, "file", flagset.Query, []kv{{keyword: "reference"}})
	if err != nil {
		return nil, errors.Errorf("listing references: %w", err)
	}

	refs := make([]*FileReference, 0, len(res.Strings()))
	for _, path := range res.Strings() {
		node, err := s.referenceNodeOf(ctx, path)
		if err != nil {
			return nil, err
		}
		refs = append(refs, &FileReference{s: s, node: node})
	}
	return refs, nil
}

// referenceNodeOf maps a reference file path to its reference node
func (s *Session) referenceNodeOf(ctx context.Context, path string) (string, error) {
	res, err := s.dispatch(ctx, "file", flagset.Query, []kv{{keyword: "referenceNode"}}, path)
	if err != nil {
		return "", errors.Errorf("resolving reference node for %s: %w", path, err)
	}
	node, err := res.String()
	if err != nil {
		return "", errors.Errorf("resolving reference node for %s: %w", path, err)
	}
	return node, nil
}

// RefNode returns the reference node's name
func (r *FileReference) RefNode() string {
	return r.node
}

// String returns the reference node's name
func (r *FileReference) String() string {
	return r.node
}

// 🔍 Path returns the reference's resolved file path
func (r *FileReference) Path(ctx context.Context) (Path, error) {
	return r.queryPath(ctx, kv{keyword: "filename"})
}

// 🔍 UnresolvedPath returns the path as stored in the referencing scene,
// before the host's search rules resolve it
func (r *FileReference) UnresolvedPath(ctx context.Context) (Path, error) {
	return r.queryPath(ctx, kv{keyword: "filename"}, kv{keyword: "unresolvedName"})
}

func (r *FileReference) queryPath(ctx context.Context, kvs ...kv) (Path, error) {
	res, err := r.s.dispatch(ctx, "referenceQuery", flagset.Create, kvs, r.node)
	if err != nil {
		return Path{}, errors.Errorf("querying reference path: %w", err)
	}
	path, err := res.String()
	if err != nil {
		return Path{}, errors.Errorf("querying reference path: %w", err)
	}
	return NewPath(path), nil
}

// 🔍 Namespace returns the namespace the reference's content lives in
func (r *FileReference) Namespace(ctx context.Context) (Namespace, error) {
	kvs := []kv{{keyword: "namespace"}}
	res, err := r.s.dispatch(ctx, "referenceQuery", flagset.Create, kvs, r.node)
	if err != nil {
		return Namespace{}, errors.Errorf("querying reference namespace: %w", err)
	}
	name, err := res.String()
	if err != nil {
		return Namespace{}, errors.Errorf("querying reference namespace: %w", err)
	}
	return NewNamespace(name), nil
}

// 🔍 IsLoaded reports whether the reference's content is currently loaded
func (r *FileReference) IsLoaded(ctx context.Context) (bool, error) {
	return r.queryBool(ctx, "isLoaded")
}

// 🔍 IsDeferred reports whether the reference was created deferred
func (r *FileReference) IsDeferred(ctx context.Context) (bool, error) {
	return r.queryBool(ctx, "isDeferred")
}

func (r *FileReference) queryBool(ctx context.Context, keyword string) (bool, error) {
	res, err := r.s.dispatch(ctx, "referenceQuery", flagset.Create, []kv{{keyword: keyword}}, r.node)
	if err != nil {
		return false, errors.Errorf("querying reference %s: %w", keyword, err)
	}
	value, err := res.Bool()
	if err != nil {
		return false, errors.Errorf("querying reference %s: %w", keyword, err)
	}
	return value, nil
}

// 🔍 Nodes returns the names of the nodes the reference brought in
func (r *FileReference) Nodes(ctx context.Context) ([]string, error) {
	res, err := r.s.dispatch(ctx, "referenceQuery", flagset.Create, []kv{{keyword: "nodes"}}, r.node)
	if err != nil {
		return nil, errors.Errorf("querying reference nodes: %w", err)
	}
	return res.Strings(), nil
}

// 🔍 Parent returns the reference this one is nested under, or nil for a
// top-level reference
func (r *FileReference) Parent(ctx context.Context) (*FileReference, error) {
	kvs := []kv{{keyword: "referenceNode"}, {keyword: "parent"}}
	res, err := r.s.dispatch(ctx, "referenceQuery", flagset.Create, kvs, r.node)
	if err != nil {
		return nil, errors.Errorf("querying parent reference: %w", err)
	}
	if res.IsEmpty() {
		return nil, nil
	}
	node, err := res.String()
	if err != nil {
		return nil, errors.Errorf("querying parent reference: %w", err)
	}
	return &FileReference{s: r.s, node: node}, nil
}

// ▶️ Load loads (or reloads) the reference's content
func (r *FileReference) Load(ctx context.Context) error {
	kvs := []kv{{keyword: "loadReference", value: r.node}}
	if _, err := r.s.dispatch(ctx, "file", flagset.Create, kvs); err != nil {
		return errors.Errorf("loading reference: %w", err)
	}
	return nil
}

// 🔄 ReplaceWith loads a different file into this reference node
func (r *FileReference) ReplaceWith(ctx context.Context, path string, opts ...Option) error {
	o := newOptions(kv{keyword: "loadReference", value: r.node}).apply(opts)
	o.defaultType(path, fileformat.Read)

	if _, err := r.s.dispatch(ctx, "file", flagset.Create, o.kvs, path); err != nil {
		return errors.Errorf("replacing reference with %s: %w", path, err)
	}
	return nil
}

// ⏸️ Unload unloads the reference's content, keeping the reference
func (r *FileReference) Unload(ctx context.Context) error {
	kvs := []kv{{keyword: "unloadReference", value: r.node}}
	if _, err := r.s.dispatch(ctx, "file", flagset.Create, kvs); err != nil {
		return errors.Errorf("unloading reference: %w", err)
	}
	return nil
}

// 🗑️ Remove removes the reference from the scene entirely
func (r *FileReference) Remove(ctx context.Context, opts ...Option) error {
	o := newOptions(kv{keyword: "removeReference"}).apply(opts)
	if _, err := r.s.dispatch(ctx, "file", flagset.Create, o.kvs, r.node); err != nil {
		return errors.Errorf("removing reference: %w", err)
	}
	return nil
}

// 📥 ImportContents imports the referenced file's content into the scene,
// severing the reference
func (r *FileReference) ImportContents(ctx context.Context) error {
	kvs := []kv{{keyword: "importReference"}}
	if _, err := r.s.dispatch(ctx, "file", flagset.Create, kvs, r.node); err != nil {
		return errors.Errorf("importing reference contents: %w", err)
	}
	return nil
}

// ✏️ ReferenceEdit is one recorded edit applied on top of a reference, in
// the host's own edit-command syntax
type ReferenceEdit struct {
	raw string
}

// String returns the raw edit string
func (e ReferenceEdit) String() string {
	return e.raw
}

// Command returns the host command the edit replays, e.g. "setAttr"
func (e ReferenceEdit) Command() string {
	fields := strings.Fields(e.raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// 📜 Edits returns the edits recorded against the reference. Narrow with
// EditCommand, FailedEdits, or SuccessfulEdits.
func (r *FileReference) Edits(ctx context.Context, opts ...Option) ([]ReferenceEdit, error) {
	o := newOptions(kv{keyword: "editStrings"}).apply(opts)

	res, err := r.s.dispatch(ctx, "referenceQuery", flagset.Create, o.kvs, r.node)
	if err != nil {
		return nil, errors.Errorf("querying reference edits: %w", err)
	}

	edits := make([]ReferenceEdit, 0, len(res.Strings()))
	for _, raw := range res.Strings() {
		edits = append(edits, ReferenceEdit{raw: raw})
	}
	return edits, nil
}

// 🗑️ RemoveEdits discards recorded edits. The host requires the reference
// to be unloaded first; that failure propagates as-is.
func (r *FileReference) RemoveEdits(ctx context.Context, opts ...Option) error {
	o := newOptions(kv{keyword: "removeEdits"}).apply(opts)

	if _, err := r.s.dispatch(ctx, "referenceEdit", flagset.Create, o.kvs, r.node); err != nil {
		return errors.Errorf("removing reference edits: %w", err)
	}
	return nil
}
