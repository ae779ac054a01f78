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

// Package scene is the facade over the host's scene and file management
// commands. Every method maps friendly arguments onto the host's flag
// calling convention, dispatches through the session's engine, and lifts
// raw results into value objects. The host owns all state: nothing here is
// cached, and every read asks the host again.
package scene

import (
	"context"

	"github.com/walteh/sceneport/pkg/engine"
	"github.com/walteh/sceneport/pkg/fileformat"
	"github.com/walteh/sceneport/pkg/flagset"
	"gitlab.com/tozd/go/errors"
)

// 🎬 Session binds the facade to one engine connection. It replaces the
// ambient module-level globals of script bindings with an explicit context
// object whose lifetime the caller controls.
type Session struct {
	eng engine.Engine
}

// 🏭 NewSession creates a session over a connected engine
func NewSession(eng engine.Engine) *Session {
	return &Session{eng: eng}
}

// Engine exposes the underlying engine, mostly for tests
func (s *Session) Engine() engine.Engine {
	return s.eng
}

// 🔒 Close closes the underlying engine connection
func (s *Session) Close() error {
	return s.eng.Close()
}

// 🔗 kv is one friendly keyword with its value, not yet resolved to a flag
type kv struct {
	keyword string
	value   any
}

// ⚙️ options accumulates keyword/value pairs in call order
type options struct {
	kvs []kv
}

func newOptions(builtin ...kv) *options {
	return &options{kvs: builtin}
}

func (o *options) apply(opts []Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) add(keyword string, value any) {
	o.kvs = append(o.kvs, kv{keyword: keyword, value: value})
}

func (o *options) has(keyword string) bool {
	for _, kv := range o.kvs {
		if kv.keyword == keyword {
			return true
		}
	}
	return false
}

// defaultType appends a format flag inferred from the path's extension when
// the caller did not pass one explicitly. Unrecognized extensions add
// nothing and the host applies its own default.
func (o *options) defaultType(path string, dir fileformat.Direction) {
	if o.has("type") {
		return
	}
	if format := fileformat.Resolve(path, dir); format != "" {
		o.add("type", format)
	}
}

// 🎛️ Option contributes one keyword/value pair to an invocation. Keywords
// are validated against the target command's flag table before any host
// round trip, so a misspelled or misplaced option fails locally.
type Option func(*options)

// Force suppresses the host's save-before-destroy prompts
func Force() Option {
	return func(o *options) { o.add("force", nil) }
}

// Type pins the file format explicitly instead of inferring it from the
// path's extension
func Type(format string) Option {
	return func(o *options) { o.add("type", format) }
}

// PreserveReferences keeps references as references during import/export
// instead of flattening them into the scene
func PreserveReferences() Option {
	return func(o *options) { o.add("preserveReferences", nil) }
}

// InNamespace places the imported or referenced content under a namespace
func InNamespace(name string) Option {
	return func(o *options) { o.add("namespace", name) }
}

// Prompt toggles the host's interactive error dialogs for this call
func Prompt(enabled bool) Option {
	return func(o *options) { o.add("prompt", enabled) }
}

// Deferred creates a reference without loading its contents
func Deferred() Option {
	return func(o *options) { o.add("deferReference", true) }
}

// GroupReference groups the referenced nodes under a transform
func GroupReference() Option {
	return func(o *options) { o.add("groupReference", nil) }
}

// GroupName names the transform created by GroupReference
func GroupName(name string) Option {
	return func(o *options) { o.add("groupName", name) }
}

// ReturnNewNodes asks the host to return the nodes a create call produced
func ReturnNewNodes() Option {
	return func(o *options) { o.add("returnNewNodes", nil) }
}

// SharedNodes shares nodes of the given kind between references
func SharedNodes(kind string) Option {
	return func(o *options) { o.add("sharedNodes", kind) }
}

// Strict makes the host reject files with unknown nodes instead of
// loading them permissively
func Strict() Option {
	return func(o *options) { o.add("strict", nil) }
}

// TranslatorOptions forwards a raw translator option string
func TranslatorOptions(opts string) Option {
	return func(o *options) { o.add("options", opts) }
}

// UseDefaultNamespace targets the root namespace instead of one derived
// from the file name
func UseDefaultNamespace() Option {
	return func(o *options) { o.add("defaultNamespace", nil) }
}

// MergeWithRoot moves a removed namespace's content to the root namespace
func MergeWithRoot() Option {
	return func(o *options) { o.add("mergeNamespaceWithRoot", nil) }
}

// MergeWithParent moves a removed namespace's content to its parent
func MergeWithParent() Option {
	return func(o *options) { o.add("mergeNamespaceWithParent", nil) }
}

// DeleteContent deletes a removed namespace's content outright
func DeleteContent() Option {
	return func(o *options) { o.add("deleteNamespaceContent", nil) }
}

// UnderParent creates a namespace under the given parent instead of the
// current one
func UnderParent(parent string) Option {
	return func(o *options) { o.add("parent", parent) }
}

// EditCommand narrows a reference-edit query or removal to edits made by
// one host command, e.g. "setAttr"
func EditCommand(command string) Option {
	return func(o *options) { o.add("editCommand", command) }
}

// FailedEdits includes edits that could not be applied
func FailedEdits(include bool) Option {
	return func(o *options) { o.add("failedEdits", include) }
}

// SuccessfulEdits includes edits that applied cleanly
func SuccessfulEdits(include bool) Option {
	return func(o *options) { o.add("successfulEdits", include) }
}

// 🚀 dispatch resolves the accumulated keywords against the command's flag
// table and hands the assembled invocation to the engine. Keyword
// resolution failures surface before any host round trip.
func (s *Session) dispatch(ctx context.Context, command string, mode flagset.Mode, kvs []kv, targets ...string) (engine.Result, error) {
	inv := engine.Invocation{
		Command: command,
		Mode:    mode,
		Targets: targets,
	}

	for _, kv := range kvs {
		token, err := flagset.Resolve(command, kv.keyword, mode)
		if err != nil {
			return engine.Result{}, errors.Errorf("assembling %s invocation: %w", command, err)
		}
		inv.Flags = append(inv.Flags, engine.Flag{Name: token, Value: kv.value})
	}

	return s.eng.Dispatch(ctx, inv)
}
