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

	"github.com/walteh/sceneport/pkg/flagset"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Namespace identifies a hierarchical, colon-delimited naming scope.
// The host accepts both absolute (":a:b") and root-relative ("a:b") forms
// for the same namespace, so the constructor normalizes to the relative
// form and plain == comparison follows the host's equality rules. The root
// namespace is the zero value.
type Namespace struct {
	name string
}

// 🏗️ NewNamespace normalizes a host namespace string
func NewNamespace(name string) Namespace {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, ":")
	return Namespace{name: name}
}

// String returns the normalized root-relative form; "" is the root
func (n Namespace) String() string {
	return n.name
}

// Absolute returns the leading-colon absolute form
func (n Namespace) Absolute() string {
	return ":" + n.name
}

// IsRoot reports whether this is the root namespace
func (n Namespace) IsRoot() bool {
	return n.name == ""
}

// Parent returns the enclosing namespace; the root is its own parent
func (n Namespace) Parent() Namespace {
	idx := strings.LastIndex(n.name, ":")
	if idx < 0 {
		return Namespace{}
	}
	return Namespace{name: n.name[:idx]}
}

// Leaf returns the last element of the namespace path
func (n Namespace) Leaf() string {
	idx := strings.LastIndex(n.name, ":")
	return n.name[idx+1:]
}

// 🆕 AddNamespace creates a namespace under the current one (or under the
// UnderParent option's namespace) and returns it
func (s *Session) AddNamespace(ctx context.Context, name string, opts ...Option) (Namespace, error) {
	o := newOptions(kv{keyword: "add", value: name}).apply(opts)

	res, err := s.dispatch(ctx, "namespace", flagset.Create, o.kvs)
	if err != nil {
		return Namespace{}, errors.Errorf("adding namespace: %w", err)
	}

	if created, err := res.String(); err == nil && created != "" {
		return NewNamespace(created), nil
	}
	return NewNamespace(name), nil
}

// 🗑️ RemoveNamespace removes a namespace. By default the host refuses to
// remove a non-empty one; pass MergeWithRoot, MergeWithParent, or
// DeleteContent to say what happens to its content.
func (s *Session) RemoveNamespace(ctx context.Context, ns Namespace, opts ...Option) error {
	o := newOptions(kv{keyword: "removeNamespace", value: ns.Absolute()}).apply(opts)

	if _, err := s.dispatch(ctx, "namespace", flagset.Create, o.kvs); err != nil {
		return errors.Errorf("removing namespace: %w", err)
	}
	return nil
}

// 🔍 NamespaceExists asks the host whether the namespace exists
func (s *Session) NamespaceExists(ctx context.Context, ns Namespace) (bool, error) {
	kvs := []kv{{keyword: "exists", value: ns.Absolute()}}
	res, err := s.dispatch(ctx, "namespace", flagset.Create, kvs)
	if err != nil {
		return false, errors.Errorf("querying namespace existence: %w", err)
	}
	exists, err := res.Bool()
	if err != nil {
		return false, errors.Errorf("querying namespace existence: %w", err)
	}
	return exists, nil
}

// 🔍 CurrentNamespace returns the namespace new nodes are created in
func (s *Session) CurrentNamespace(ctx context.Context) (Namespace, error) {
	kvs := []kv{{keyword: "currentNamespace"}, {keyword: "absoluteName"}}
	res, err := s.dispatch(ctx, "namespaceInfo", flagset.Create, kvs)
	if err != nil {
		return Namespace{}, errors.Errorf("querying current namespace: %w", err)
	}
	name, err := res.String()
	if err != nil {
		return Namespace{}, errors.Errorf("querying current namespace: %w", err)
	}
	return NewNamespace(name), nil
}

// 📝 SetCurrentNamespace changes the namespace new nodes are created in
func (s *Session) SetCurrentNamespace(ctx context.Context, ns Namespace) error {
	kvs := []kv{{keyword: "setNamespace", value: ns.Absolute()}}
	if _, err := s.dispatch(ctx, "namespace", flagset.Create, kvs); err != nil {
		return errors.Errorf("setting current namespace: %w", err)
	}
	return nil
}

// 📜 ListNamespaces returns the namespaces under the current one. Pass
// recurse to walk the whole hierarchy.
func (s *Session) ListNamespaces(ctx context.Context, recurse bool) ([]Namespace, error) {
	kvs := []kv{{keyword: "listOnlyNamespaces"}}
	if recurse {
		kvs = append(kvs, kv{keyword: "recurse"})
	}

	res, err := s.dispatch(ctx, "namespaceInfo", flagset.Create, kvs)
	if err != nil {
		return nil, errors.Errorf("listing namespaces: %w", err)
	}

	namespaces := make([]Namespace, 0, len(res.Strings()))
	for _, name := range res.Strings() {
		namespaces = append(namespaces, NewNamespace(name))
	}
	return namespaces, nil
}

// 📝 RenameNamespace renames a namespace in place
func (s *Session) RenameNamespace(ctx context.Context, from, to Namespace) error {
	kvs := []kv{{keyword: "rename", value: []string{from.String(), to.String()}}}
	if _, err := s.dispatch(ctx, "namespace", flagset.Create, kvs); err != nil {
		return errors.Errorf("renaming namespace: %w", err)
	}
	return nil
}

// 🔀 MoveNamespace moves the content of one namespace into another
func (s *Session) MoveNamespace(ctx context.Context, src, dst Namespace, opts ...Option) error {
	o := newOptions(kv{keyword: "moveNamespace", value: []string{src.Absolute(), dst.Absolute()}}).apply(opts)

	if _, err := s.dispatch(ctx, "namespace", flagset.Create, o.kvs); err != nil {
		return errors.Errorf("moving namespace: %w", err)
	}
	return nil
}
