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

	"github.com/walteh/sceneport/pkg/flagset"
	"gitlab.com/tozd/go/errors"
)

// 🗂️ Workspace is a handle on the host's current project workspace: its
// root directory, current directory, and file rules. Like every handle
// here it holds no state of its own.
type Workspace struct {
	s *Session
}

// Workspace returns the session's workspace handle
func (s *Session) Workspace() *Workspace {
	return &Workspace{s: s}
}

// 🔍 Root returns the workspace's root directory
func (w *Workspace) Root(ctx context.Context) (Path, error) {
	return w.queryPath(ctx, "rootDirectory")
}

// 🔍 Dir returns the workspace's current directory
func (w *Workspace) Dir(ctx context.Context) (Path, error) {
	return w.queryPath(ctx, "directory")
}

// 🔍 FullName returns the full path of the workspace definition
func (w *Workspace) FullName(ctx context.Context) (Path, error) {
	return w.queryPath(ctx, "fullName")
}

// 🔍 ProjectPath returns the current project's path
func (w *Workspace) ProjectPath(ctx context.Context) (Path, error) {
	return w.queryPath(ctx, "projectPath")
}

func (w *Workspace) queryPath(ctx context.Context, keyword string) (Path, error) {
	res, err := w.s.dispatch(ctx, "workspace", flagset.Query, []kv{{keyword: keyword}})
	if err != nil {
		return Path{}, errors.Errorf("querying workspace %s: %w", keyword, err)
	}
	path, err := res.String()
	if err != nil {
		return Path{}, errors.Errorf("querying workspace %s: %w", keyword, err)
	}
	return NewPath(path), nil
}

// 📝 Chdir changes the workspace's current directory
func (w *Workspace) Chdir(ctx context.Context, dir string) error {
	kvs := []kv{{keyword: "directory", value: dir}}
	if _, err := w.s.dispatch(ctx, "workspace", flagset.Edit, kvs); err != nil {
		return errors.Errorf("changing workspace directory: %w", err)
	}
	return nil
}

// 🔍 ExpandName resolves a workspace-relative name to a full path through
// the workspace's file rules
func (w *Workspace) ExpandName(ctx context.Context, name string) (Path, error) {
	kvs := []kv{{keyword: "expandName", value: name}}
	res, err := w.s.dispatch(ctx, "workspace", flagset.Query, kvs)
	if err != nil {
		return Path{}, errors.Errorf("expanding workspace name: %w", err)
	}
	expanded, err := res.String()
	if err != nil {
		return Path{}, errors.Errorf("expanding workspace name: %w", err)
	}
	return NewPath(expanded), nil
}

// 🔍 FileRule returns the location registered for a file rule, e.g. the
// "scene" rule's directory
func (w *Workspace) FileRule(ctx context.Context, rule string) (string, error) {
	kvs := []kv{{keyword: "fileRule", value: rule}}
	res, err := w.s.dispatch(ctx, "workspace", flagset.Query, kvs)
	if err != nil {
		return "", errors.Errorf("querying file rule %s: %w", rule, err)
	}
	location, err := res.String()
	if err != nil {
		return "", errors.Errorf("querying file rule %s: %w", rule, err)
	}
	return location, nil
}

// 📝 SetFileRule registers a file rule's location
func (w *Workspace) SetFileRule(ctx context.Context, rule, location string) error {
	kvs := []kv{{keyword: "fileRule", value: []string{rule, location}}}
	if _, err := w.s.dispatch(ctx, "workspace", flagset.Create, kvs); err != nil {
		return errors.Errorf("setting file rule %s: %w", rule, err)
	}
	return nil
}

// 📜 FileRules returns all registered file rules as rule → location
func (w *Workspace) FileRules(ctx context.Context) (map[string]string, error) {
	res, err := w.s.dispatch(ctx, "workspace", flagset.Query, []kv{{keyword: "fileRuleList"}})
	if err != nil {
		return nil, errors.Errorf("listing file rules: %w", err)
	}

	rules := make(map[string]string, len(res.Strings()))
	for _, rule := range res.Strings() {
		location, err := w.FileRule(ctx, rule)
		if err != nil {
			return nil, err
		}
		rules[rule] = location
	}
	return rules, nil
}

// 🆕 Create creates a workspace directory
func (w *Workspace) Create(ctx context.Context, dir string) error {
	kvs := []kv{{keyword: "create", value: dir}}
	if _, err := w.s.dispatch(ctx, "workspace", flagset.Create, kvs); err != nil {
		return errors.Errorf("creating workspace: %w", err)
	}
	return nil
}

// 📂 Open makes the given directory the active workspace
func (w *Workspace) Open(ctx context.Context, dir string) error {
	kvs := []kv{{keyword: "openWorkspace", value: dir}}
	if _, err := w.s.dispatch(ctx, "workspace", flagset.Create, kvs); err != nil {
		return errors.Errorf("opening workspace: %w", err)
	}
	return nil
}

// 💾 Save writes the workspace definition back to disk
func (w *Workspace) Save(ctx context.Context) error {
	kvs := []kv{{keyword: "saveWorkspace"}}
	if _, err := w.s.dispatch(ctx, "workspace", flagset.Create, kvs); err != nil {
		return errors.Errorf("saving workspace: %w", err)
	}
	return nil
}

// 📜 List returns the known workspace names
func (w *Workspace) List(ctx context.Context) ([]string, error) {
	res, err := w.s.dispatch(ctx, "workspace", flagset.Query, []kv{{keyword: "listWorkspaces"}})
	if err != nil {
		return nil, errors.Errorf("listing workspaces: %w", err)
	}
	return res.Strings(), nil
}
