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

	"github.com/walteh/sceneport/pkg/fileformat"
	"github.com/walteh/sceneport/pkg/flagset"
	"gitlab.com/tozd/go/errors"
)

// 📂 OpenFile opens a scene file, replacing the current scene. The format
// flag is inferred from the extension unless Type is passed.
func (s *Session) OpenFile(ctx context.Context, path string, opts ...Option) (Path, error) {
	o := newOptions(kv{keyword: "open"}).apply(opts)
	o.defaultType(path, fileformat.Read)

	res, err := s.dispatch(ctx, "file", flagset.Create, o.kvs, path)
	if err != nil {
		return Path{}, errors.Errorf("opening file: %w", err)
	}
	return resultPath(res, path), nil
}

// 📥 ImportFile imports a file's contents into the current scene
func (s *Session) ImportFile(ctx context.Context, path string, opts ...Option) (Path, error) {
	o := newOptions(kv{keyword: "import"}).apply(opts)
	o.defaultType(path, fileformat.Read)

	res, err := s.dispatch(ctx, "file", flagset.Create, o.kvs, path)
	if err != nil {
		return Path{}, errors.Errorf("importing file: %w", err)
	}
	return resultPath(res, path), nil
}

// 🆕 NewFile starts an empty scene. Pass Force to discard unsaved changes
// without the host prompting.
func (s *Session) NewFile(ctx context.Context, opts ...Option) error {
	o := newOptions(kv{keyword: "newFile"}).apply(opts)

	if _, err := s.dispatch(ctx, "file", flagset.Create, o.kvs); err != nil {
		return errors.Errorf("creating new scene: %w", err)
	}
	return nil
}

// 💾 SaveFile saves the current scene under its current name
func (s *Session) SaveFile(ctx context.Context, opts ...Option) (Path, error) {
	o := newOptions(kv{keyword: "save"}).apply(opts)

	res, err := s.dispatch(ctx, "file", flagset.Create, o.kvs)
	if err != nil {
		return Path{}, errors.Errorf("saving file: %w", err)
	}

	if saved, err := res.String(); err == nil && saved != "" {
		return NewPath(saved), nil
	}
	return s.SceneName(ctx)
}

// 💾 SaveAs renames the current scene and saves it there. Two host calls,
// matching the host's own rename-then-save convention; the format follows
// the new path's extension unless Type overrides it.
func (s *Session) SaveAs(ctx context.Context, path string, opts ...Option) (Path, error) {
	if _, err := s.RenameFile(ctx, path); err != nil {
		return Path{}, err
	}

	saveOpts := append([]Option{}, opts...)
	if !newOptions().apply(opts).has("type") {
		if format := fileformat.Resolve(path, fileformat.Write); format != "" {
			saveOpts = append(saveOpts, Type(format))
		}
	}
	return s.SaveFile(ctx, saveOpts...)
}

// 📝 RenameFile renames the current scene without saving it
func (s *Session) RenameFile(ctx context.Context, path string) (Path, error) {
	kvs := []kv{{keyword: "rename", value: path}}

	res, err := s.dispatch(ctx, "file", flagset.Create, kvs)
	if err != nil {
		return Path{}, errors.Errorf("renaming file: %w", err)
	}
	return resultPath(res, path), nil
}

// 📤 ExportAll exports the whole scene to a file
func (s *Session) ExportAll(ctx context.Context, path string, opts ...Option) (Path, error) {
	return s.export(ctx, "exportAll", path, opts)
}

// 📤 ExportSelected exports only the selected nodes
func (s *Session) ExportSelected(ctx context.Context, path string, opts ...Option) (Path, error) {
	return s.export(ctx, "exportSelected", path, opts)
}

// 📤 ExportAsReference exports the selection and replaces it in the scene
// with a reference to the exported file
func (s *Session) ExportAsReference(ctx context.Context, path string, opts ...Option) (Path, error) {
	return s.export(ctx, "exportAsReference", path, opts)
}

// export is the shared body of the export variants
func (s *Session) export(ctx context.Context, operation, path string, opts []Option) (Path, error) {
	o := newOptions(kv{keyword: operation}).apply(opts)
	o.defaultType(path, fileformat.Write)

	res, err := s.dispatch(ctx, "file", flagset.Create, o.kvs, path)
	if err != nil {
		return Path{}, errors.Errorf("exporting to %s: %w", path, err)
	}
	return resultPath(res, path), nil
}

// 🔍 SceneName returns the current scene's path, or a zero Path for an
// unsaved scene
func (s *Session) SceneName(ctx context.Context) (Path, error) {
	res, err := s.dispatch(ctx, "file", flagset.Query, []kv{{keyword: "sceneName"}})
	if err != nil {
		return Path{}, errors.Errorf("querying scene name: %w", err)
	}
	if res.IsEmpty() {
		return Path{}, nil
	}

	name, err := res.String()
	if err != nil {
		return Path{}, errors.Errorf("querying scene name: %w", err)
	}
	return NewPath(name), nil
}

// 📜 RecentFiles returns the host's recently opened scene files, most
// recent last, as the host reports them
func (s *Session) RecentFiles(ctx context.Context) ([]Path, error) {
	res, err := s.dispatch(ctx, "file", flagset.Query, []kv{{keyword: "list"}})
	if err != nil {
		return nil, errors.Errorf("listing recent files: %w", err)
	}

	paths := make([]Path, 0, len(res.Strings()))
	for _, raw := range res.Strings() {
		paths = append(paths, NewPath(raw))
	}
	return paths, nil
}

// 🔍 IsModified reports whether the scene has unsaved changes
func (s *Session) IsModified(ctx context.Context) (bool, error) {
	res, err := s.dispatch(ctx, "file", flagset.Query, []kv{{keyword: "modified"}})
	if err != nil {
		return false, errors.Errorf("querying modified state: %w", err)
	}
	modified, err := res.Bool()
	if err != nil {
		return false, errors.Errorf("querying modified state: %w", err)
	}
	return modified, nil
}

// 📝 SetModified overrides the scene's modified flag, e.g. to suppress the
// save prompt after scripted cleanup
func (s *Session) SetModified(ctx context.Context, modified bool) error {
	kvs := []kv{{keyword: "modified", value: modified}}
	if _, err := s.dispatch(ctx, "file", flagset.Edit, kvs); err != nil {
		return errors.Errorf("setting modified state: %w", err)
	}
	return nil
}

// 🔍 FileExists asks the host whether it can locate the file
func (s *Session) FileExists(ctx context.Context, path string) (bool, error) {
	res, err := s.dispatch(ctx, "file", flagset.Query, []kv{{keyword: "exists"}}, path)
	if err != nil {
		return false, errors.Errorf("querying file existence: %w", err)
	}
	exists, err := res.Bool()
	if err != nil {
		return false, errors.Errorf("querying file existence: %w", err)
	}
	return exists, nil
}

// 🔍 ExpandName resolves a file name through the host's search rules
func (s *Session) ExpandName(ctx context.Context, name string) (Path, error) {
	res, err := s.dispatch(ctx, "file", flagset.Query, []kv{{keyword: "expandName"}}, name)
	if err != nil {
		return Path{}, errors.Errorf("expanding file name: %w", err)
	}

	expanded, err := res.String()
	if err != nil {
		return Path{}, errors.Errorf("expanding file name: %w", err)
	}
	return NewPath(expanded), nil
}
