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

// 🔌 LoadPlugin loads a host plugin by name or path
func (s *Session) LoadPlugin(ctx context.Context, name string) error {
	if _, err := s.dispatch(ctx, "loadPlugin", flagset.Create, nil, name); err != nil {
		return errors.Errorf("loading plugin %s: %w", name, err)
	}
	return nil
}

// 🔌 UnloadPlugin unloads a host plugin
func (s *Session) UnloadPlugin(ctx context.Context, name string) error {
	if _, err := s.dispatch(ctx, "unloadPlugin", flagset.Create, nil, name); err != nil {
		return errors.Errorf("unloading plugin %s: %w", name, err)
	}
	return nil
}

// 🔍 IsPluginLoaded reports whether the plugin is currently loaded
func (s *Session) IsPluginLoaded(ctx context.Context, name string) (bool, error) {
	res, err := s.dispatch(ctx, "pluginInfo", flagset.Query, []kv{{keyword: "loaded"}}, name)
	if err != nil {
		return false, errors.Errorf("querying plugin %s: %w", name, err)
	}
	loaded, err := res.Bool()
	if err != nil {
		return false, errors.Errorf("querying plugin %s: %w", name, err)
	}
	return loaded, nil
}

// 📜 ListPlugins returns the names of all loaded plugins
func (s *Session) ListPlugins(ctx context.Context) ([]string, error) {
	res, err := s.dispatch(ctx, "pluginInfo", flagset.Query, []kv{{keyword: "listPlugins"}})
	if err != nil {
		return nil, errors.Errorf("listing plugins: %w", err)
	}
	return res.Strings(), nil
}

// 🔍 PluginVersion returns a loaded plugin's version string
func (s *Session) PluginVersion(ctx context.Context, name string) (string, error) {
	res, err := s.dispatch(ctx, "pluginInfo", flagset.Query, []kv{{keyword: "version"}}, name)
	if err != nil {
		return "", errors.Errorf("querying plugin version: %w", err)
	}
	version, err := res.String()
	if err != nil {
		return "", errors.Errorf("querying plugin version: %w", err)
	}
	return version, nil
}
