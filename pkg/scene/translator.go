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

// 🔄 Translator is a handle on one of the host's file translators, the
// plugins that read and write scene file formats
type Translator struct {
	s    *Session
	name string
}

// Translator wraps a translator name without touching the host
func (s *Session) Translator(name string) Translator {
	return Translator{s: s, name: name}
}

// 📜 ListTranslators returns a handle for every registered translator
func (s *Session) ListTranslators(ctx context.Context) ([]Translator, error) {
	res, err := s.dispatch(ctx, "translator", flagset.Query, []kv{{keyword: "list"}})
	if err != nil {
		return nil, errors.Errorf("listing translators: %w", err)
	}

	translators := make([]Translator, 0, len(res.Strings()))
	for _, name := range res.Strings() {
		translators = append(translators, Translator{s: s, name: name})
	}
	return translators, nil
}

// Name returns the translator's registered name
func (t Translator) Name() string {
	return t.name
}

// String returns the translator's registered name
func (t Translator) String() string {
	return t.name
}

// 🔍 Extension returns the default file extension the translator writes
func (t Translator) Extension(ctx context.Context) (string, error) {
	return t.queryString(ctx, "extension")
}

// 🔍 Filter returns the file dialog filter pattern for the translator
func (t Translator) Filter(ctx context.Context) (string, error) {
	return t.queryString(ctx, "filter")
}

// 🔍 DefaultOptions returns the translator's current option string
func (t Translator) DefaultOptions(ctx context.Context) (string, error) {
	return t.queryString(ctx, "defaultOptions")
}

// 📝 SetDefaultOptions replaces the translator's option string
func (t Translator) SetDefaultOptions(ctx context.Context, opts string) error {
	kvs := []kv{{keyword: "defaultOptions", value: opts}}
	if _, err := t.s.dispatch(ctx, "translator", flagset.Edit, kvs, t.name); err != nil {
		return errors.Errorf("setting translator options: %w", err)
	}
	return nil
}

// 🔍 DefaultFileRule returns the workspace file rule the translator uses
func (t Translator) DefaultFileRule(ctx context.Context) (string, error) {
	return t.queryString(ctx, "defaultFileRule")
}

func (t Translator) queryString(ctx context.Context, keyword string) (string, error) {
	res, err := t.s.dispatch(ctx, "translator", flagset.Query, []kv{{keyword: keyword}}, t.name)
	if err != nil {
		return "", errors.Errorf("querying translator %s: %w", keyword, err)
	}
	if res.IsEmpty() {
		return "", nil
	}
	value, err := res.String()
	if err != nil {
		return "", errors.Errorf("querying translator %s: %w", keyword, err)
	}
	return value, nil
}

// 🔍 CanRead reports whether the translator supports reading
func (t Translator) CanRead(ctx context.Context) (bool, error) {
	return t.queryBool(ctx, "readSupport")
}

// 🔍 CanWrite reports whether the translator supports writing
func (t Translator) CanWrite(ctx context.Context) (bool, error) {
	return t.queryBool(ctx, "writeSupport")
}

// 🔍 IsLoaded reports whether the translator's plugin is loaded
func (t Translator) IsLoaded(ctx context.Context) (bool, error) {
	return t.queryBool(ctx, "loaded")
}

func (t Translator) queryBool(ctx context.Context, keyword string) (bool, error) {
	res, err := t.s.dispatch(ctx, "translator", flagset.Query, []kv{{keyword: keyword}}, t.name)
	if err != nil {
		return false, errors.Errorf("querying translator %s: %w", keyword, err)
	}
	value, err := res.Bool()
	if err != nil {
		return false, errors.Errorf("querying translator %s: %w", keyword, err)
	}
	return value, nil
}
