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

// 🗃️ FileInfo is a mapping view over the key/value store the host saves
// inside the scene file. Every operation goes straight to the host: two
// FileInfo handles always observe the same, current state, and there is no
// local cache to invalidate.
type FileInfo struct {
	s *Session
}

// FileInfo returns the session's scene key/value store handle
func (s *Session) FileInfo() *FileInfo {
	return &FileInfo{s: s}
}

// 🔍 Get returns the value stored under key, and whether it was present
func (f *FileInfo) Get(ctx context.Context, key string) (string, bool, error) {
	res, err := f.s.dispatch(ctx, "fileInfo", flagset.Query, nil, key)
	if err != nil {
		return "", false, errors.Errorf("reading scene info %s: %w", key, err)
	}
	if res.IsEmpty() {
		return "", false, nil
	}

	value, err := res.String()
	if err != nil {
		return "", false, errors.Errorf("reading scene info %s: %w", key, err)
	}
	return value, true, nil
}

// 🔍 Has reports whether key is present
func (f *FileInfo) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := f.Get(ctx, key)
	return ok, err
}

// 📝 Set stores value under key
func (f *FileInfo) Set(ctx context.Context, key, value string) error {
	if _, err := f.s.dispatch(ctx, "fileInfo", flagset.Create, nil, key, value); err != nil {
		return errors.Errorf("writing scene info %s: %w", key, err)
	}
	return nil
}

// 🗑️ Delete removes key from the store
func (f *FileInfo) Delete(ctx context.Context, key string) error {
	kvs := []kv{{keyword: "remove", value: key}}
	if _, err := f.s.dispatch(ctx, "fileInfo", flagset.Create, kvs); err != nil {
		return errors.Errorf("removing scene info %s: %w", key, err)
	}
	return nil
}

// 📜 All returns every key/value pair in host order
func (f *FileInfo) All(ctx context.Context) ([][2]string, error) {
	res, err := f.s.dispatch(ctx, "fileInfo", flagset.Query, nil)
	if err != nil {
		return nil, errors.Errorf("listing scene info: %w", err)
	}
	pairs, err := res.Pairs()
	if err != nil {
		return nil, errors.Errorf("listing scene info: %w", err)
	}
	return pairs, nil
}

// 📜 Keys returns every key in host order
func (f *FileInfo) Keys(ctx context.Context) ([]string, error) {
	pairs, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		keys = append(keys, pair[0])
	}
	return keys, nil
}
