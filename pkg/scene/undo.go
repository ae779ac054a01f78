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

// 🧱 OpenUndoChunk starts grouping host operations into one undoable unit.
// Prefer WithUndoChunk, which guarantees the matching close.
func (s *Session) OpenUndoChunk(ctx context.Context, name string) error {
	kvs := []kv{{keyword: "openChunk"}}
	if name != "" {
		kvs = append(kvs, kv{keyword: "chunkName", value: name})
	}
	if _, err := s.dispatch(ctx, "undoInfo", flagset.Create, kvs); err != nil {
		return errors.Errorf("opening undo chunk: %w", err)
	}
	return nil
}

// 🧱 CloseUndoChunk ends the current undo chunk
func (s *Session) CloseUndoChunk(ctx context.Context) error {
	kvs := []kv{{keyword: "closeChunk"}}
	if _, err := s.dispatch(ctx, "undoInfo", flagset.Create, kvs); err != nil {
		return errors.Errorf("closing undo chunk: %w", err)
	}
	return nil
}

// 🧱 WithUndoChunk runs fn inside an undo chunk so everything fn does in
// the host undoes as a single unit. The chunk is closed on every exit
// path: normal return, error, or panic. A half-open chunk would corrupt
// the host's undo queue.
func (s *Session) WithUndoChunk(ctx context.Context, name string, fn func(context.Context) error) (err error) {
	if err := s.OpenUndoChunk(ctx, name); err != nil {
		return err
	}

	defer func() {
		closeErr := s.CloseUndoChunk(ctx)
		if err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	return fn(ctx)
}

// ↩️ Undo undoes the most recent undoable operation
func (s *Session) Undo(ctx context.Context) error {
	if _, err := s.dispatch(ctx, "undo", flagset.Create, nil); err != nil {
		return errors.Errorf("undoing: %w", err)
	}
	return nil
}

// ↪️ Redo redoes the most recently undone operation
func (s *Session) Redo(ctx context.Context) error {
	if _, err := s.dispatch(ctx, "redo", flagset.Create, nil); err != nil {
		return errors.Errorf("redoing: %w", err)
	}
	return nil
}

// 🔍 UndoEnabled reports whether the host's undo queue is on
func (s *Session) UndoEnabled(ctx context.Context) (bool, error) {
	res, err := s.dispatch(ctx, "undoInfo", flagset.Query, []kv{{keyword: "state"}})
	if err != nil {
		return false, errors.Errorf("querying undo state: %w", err)
	}
	enabled, err := res.Bool()
	if err != nil {
		return false, errors.Errorf("querying undo state: %w", err)
	}
	return enabled, nil
}

// 📝 SetUndoEnabled switches the host's undo queue on or off
func (s *Session) SetUndoEnabled(ctx context.Context, enabled bool) error {
	kvs := []kv{{keyword: "state", value: enabled}}
	if _, err := s.dispatch(ctx, "undoInfo", flagset.Create, kvs); err != nil {
		return errors.Errorf("setting undo state: %w", err)
	}
	return nil
}

// 🔍 UndoQueueLength returns the undo queue's configured length
func (s *Session) UndoQueueLength(ctx context.Context) (int, error) {
	res, err := s.dispatch(ctx, "undoInfo", flagset.Query, []kv{{keyword: "length"}})
	if err != nil {
		return 0, errors.Errorf("querying undo queue length: %w", err)
	}
	length, err := res.Int()
	if err != nil {
		return 0, errors.Errorf("querying undo queue length: %w", err)
	}
	return length, nil
}

// 🔍 UndoName returns the label of the operation Undo would revert
func (s *Session) UndoName(ctx context.Context) (string, error) {
	return s.undoQueueLabel(ctx, "undoName")
}

// 🔍 RedoName returns the label of the operation Redo would replay
func (s *Session) RedoName(ctx context.Context) (string, error) {
	return s.undoQueueLabel(ctx, "redoName")
}

func (s *Session) undoQueueLabel(ctx context.Context, keyword string) (string, error) {
	res, err := s.dispatch(ctx, "undoInfo", flagset.Query, []kv{{keyword: keyword}})
	if err != nil {
		return "", errors.Errorf("querying %s: %w", keyword, err)
	}
	if res.IsEmpty() {
		return "", nil
	}
	label, err := res.String()
	if err != nil {
		return "", errors.Errorf("querying %s: %w", keyword, err)
	}
	return label, nil
}
