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

// Package enginetest provides a scripted in-memory Engine for facade tests,
// so no host application is needed to exercise the wrapper layers.
package enginetest

import (
	"context"
	"sync"

	"github.com/walteh/sceneport/pkg/engine"
	"gitlab.com/tozd/go/errors"
)

// 🎬 Recorder is a fake Engine: it records every invocation it receives and
// replies from a scripted queue. An empty queue yields empty results, which
// suits create-mode calls whose return value the caller ignores.
type Recorder struct {
	mu          sync.Mutex
	invocations []engine.Invocation
	queue       []reply
	closed      bool
}

type reply struct {
	result engine.Result
	err    error
}

// 🏭 NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// 📥 EnqueueResult scripts the fields of the next successful reply
func (r *Recorder) EnqueueResult(fields ...string) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, reply{result: engine.NewResult("scripted", fields...)})
	return r
}

// 📥 EnqueueError scripts the next reply to fail
func (r *Recorder) EnqueueError(err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, reply{err: err})
	return r
}

// 🚀 Dispatch records the invocation and pops the next scripted reply
func (r *Recorder) Dispatch(ctx context.Context, inv engine.Invocation) (engine.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return engine.Result{}, errors.Errorf("recorder engine is closed")
	}

	r.invocations = append(r.invocations, inv)

	if len(r.queue) == 0 {
		return engine.NewResult(inv.Command), nil
	}
	next := r.queue[0]
	r.queue = r.queue[1:]
	if next.err != nil {
		return engine.Result{}, next.err
	}
	return engine.NewResult(inv.Command, next.result.Strings()...), nil
}

// 🔒 Close marks the recorder closed; later dispatches fail
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// 📜 Invocations returns everything dispatched so far, in order
func (r *Recorder) Invocations() []engine.Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]engine.Invocation, len(r.invocations))
	copy(out, r.invocations)
	return out
}

// 🔍 Last returns the most recent invocation
func (r *Recorder) Last() (engine.Invocation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.invocations) == 0 {
		return engine.Invocation{}, false
	}
	return r.invocations[len(r.invocations)-1], true
}

// 🧮 Count returns how many invocations were dispatched
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.invocations)
}

// 🔍 HasFlag reports whether an invocation carries the named flag
func HasFlag(inv engine.Invocation, name string) bool {
	for _, f := range inv.Flags {
		if f.Name == name {
			return true
		}
	}
	return false
}

// 🔍 FlagValue returns the value of the named flag, when present
func FlagValue(inv engine.Invocation, name string) (any, bool) {
	for _, f := range inv.Flags {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
