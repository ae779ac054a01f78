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

package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"
)

// 🔌 Engine is the interface to the host application's command engine.
// Dispatch is a blocking call/return: the invocation runs to completion in
// the host before the result comes back, and a host-reported failure is
// returned as a *CommandError without retry or recovery.
type Engine interface {
	// 🚀 Dispatch assembles and runs a single host command invocation
	Dispatch(ctx context.Context, inv Invocation) (Result, error)

	// 🔒 Close releases the connection to the host
	Close() error
}

// ⚙️ Options carries the connection settings an engine factory needs
type Options struct {
	Address string        // host command port address, e.g. "localhost:7001"
	Timeout time.Duration // dial and per-dispatch deadline
}

// 🏭 Factory creates a new engine
type Factory func(ctx context.Context, opts Options) (Engine, error)

var (
	// 🗺️ engines is a map of engine names to factories
	engines = make(map[string]Factory)
)

// 📝 Register registers an engine factory
func Register(name string, factory Factory) {
	engines[name] = factory
}

// 🎯 Get returns an engine factory by name
func Get(name string) Factory {
	return engines[name]
}

// 🏗️ New creates an engine by registered name
func New(ctx context.Context, name string, opts Options) (Engine, error) {
	factory := Get(name)
	if factory == nil {
		options := make([]string, 0, len(engines))
		for k := range engines {
			options = append(options, k)
		}
		return nil, errors.Errorf("engine %s not found, options: %s", name, strings.Join(options, ", "))
	}
	return factory(ctx, opts)
}

// 🚫 CommandError reports a failure signaled by the host command engine.
// The message is the host's own diagnostic, passed through verbatim: the
// host is authoritative and its errors reflect real application state.
type CommandError struct {
	Command string // host command that failed
	Message string // host diagnostic, unmodified
}

// Error returns a string representation of the error
func (e *CommandError) Error() string {
	return fmt.Sprintf("host command %q failed: %s", e.Command, e.Message)
}

// 🚫 AmbiguousResultError reports a query that promised a single value but
// produced zero or several. No implicit disambiguation is attempted.
type AmbiguousResultError struct {
	Command string
	Count   int
}

// Error returns a string representation of the error
func (e *AmbiguousResultError) Error() string {
	return fmt.Sprintf("host command %q returned %d values where exactly one was expected", e.Command, e.Count)
}
