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

package flagset

import (
	"fmt"
	"sort"
)

// 🎛️ Mode selects which of the host command's calling conventions an
// invocation uses. Most host commands accept the same flag under different
// modes with different meanings, so a keyword is only valid for the modes
// its spec declares.
type Mode int

const (
	Create Mode = iota // build or mutate scene content
	Query              // read state back from the host
	Edit               // modify an existing entity
)

// String returns a string representation of the mode
func (m Mode) String() string {
	switch m {
	case Create:
		return "create"
	case Query:
		return "query"
	case Edit:
		return "edit"
	default:
		return "unknown"
	}
}

// 🎭 ModeMask is a bitmask of the modes a flag is registered for
type ModeMask uint8

const (
	InCreate ModeMask = 1 << iota
	InQuery
	InEdit
)

// mask converts a Mode to its mask bit
func (m Mode) mask() ModeMask {
	switch m {
	case Create:
		return InCreate
	case Query:
		return InQuery
	case Edit:
		return InEdit
	default:
		return 0
	}
}

// 🏷️ Spec describes a single host flag: its short and long token (without
// the leading dash) and the modes it is valid in. The table is transcribed
// from the host's command reference, not computed.
type Spec struct {
	Short string   // short flag token, e.g. "pr"
	Long  string   // long flag token, e.g. "preserveReferences"
	Modes ModeMask // modes the flag is registered for
}

// 🚫 UnknownFlagError reports a keyword that has no flag registered for the
// requested command and mode. It is raised before any host round trip.
type UnknownFlagError struct {
	Command string
	Keyword string
	Mode    Mode
}

// Error returns a string representation of the error
func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag keyword %q for %s in %s mode", e.Keyword, e.Command, e.Mode)
}

// 🎯 Resolve returns the long flag token for a keyword, or an
// *UnknownFlagError if the keyword is not registered for the command in the
// given mode. Pure lookup, no side effects.
func Resolve(command, keyword string, mode Mode) (string, error) {
	spec, ok := Lookup(command, keyword)
	if !ok || spec.Modes&mode.mask() == 0 {
		return "", &UnknownFlagError{Command: command, Keyword: keyword, Mode: mode}
	}
	return spec.Long, nil
}

// 🔍 Lookup returns the spec for a keyword regardless of mode
func Lookup(command, keyword string) (Spec, bool) {
	flags, ok := commands[command]
	if !ok {
		return Spec{}, false
	}
	spec, ok := flags[keyword]
	return spec, ok
}

// 📜 Keywords returns the sorted keywords registered for a command
func Keywords(command string) []string {
	flags, ok := commands[command]
	if !ok {
		return nil
	}
	keywords := make([]string, 0, len(flags))
	for k := range flags {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

// 📜 Commands returns the sorted names of all registered host commands
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
