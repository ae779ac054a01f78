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
	"fmt"
	"strconv"
	"strings"

	"github.com/walteh/sceneport/pkg/flagset"
)

// 📦 Invocation captures one host command call: the command name, the mode
// switch, the resolved flag/value pairs in order, and the positional
// targets. It is built per call and discarded after dispatch.
type Invocation struct {
	Command string       // host command name, e.g. "file"
	Mode    flagset.Mode // create, query, or edit
	Flags   []Flag       // resolved flags, dispatch order preserved
	Targets []string     // positional arguments, usually paths or node names
}

// 🏷️ Flag is one resolved flag token with its optional value. Name carries
// the long token without the leading dash. A nil Value emits the bare flag.
type Flag struct {
	Name  string
	Value any
}

// 📝 Encode renders the invocation in the host's command syntax. Query and
// edit mode emit the host's -q / -e switch first, matching the convention
// of the single overloaded command the facade fronts.
func (inv Invocation) Encode() string {
	var b strings.Builder
	b.WriteString(inv.Command)

	switch inv.Mode {
	case flagset.Query:
		b.WriteString(" -q")
	case flagset.Edit:
		b.WriteString(" -e")
	}

	for _, f := range inv.Flags {
		b.WriteString(" -")
		b.WriteString(f.Name)
		if f.Value != nil {
			b.WriteString(encodeValue(f.Value))
		}
	}

	for _, target := range inv.Targets {
		b.WriteString(" ")
		b.WriteString(quote(target))
	}

	b.WriteString(";")
	return b.String()
}

// String returns the encoded form, useful in logs
func (inv Invocation) String() string {
	return inv.Encode()
}

// encodeValue renders a flag value in host syntax
func encodeValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return " 1"
		}
		return " 0"
	case string:
		return " " + quote(val)
	case []string:
		var b strings.Builder
		for _, s := range val {
			b.WriteString(" ")
			b.WriteString(quote(s))
		}
		return b.String()
	case int:
		return " " + strconv.Itoa(val)
	case int64:
		return " " + strconv.FormatInt(val, 10)
	case float64:
		return " " + strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return " " + quote(fmt.Sprint(val))
	}
}

// quote wraps a string argument in double quotes, escaping the characters
// the host's command language treats specially
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
