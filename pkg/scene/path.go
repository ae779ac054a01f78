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
	"path/filepath"
	"regexp"

	"github.com/walteh/sceneport/pkg/engine"
	"github.com/walteh/sceneport/pkg/fileformat"
)

// copyNumberPattern matches the host's copy-number suffix, appended when
// the same file is referenced more than once, e.g. "/a/prop.ma{2}"
var copyNumberPattern = regexp.MustCompile(`\{\d+\}$`)

// 🛤️ Path is a filesystem path as the host reported or accepted it. It
// holds the raw string and adds conveniences on top; constructing one never
// talks to the host, and String returns the raw value unchanged.
type Path struct {
	raw string
}

// 🏗️ NewPath wraps a raw host path string
func NewPath(raw string) Path {
	return Path{raw: raw}
}

// String returns the exact raw path string
func (p Path) String() string {
	return p.raw
}

// IsZero reports whether the path is empty
func (p Path) IsZero() bool {
	return p.raw == ""
}

// Base returns the last element of the path
func (p Path) Base() string {
	return filepath.Base(p.raw)
}

// Dir returns the path without its last element
func (p Path) Dir() Path {
	return Path{raw: filepath.Dir(p.raw)}
}

// Ext returns the path's extension including the dot
func (p Path) Ext() string {
	return filepath.Ext(p.WithoutCopyNumber().raw)
}

// WithoutCopyNumber strips the host's copy-number suffix, if present
func (p Path) WithoutCopyNumber() Path {
	return Path{raw: copyNumberPattern.ReplaceAllString(p.raw, "")}
}

// Format returns the default translator format for the path's extension,
// or "" when the extension is unrecognized
func (p Path) Format(dir fileformat.Direction) string {
	return fileformat.Resolve(p.WithoutCopyNumber().raw, dir)
}

// resultPath lifts a raw dispatch result into a Path. Hosts echo the
// resolved file name back for most file operations; when the reply carries
// nothing usable the requested path stands in.
func resultPath(res engine.Result, requested string) Path {
	if s, err := res.String(); err == nil && s != "" {
		return NewPath(s)
	}
	return NewPath(requested)
}
