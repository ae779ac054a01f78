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

package fileformat

import (
	"path/filepath"
	"strings"
)

// 🔄 Direction distinguishes reading a file from writing one. A few
// translators support only one of the two, so the default format for an
// extension can differ per direction.
type Direction int

const (
	Read Direction = iota
	Write
)

// String returns a string representation of the direction
func (d Direction) String() string {
	if d == Write {
		return "write"
	}
	return "read"
}

// 🏷️ entry holds the format values registered for one extension
type entry struct {
	read  string
	write string
}

// 🗺️ formats maps a lowercase extension (without dot) to its translator
// format values. Seeded with the host's built-in translators; plugin
// translators register themselves via Register.
var formats = map[string]entry{
	"ma":  {read: "mayaAscii", write: "mayaAscii"},
	"mb":  {read: "mayaBinary", write: "mayaBinary"},
	"mel": {read: "mel", write: "mel"},
	"obj": {read: "OBJ", write: "OBJexport"},
	"fbx": {read: "FBX", write: "FBX export"},
	"abc": {read: "Alembic", write: "Alembic"},
	"dae": {read: "DAE_FBX", write: "DAE_FBX export"},
	"iff": {read: "image", write: "image"},
}

// 📝 Register adds or overrides the format values for an extension. Pass
// the same value for both directions when the translator is symmetric.
func Register(ext, readFormat, writeFormat string) {
	formats[normalize(ext)] = entry{read: readFormat, write: writeFormat}
}

// 🎯 Resolve inspects a path's suffix and returns the default format value
// for it, or "" when the extension is unrecognized. An unknown extension is
// not an error: the caller omits the format flag and the host applies its
// own default, which keeps plugin-registered formats working. Matching is
// case-insensitive.
func Resolve(path string, dir Direction) string {
	ext := normalize(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	e, ok := formats[ext]
	if !ok {
		return ""
	}
	if dir == Write {
		return e.write
	}
	return e.read
}

// normalize lowercases an extension and strips the leading dot
func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
