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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/sceneport/pkg/fileformat"
)

func TestPathRoundTrip(t *testing.T) {
	// Wrapping a raw host string and reading it back must not change it.
	raws := []string{
		"/projects/film/scenes/shot010.ma",
		"relative/prop.mb",
		"C:/projects/shot 010.ma",
		"",
		"/projects/.hidden/scene",
	}

	for _, raw := range raws {
		assert.Equal(t, raw, NewPath(raw).String(), "path string should round-trip unchanged")
	}
}

func TestPathConveniences(t *testing.T) {
	p := NewPath("/projects/film/scenes/shot010.ma")
	assert.Equal(t, "shot010.ma", p.Base(), "base should match")
	assert.Equal(t, "/projects/film/scenes", p.Dir().String(), "dir should match")
	assert.Equal(t, ".ma", p.Ext(), "extension should match")
	assert.Equal(t, "mayaAscii", p.Format(fileformat.Write), "format should follow the extension")
}

func TestPathWithoutCopyNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "copy_number_stripped", raw: "/assets/prop.ma{2}", want: "/assets/prop.ma"},
		{name: "no_copy_number", raw: "/assets/prop.ma", want: "/assets/prop.ma"},
		{name: "braces_mid_path_kept", raw: "/assets/{wip}/prop.ma", want: "/assets/{wip}/prop.ma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath(tt.raw)
			assert.Equal(t, tt.want, p.WithoutCopyNumber().String(), "copy number handling should match")
			assert.Equal(t, tt.raw, p.String(), "original path should be untouched")
		})
	}

	assert.Equal(t, ".ma", NewPath("/assets/prop.ma{3}").Ext(), "extension should ignore the copy number")
	assert.Equal(t, "mayaAscii", NewPath("/assets/prop.ma{3}").Format(fileformat.Read), "format should ignore the copy number")
}
