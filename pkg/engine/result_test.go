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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "single_scalar",
			reply: "/projects/shot010.ma\n",
			want:  []string{"/projects/shot010.ma"},
		},
		{
			name:  "tab_separated_array",
			reply: "shot010RN\tpropRN\n",
			want:  []string{"shot010RN", "propRN"},
		},
		{
			name:  "nul_terminated_reply",
			reply: "1\n\x00",
			want:  []string{"1"},
		},
		{
			name:  "empty_reply",
			reply: "\n\x00",
			want:  nil,
		},
		{
			name:  "multi_line_reply",
			reply: "application\tmaya\nversion\t2025\n",
			want:  []string{"application", "maya", "version", "2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReply("file", tt.reply)
			assert.Equal(t, tt.want, got.Strings(), "parsed fields should match")
		})
	}
}

func TestResultString(t *testing.T) {
	r := NewResult("file", "/projects/shot010.ma")
	s, err := r.String()
	require.NoError(t, err, "single value should resolve")
	assert.Equal(t, "/projects/shot010.ma", s, "value should match")

	var ambiguous *AmbiguousResultError

	_, err = NewResult("file").String()
	require.Error(t, err, "zero values should be ambiguous")
	require.True(t, errors.As(err, &ambiguous), "error should be *AmbiguousResultError")
	assert.Equal(t, 0, ambiguous.Count, "count should be zero")

	_, err = NewResult("file", "a", "b").String()
	require.Error(t, err, "two values should be ambiguous")
	require.True(t, errors.As(err, &ambiguous), "error should be *AmbiguousResultError")
	assert.Equal(t, 2, ambiguous.Count, "count should be two")
}

func TestResultBool(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		want    bool
		wantErr bool
	}{
		{name: "one_is_true", fields: []string{"1"}, want: true},
		{name: "zero_is_false", fields: []string{"0"}, want: false},
		{name: "word_true", fields: []string{"true"}, want: true},
		{name: "garbage_rejected", fields: []string{"maybe"}, wantErr: true},
		{name: "empty_rejected", fields: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewResult("file", tt.fields...).Bool()
			if tt.wantErr {
				require.Error(t, err, "Bool should return error")
				return
			}
			require.NoError(t, err, "Bool should succeed")
			assert.Equal(t, tt.want, got, "boolean should match")
		})
	}
}

func TestResultPairs(t *testing.T) {
	pairs, err := NewResult("fileInfo", "application", "maya", "version", "2025").Pairs()
	require.NoError(t, err, "even field count should pair up")
	assert.Equal(t, [][2]string{{"application", "maya"}, {"version", "2025"}}, pairs, "pairs should match")

	_, err = NewResult("fileInfo", "application", "maya", "version").Pairs()
	require.Error(t, err, "odd field count should be rejected")
}
