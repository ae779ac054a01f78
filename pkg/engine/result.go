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
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📊 Result is the raw value a host command returned: an untyped string,
// list of strings, or boolean, already split into fields. Accessors that
// narrow the shape fail loudly instead of guessing; nothing here dials the
// host again.
type Result struct {
	command string
	fields  []string
}

// 🏗️ NewResult builds a result from already-split fields
func NewResult(command string, fields ...string) Result {
	return Result{command: command, fields: fields}
}

// 📝 ParseReply splits a host reply into fields. The host separates the
// elements of a returned array with tabs and terminates the reply with a
// newline; a bare scalar comes back as a single line.
func ParseReply(command, reply string) Result {
	reply = strings.Trim(reply, "\x00\r\n")
	if reply == "" {
		return Result{command: command}
	}
	var fields []string
	for _, line := range strings.Split(reply, "\n") {
		fields = append(fields, strings.Split(line, "\t")...)
	}
	return Result{command: command, fields: fields}
}

// IsEmpty reports whether the host returned no value at all
func (r Result) IsEmpty() bool {
	return len(r.fields) == 0
}

// Strings returns all returned values in host order
func (r Result) Strings() []string {
	return r.fields
}

// 🎯 String returns the single returned value. Zero or multiple values
// violate the caller's single-value contract and surface as
// *AmbiguousResultError.
func (r Result) String() (string, error) {
	if len(r.fields) != 1 {
		return "", &AmbiguousResultError{Command: r.command, Count: len(r.fields)}
	}
	return r.fields[0], nil
}

// Bool interprets the single returned value as a host boolean
func (r Result) Bool() (bool, error) {
	s, err := r.String()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, errors.Errorf("interpreting %q as boolean: unrecognized value", s)
	}
}

// Int interprets the single returned value as an integer
func (r Result) Int() (int, error) {
	s, err := r.String()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("interpreting %q as integer: %w", s, err)
	}
	return n, nil
}

// 🔗 Pairs interprets the returned values as alternating key/value pairs,
// the shape the host uses for its scene key/value store
func (r Result) Pairs() ([][2]string, error) {
	if len(r.fields)%2 != 0 {
		return nil, errors.Errorf("interpreting %d values as key/value pairs: odd count", len(r.fields))
	}
	pairs := make([][2]string, 0, len(r.fields)/2)
	for i := 0; i < len(r.fields); i += 2 {
		pairs = append(pairs, [2]string{r.fields[i], r.fields[i+1]})
	}
	return pairs, nil
}
