// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parsec

import (
	"strings"
	"unicode/utf8"
)

// Input is an immutable view into the text being parsed.
// Advancing produces a new view on the same backing string, the data is never
// copied or modified.
type Input struct {
	data   string
	offset int
}

// NewInput returns a view of the whole of s.
func NewInput(s string) Input {
	return Input{data: s}
}

// String returns the text that has not yet been consumed.
func (in Input) String() string { return in.data[in.offset:] }

// Source returns the full backing text the view was created over.
func (in Input) Source() string { return in.data }

// Offset returns the byte offset of the view into the backing text.
func (in Input) Offset() int { return in.offset }

// Len returns the number of unconsumed bytes.
func (in Input) Len() int { return len(in.data) - in.offset }

// EOF returns true if there is no input left.
func (in Input) EOF() bool { return in.offset >= len(in.data) }

// Peek decodes the next rune without consuming it.
// The returned size is 0 at the end of the input.
func (in Input) Peek() (rune, int) {
	if in.EOF() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(in.data[in.offset:])
}

// Advance returns a view n bytes further into the text.
// It panics if n would move the view outside the backing text.
func (in Input) Advance(n int) Input {
	if n < 0 || n > in.Len() {
		panic("parsec: advance out of range")
	}
	return Input{data: in.data, offset: in.offset + n}
}

// HasPrefix reports whether the unconsumed text starts with s.
func (in Input) HasPrefix(s string) bool {
	return strings.HasPrefix(in.data[in.offset:], s)
}

// Since returns the text consumed between start and in.
// start must be an earlier view of the same text.
func (in Input) Since(start Input) string {
	if start.offset > in.offset {
		return ""
	}
	return in.data[start.offset:in.offset]
}
