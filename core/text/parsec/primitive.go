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
	"regexp"
)

// Any matches a single rune of any kind.
// It fails only at the end of the input.
func Any() Parser[rune] {
	return func(in Input) (rune, Input, bool) {
		r, size := in.Peek()
		if size == 0 {
			return fail[rune](in)
		}
		return r, in.Advance(size), true
	}
}

// EOF matches the end of the input without consuming anything.
func EOF() Parser[Unit] {
	return func(in Input) (Unit, Input, bool) {
		if !in.EOF() {
			return fail[Unit](in)
		}
		return Unit{}, in, true
	}
}

// Epsilon always succeeds and consumes nothing.
func Epsilon() Parser[Unit] {
	return Pure(Unit{})
}

// Pure always succeeds with v and consumes nothing.
func Pure[T any](v T) Parser[T] {
	return func(in Input) (T, Input, bool) {
		return v, in, true
	}
}

// Fail never succeeds.
func Fail[T any]() Parser[T] {
	return fail[T]
}

// Satisfy matches a single rune for which pred returns true.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(in Input) (rune, Input, bool) {
		r, size := in.Peek()
		if size == 0 || !pred(r) {
			return fail[rune](in)
		}
		return r, in.Advance(size), true
	}
}

// Char matches exactly the rune c.
func Char(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c })
}

// String matches the literal s and returns it.
// Nothing is consumed unless the whole of s matches.
func String(s string) Parser[string] {
	return func(in Input) (string, Input, bool) {
		if !in.HasPrefix(s) {
			return fail[string](in)
		}
		return s, in.Advance(len(s)), true
	}
}

// Regexp matches re at the current position and returns the matched text.
// The expression is anchored to the cursor, so a match further along the
// input does not count.
// The length of the match follows re, so a regexp compiled with
// regexp.CompilePOSIX or switched to Longest takes the longest match.
func Regexp(re *regexp.Regexp) Parser[string] {
	anchored := regexp.MustCompile(`^(?:` + re.String() + `)`)
	return func(in Input) (string, Input, bool) {
		text := in.String()
		loc := anchored.FindStringIndex(text)
		if loc == nil {
			return fail[string](in)
		}
		// A match at the cursor exists, so the leftmost match of re starts here.
		if m := re.FindStringIndex(text); m != nil && m[0] == 0 {
			loc = m
		}
		return text[:loc[1]], in.Advance(loc[1]), true
	}
}
