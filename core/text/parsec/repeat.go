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

import "strings"

// Text is the set of value types that can be concatenated into a string by
// the String forms of the repetition combinators.
type Text interface {
	rune | string
}

// accumulator collects the values of one run of a repeated parser.
// A fresh accumulator is made for every invocation.
type accumulator[T, R any] interface {
	add(T)
	result() R
}

type sliceAccumulator[T any] struct{ items []T }

func (a *sliceAccumulator[T]) add(v T)     { a.items = append(a.items, v) }
func (a *sliceAccumulator[T]) result() []T { return a.items }

func newSlice[T any]() accumulator[T, []T] {
	return &sliceAccumulator[T]{items: []T{}}
}

type textAccumulator[T Text] struct{ buf strings.Builder }

func (a *textAccumulator[T]) add(v T) {
	switch v := any(v).(type) {
	case rune:
		a.buf.WriteRune(v)
	case string:
		a.buf.WriteString(v)
	}
}

func (a *textAccumulator[T]) result() string { return a.buf.String() }

func newText[T Text]() accumulator[T, string] {
	return &textAccumulator[T]{}
}

// repeat is the single scanning loop behind every repetition combinator.
// It matches p between min and max times (max < 0 means unbounded), feeding
// each value to a new accumulator.
// If fewer than min matches are found the whole repeat fails and the input is
// left where it started.
func repeat[T, R any](p Parser[T], min, max int, acc func() accumulator[T, R]) Parser[R] {
	return func(in Input) (R, Input, bool) {
		out := acc()
		at := in
		for n := 0; max < 0 || n < max; n++ {
			v, next, ok := p(at)
			if !ok {
				if n < min {
					return fail[R](in)
				}
				break
			}
			if max < 0 && next.Offset() == at.Offset() {
				panic(&ProgressError{Offset: at.Offset()})
			}
			out.add(v)
			at = next
		}
		return out.result(), at, true
	}
}

// Many matches p zero or more times and returns the values in order.
// It never fails.
//
// p must consume input whenever it succeeds. A match of p that consumes
// nothing would repeat forever, so it panics with a *ProgressError instead.
func Many[T any](p Parser[T]) Parser[[]T] {
	return repeat(p, 0, -1, newSlice[T])
}

// Many1 is like Many except it fails unless p matches at least once.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return repeat(p, 1, -1, newSlice[T])
}

// Count matches p exactly n times.
// If any of the matches fail, Count fails without consuming anything.
// A count of zero or less matches nothing and always succeeds.
func Count[T any](p Parser[T], n int) Parser[[]T] {
	n = bounded(n)
	return repeat(p, n, n, newSlice[T])
}

// ManyString is like Many, but concatenates the matched runes or strings into
// a single string.
func ManyString[T Text](p Parser[T]) Parser[string] {
	return repeat(p, 0, -1, newText[T])
}

// Many1String is like Many1, but concatenates the matches into a string.
func Many1String[T Text](p Parser[T]) Parser[string] {
	return repeat(p, 1, -1, newText[T])
}

// CountString is like Count, but concatenates the matches into a string.
func CountString[T Text](p Parser[T], n int) Parser[string] {
	n = bounded(n)
	return repeat(p, n, n, newText[T])
}

// bounded clamps a repeat count so it can never mean unbounded.
func bounded(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
