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

// Parser is a function that tries to match a T at the start of in.
// On success it returns the value and the input left after the match.
// On failure it returns false, along with the zero T and in unchanged.
//
// Parsers must not hold any state between calls, so a single parser value can
// be reused freely, including in more than one place in the same grammar.
type Parser[T any] func(in Input) (T, Input, bool)

// Unit is the value type of parsers that match without producing a useful
// value.
type Unit struct{}

// Func adapts any function with the parser signature to a Parser.
//
// This is how recursive grammars are written: a rule that refers to itself is
// declared as a named function and wrapped with Func wherever a Parser is
// needed, which also works for rules that refer to each other.
func Func[T any](f func(Input) (T, Input, bool)) Parser[T] {
	return Parser[T](f)
}

// Lazy returns a parser that calls build every time it is invoked, and runs
// the parser it returns.
// It lets a grammar value refer to a rule that is not constructed yet.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return func(in Input) (T, Input, bool) {
		return build()(in)
	}
}

// Parse runs the parser against in.
func (p Parser[T]) Parse(in Input) (T, Input, bool) {
	return p(in)
}

// ParseString runs the parser against the whole of s, and returns the
// unconsumed text rather than an Input view.
func (p Parser[T]) ParseString(s string) (T, string, bool) {
	v, rest, ok := p(NewInput(s))
	return v, rest.String(), ok
}

// Or is the two way form of Choice.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return Choice(p, q)
}

// LookAhead is the method form of LookAhead.
func (p Parser[T]) LookAhead() Parser[T] {
	return LookAhead(p)
}

// Optional is the method form of Optional.
func (p Parser[T]) Optional() Parser[Unit] {
	return Optional(p)
}

// Lexeme returns a parser that matches p followed by any amount of
// whitespace, and returns the value of p.
func (p Parser[T]) Lexeme() Parser[T] {
	return Left(p, Whitespaces())
}

func fail[T any](in Input) (T, Input, bool) {
	var zero T
	return zero, in, false
}
