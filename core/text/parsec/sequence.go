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

// Seq runs a then b, and combines their values with f.
// If either parser fails the sequence fails without consuming anything.
func Seq[A, B, R any](a Parser[A], b Parser[B], f func(A, B) R) Parser[R] {
	return func(in Input) (R, Input, bool) {
		va, next, ok := a(in)
		if !ok {
			return fail[R](in)
		}
		vb, rest, ok := b(next)
		if !ok {
			return fail[R](in)
		}
		return f(va, vb), rest, true
	}
}

// Left runs a then b, and returns the value of a.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Seq(a, b, func(va A, _ B) A { return va })
}

// Right runs a then b, and returns the value of b.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Seq(a, b, func(_ A, vb B) B { return vb })
}

// Between matches open, p and close in sequence, and returns the value of p.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Left(Right(open, p), close)
}
