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

// Choice tries each parser in order, starting each one from the same input,
// and returns the result of the first one that succeeds.
// It is ordered choice, not longest match: an earlier alternative that
// matches a prefix wins over a later one that would match more.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, bool) {
		for _, p := range ps {
			if v, next, ok := p(in); ok {
				return v, next, true
			}
		}
		return fail[T](in)
	}
}

// Map returns a parser that applies f to the value of p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) (U, Input, bool) {
		v, next, ok := p(in)
		if !ok {
			return fail[U](in)
		}
		return f(v), next, true
	}
}

// AndThen runs p, then passes its value to f to pick the parser that is run
// on the rest of the input.
func AndThen[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(in Input) (U, Input, bool) {
		v, next, ok := p(in)
		if !ok {
			return fail[U](in)
		}
		u, rest, ok := f(v)(next)
		if !ok {
			return fail[U](in)
		}
		return u, rest, true
	}
}

// Recognize runs p and returns the text it consumed instead of its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Input) (string, Input, bool) {
		_, next, ok := p(in)
		if !ok {
			return fail[string](in)
		}
		return next.Since(in), next, true
	}
}

// LookAhead runs p but does not consume any input, even if p matches.
func LookAhead[T any](p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, bool) {
		v, _, ok := p(in)
		if !ok {
			return fail[T](in)
		}
		return v, in, true
	}
}

// Optional tries p and succeeds either way, consuming input only if p
// matched. The value of p is dropped.
func Optional[T any](p Parser[T]) Parser[Unit] {
	return func(in Input) (Unit, Input, bool) {
		if _, next, ok := p(in); ok {
			return Unit{}, next, true
		}
		return Unit{}, in, true
	}
}

// Option is like Optional but keeps the value of p, using fallback when p
// does not match.
func Option[T any](p Parser[T], fallback T) Parser[T] {
	return func(in Input) (T, Input, bool) {
		if v, next, ok := p(in); ok {
			return v, next, true
		}
		return fallback, in, true
	}
}
