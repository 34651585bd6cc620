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

// sepBy is the shared loop of the separated list parsers.
// When a separator matches but the element after it does not, keepSep decides
// whether the separator stays consumed or is given back.
// A separator and element that together consume nothing panic with a
// *ProgressError, as in repeat.
func sepBy[T, S any](p Parser[T], sep Parser[S], min int, keepSep bool) Parser[[]T] {
	return func(in Input) ([]T, Input, bool) {
		out := []T{}
		v, at, ok := p(in)
		if !ok {
			if min > 0 {
				return fail[[]T](in)
			}
			return out, in, true
		}
		out = append(out, v)
		for {
			_, afterSep, ok := sep(at)
			if !ok {
				return out, at, true
			}
			v, next, ok := p(afterSep)
			if !ok {
				if keepSep {
					return out, afterSep, true
				}
				return out, at, true
			}
			if next.Offset() == at.Offset() {
				panic(&ProgressError{Offset: at.Offset()})
			}
			out = append(out, v)
			at = next
		}
	}
}

// SepBy matches zero or more p separated by sep, and returns the values of p.
// A trailing separator that is not followed by another p is not consumed.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return sepBy(p, sep, 0, false)
}

// SepBy1 is like SepBy, but requires at least one p.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return sepBy(p, sep, 1, false)
}

// SepEndBy is like SepBy, but also consumes a trailing separator after the
// last p.
func SepEndBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return sepBy(p, sep, 0, true)
}

// EndBy matches zero or more p, each of which must be followed by sep.
func EndBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Many(Left(p, sep))
}

// EndBy1 is like EndBy, but requires at least one p.
func EndBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Many1(Left(p, sep))
}
