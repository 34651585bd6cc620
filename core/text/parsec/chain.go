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

// ChainLeft1 matches one or more term separated by op, and folds the values
// from the left with the functions op returns, so "1-2-3" is (1-2)-3.
//
// It fails only if the first term fails. An op that is not followed by a term
// is left unconsumed. An op and term that together consume nothing panic with
// a *ProgressError.
func ChainLeft1[T any](term Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return func(in Input) (T, Input, bool) {
		acc, at, ok := term(in)
		if !ok {
			return fail[T](in)
		}
		for {
			f, afterOp, ok := op(at)
			if !ok {
				return acc, at, true
			}
			v, next, ok := term(afterOp)
			if !ok {
				return acc, at, true
			}
			if next.Offset() == at.Offset() {
				panic(&ProgressError{Offset: at.Offset()})
			}
			acc = f(acc, v)
			at = next
		}
	}
}

// ChainRight1 is like ChainLeft1 but folds from the right, so "1-2-3" is
// 1-(2-3).
//
// An op whose right hand side fails to match is given back together with the
// failed right hand side, leaving the input just after the last term.
// A term and op that together consume nothing panic with a *ProgressError.
func ChainRight1[T any](term Parser[T], op Parser[func(T, T) T]) Parser[T] {
	var chain Parser[T]
	chain = func(in Input) (T, Input, bool) {
		v, afterTerm, ok := term(in)
		if !ok {
			return fail[T](in)
		}
		f, afterOp, ok := op(afterTerm)
		if !ok {
			return v, afterTerm, true
		}
		if afterOp.Offset() == in.Offset() {
			panic(&ProgressError{Offset: in.Offset()})
		}
		w, rest, ok := chain(afterOp)
		if !ok {
			return v, afterTerm, true
		}
		return f(v, w), rest, true
	}
	return chain
}
