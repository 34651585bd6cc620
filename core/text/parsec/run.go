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
	"fmt"

	"github.com/aiifabbf/parsec/core/fault"
	"github.com/pkg/errors"
)

const (
	// ErrNoMatch is returned by Run when the parser does not match.
	ErrNoMatch = fault.Const("No match")
	// ErrTrailing is returned by Run when the parser matched but did not
	// consume all of the input.
	ErrTrailing = fault.Const("Unexpected input at end of parse")
	// ErrNoProgress is the cause of a ProgressError.
	ErrNoProgress = fault.Const("Failed to make progress")
)

// ProgressError is panicked by the unbounded repetition combinators when the
// repeated parser succeeds without consuming any input, which would otherwise
// loop forever. It always indicates a broken grammar.
type ProgressError struct {
	// Offset is the input offset the repetition was stuck at.
	Offset int
}

func (e *ProgressError) Error() string {
	return fmt.Sprintf("%v at offset %d", ErrNoProgress, e.Offset)
}

// Cause returns ErrNoProgress, for errors.Cause.
func (e *ProgressError) Cause() error { return ErrNoProgress }

// Unwrap returns ErrNoProgress, for errors.Is.
func (e *ProgressError) Unwrap() error { return ErrNoProgress }

// Run parses the whole of s with p.
// It returns ErrNoMatch if p fails and ErrTrailing if p leaves any input
// unconsumed, both wrapped with more detail. A grammar that stops making
// progress inside a repetition is reported as a *ProgressError rather than a
// panic.
func Run[T any](p Parser[T], s string) (result T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr, ok := r.(*ProgressError)
		if !ok {
			panic(r)
		}
		var zero T
		result, err = zero, fault.From(perr)
	}()
	v, rest, ok := p(NewInput(s))
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrNoMatch, "parsing %q", s)
	}
	if !rest.EOF() {
		var zero T
		return zero, errors.Wrapf(ErrTrailing, "%d bytes left over %q", rest.Len(), rest.String())
	}
	return v, nil
}
