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
	"context"

	"github.com/aiifabbf/parsec/core/log"
)

// Trace wraps p so that every invocation is logged at debug level to the log
// handler of ctx, under a scope called name. Each line records the input
// offset, and whether p matched and how much it consumed.
//
// The logger is taken from ctx when Trace is called, and if it would drop
// debug messages p is returned unwrapped.
func Trace[T any](ctx context.Context, name string, p Parser[T]) Parser[T] {
	l := log.From(log.Enter(ctx, name))
	if !l.Active(log.Debug) {
		return p
	}
	return func(in Input) (T, Input, bool) {
		l.D("try at %d", in.Offset())
		v, next, ok := p(in)
		if ok {
			l.D("matched %q at %d", next.Since(in), in.Offset())
		} else {
			l.D("no match at %d", in.Offset())
		}
		return v, next, ok
	}
}
