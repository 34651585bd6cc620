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

package parsec_test

import (
	"github.com/aiifabbf/parsec/core/assert"
	"github.com/aiifabbf/parsec/core/text/parsec"
)

// match asserts that p matches in, producing value and leaving rest.
func match[T any](assert assert.Manager, name string, p parsec.Parser[T], in string, value T, rest string) {
	v, r, ok := p.ParseString(in)
	if !assert.For(name).Add("input", in).ThatBoolean(ok).IsTrue() {
		return
	}
	assert.For(name).Add("input", in).That(v).DeepEquals(value)
	assert.For(name+" rest").Add("input", in).ThatString(r).Equals(rest)
}

// noMatch asserts that p fails on in without consuming anything.
func noMatch[T any](assert assert.Manager, name string, p parsec.Parser[T], in string) {
	_, r, ok := p.ParseString(in)
	assert.For(name).Add("input", in).ThatBoolean(ok).IsFalse()
	assert.For(name+" rest").Add("input", in).ThatString(r).Equals(in)
}

func unit(parsec.Unit) parsec.Unit { return parsec.Unit{} }

func digitValue(r rune) int { return int(r - '0') }
