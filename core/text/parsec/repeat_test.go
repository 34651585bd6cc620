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
	"testing"

	"github.com/aiifabbf/parsec/core/assert"
	"github.com/aiifabbf/parsec/core/text/parsec"
)

func TestMany(t *testing.T) {
	assert := assert.To(t)
	digits := parsec.ManyString(parsec.Digit())
	match(assert, "many string", digits, "1234abc", "1234", "abc")
	match(assert, "many string none", digits, "abc", "", "abc")
	match(assert, "many string all", digits, "1234", "1234", "")
	match(assert, "many slice", parsec.Many(parsec.Digit()), "12a", []rune{'1', '2'}, "a")
	match(assert, "many slice none", parsec.Many(parsec.Digit()), "a", []rune{}, "a")
	match(assert, "many mapped", parsec.Many(parsec.Map(parsec.Digit(), digitValue)), "907", []int{9, 0, 7}, "")
	match(assert, "many strings", parsec.ManyString(parsec.String("ab")), "ababc", "abab", "c")
}

func TestManyNeverFails(t *testing.T) {
	assert := assert.To(t)
	digits := parsec.ManyString(parsec.Digit())
	for _, in := range []string{"", "a", "1", "12a34", "é", "  "} {
		_, rest, ok := digits.ParseString(in)
		assert.For("many succeeds").Add("input", in).ThatBoolean(ok).IsTrue()
		// Running again on the leftover finds nothing more to consume.
		again, rest2, ok := digits.ParseString(rest)
		assert.For("continuation").Add("input", in).ThatBoolean(ok).IsTrue()
		assert.For("continuation value").Add("input", in).ThatString(again).IsEmpty()
		assert.For("continuation rest").Add("input", in).ThatString(rest2).Equals(rest)
	}
}

func TestMany1(t *testing.T) {
	assert := assert.To(t)
	digit := parsec.Digit()
	match(assert, "many1 string", parsec.Many1String(digit), "12a", "12", "a")
	noMatch(assert, "many1 string none", parsec.Many1String(digit), "abc")
	noMatch(assert, "many1 empty", parsec.Many1(digit), "")
	for _, in := range []string{"", "a", "1", "123", "1a2"} {
		_, _, digitOk := digit.ParseString(in)
		many, manyRest, _ := parsec.Many(digit).ParseString(in)
		many1, many1Rest, ok := parsec.Many1(digit).ParseString(in)
		assert.For("many1 fails iff p fails").Add("input", in).ThatBoolean(ok).Equals(digitOk)
		if ok {
			assert.For("many1 matches many").Add("input", in).ThatSlice(many1).Equals(many)
			assert.For("many1 rest matches many").Add("input", in).ThatString(many1Rest).Equals(manyRest)
		}
	}
}

func TestCount(t *testing.T) {
	assert := assert.To(t)
	match(assert, "count", parsec.Count(parsec.Digit(), 3), "12345", []rune{'1', '2', '3'}, "45")
	match(assert, "count exact", parsec.Count(parsec.Digit(), 2), "12", []rune{'1', '2'}, "")
	match(assert, "count zero", parsec.Count(parsec.Digit(), 0), "12", []rune{}, "12")
	match(assert, "count negative", parsec.Count(parsec.Digit(), -1), "12", []rune{}, "12")
	match(assert, "count string", parsec.CountString(parsec.Digit(), 2), "123", "12", "3")
	// A failure part way through gives back everything consumed so far.
	noMatch(assert, "count short", parsec.Count(parsec.Digit(), 3), "12a")
	noMatch(assert, "count string short", parsec.CountString(parsec.Digit(), 4), "123")
	noMatch(assert, "count empty", parsec.Count(parsec.Digit(), 1), "")
}

// parses adapts p to a function of the input text, for tables that mix
// parsers of different value types.
func parses[T any](p parsec.Parser[T]) func(string) {
	return func(s string) { p.ParseString(s) }
}

func TestManyWithoutProgress(t *testing.T) {
	blank := parsec.Optional(parsec.Char('a'))
	maybeNumber := parsec.Option(parsec.Decimal[int](), 0)
	for _, test := range []struct {
		name   string
		parse  func(string)
		input  string
		offset int
	}{
		{"epsilon", parses(parsec.Many(parsec.Epsilon())), "abc", 0},
		{"optional", parses(parsec.Many(blank)), "aab", 2},
		{"many1 optional", parses(parsec.Many1(parsec.Optional(parsec.Char('x')))), "", 0},
		{"sep by", parses(parsec.SepBy(blank, parsec.Whitespaces())), "b", 0},
		{"sep by after progress", parses(parsec.SepBy(blank, parsec.Whitespaces())), "a b", 2},
		{"sep end by", parses(parsec.SepEndBy(blank, parsec.Whitespaces())), "b", 0},
		{"end by", parses(parsec.EndBy(blank, parsec.Whitespaces())), "b", 0},
		{"chain left", parses(parsec.ChainLeft1(maybeNumber, parsec.Pure(add))), "x", 0},
		{"chain left after progress", parses(parsec.ChainLeft1(maybeNumber, parsec.Pure(add))), "12x", 2},
		{"chain right", parses(parsec.ChainRight1(maybeNumber, parsec.Pure(add))), "x", 0},
		{"chain right after progress", parses(parsec.ChainRight1(maybeNumber, parsec.Pure(add))), "12x", 2},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.To(t)
			defer func() {
				err, ok := recover().(*parsec.ProgressError)
				if assert.For("panic").ThatBoolean(ok).IsTrue() {
					assert.For("offset").That(err.Offset).Equals(test.offset)
					assert.For("cause").ThatError(err).HasCause(parsec.ErrNoProgress)
				}
			}()
			test.parse(test.input)
		})
	}
}
