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
	"regexp"
	"testing"
	"unicode"

	"github.com/aiifabbf/parsec/core/assert"
	"github.com/aiifabbf/parsec/core/text/parsec"
)

func TestAny(t *testing.T) {
	assert := assert.To(t)
	match(assert, "any", parsec.Any(), "abc", 'a', "bc")
	match(assert, "any multibyte", parsec.Any(), "éa", 'é', "a")
	noMatch(assert, "any empty", parsec.Any(), "")
}

func TestEOF(t *testing.T) {
	assert := assert.To(t)
	match(assert, "eof", parsec.EOF(), "", parsec.Unit{}, "")
	noMatch(assert, "eof non empty", parsec.EOF(), "a")
}

func TestEpsilon(t *testing.T) {
	assert := assert.To(t)
	match(assert, "epsilon", parsec.Epsilon(), "abc", parsec.Unit{}, "abc")
	match(assert, "epsilon empty", parsec.Epsilon(), "", parsec.Unit{}, "")
	match(assert, "pure", parsec.Pure(42), "abc", 42, "abc")
	noMatch(assert, "fail", parsec.Fail[int](), "abc")
}

func TestSatisfy(t *testing.T) {
	assert := assert.To(t)
	digit := parsec.Satisfy(unicode.IsDigit)
	match(assert, "satisfy", digit, "1a", '1', "a")
	noMatch(assert, "satisfy non digit", digit, "a1")
	noMatch(assert, "satisfy empty", digit, "")
	match(assert, "char", parsec.Char('a'), "abc", 'a', "bc")
	noMatch(assert, "char mismatch", parsec.Char('a'), "bc")
}

func TestString(t *testing.T) {
	assert := assert.To(t)
	hello := parsec.String("hello")
	match(assert, "string", hello, "hello world", "hello", " world")
	match(assert, "string exact", hello, "hello", "hello", "")
	noMatch(assert, "string mismatch", hello, "help me")
	noMatch(assert, "string short", hello, "hel")
	noMatch(assert, "string empty input", hello, "")
	match(assert, "string multibyte", parsec.String("日本"), "日本語", "日本", "語")
	match(assert, "empty string", parsec.String(""), "abc", "", "abc")
}

func TestCharacterClasses(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name   string
		parser parsec.Parser[rune]
		accept string
		reject string
	}{
		{"whitespace", parsec.Whitespace(), " \t\n ", "a_"},
		{"newline", parsec.Newline(), "\n", " \t"},
		{"tab", parsec.Tab(), "\t", " \n"},
		{"upper", parsec.Upper(), "AZÉ", "az1"},
		{"lower", parsec.Lower(), "azé", "AZ1"},
		{"letter", parsec.Letter(), "aZé日", "1_ "},
		{"alphanumeric", parsec.Alphanumeric(), "aZ09é", "_- "},
		{"digit", parsec.Digit(), "0123456789", "a٣ "},
		{"hex digit", parsec.HexDigit(), "09afAF", "gG "},
		{"one of", parsec.OneOf("+-é"), "+-é", "*e "},
		{"none of", parsec.NoneOf("+-é"), "*e ", "+-é"},
		{"sign", parsec.Sign(), "+-", "*1"},
	} {
		for _, r := range test.accept {
			match(assert, test.name, test.parser, string(r)+"x", r, "x")
		}
		for _, r := range test.reject {
			noMatch(assert, test.name, test.parser, string(r)+"x")
		}
		noMatch(assert, test.name+" empty", test.parser, "")
	}
}

func TestWhitespaces(t *testing.T) {
	assert := assert.To(t)
	match(assert, "whitespaces", parsec.Whitespaces(), "  \t\nx", parsec.Unit{}, "x")
	match(assert, "whitespaces none", parsec.Whitespaces(), "x", parsec.Unit{}, "x")
	match(assert, "gap", parsec.Gap(), " \t x", parsec.Unit{}, "x")
	noMatch(assert, "gap none", parsec.Gap(), "x")
	match(assert, "symbol", parsec.Symbol("let"), "let  x", "let", "x")
}

func TestRegexp(t *testing.T) {
	assert := assert.To(t)
	word := parsec.Regexp(regexp.MustCompile(`[a-z]+`))
	match(assert, "regexp", word, "abc123", "abc", "123")
	noMatch(assert, "regexp anchored", word, "123abc")
	alt := parsec.Regexp(regexp.MustCompile(`a|ab`))
	match(assert, "regexp alternation", alt, "abc", "a", "bc")
	posix := parsec.Regexp(regexp.MustCompilePOSIX(`a|ab`))
	match(assert, "regexp posix", posix, "abc", "ab", "c")
	noMatch(assert, "regexp posix anchored", posix, "cab")
	lazy := regexp.MustCompile(`a+?`)
	match(assert, "regexp lazy", parsec.Regexp(lazy), "aaab", "a", "aab")
	longest := regexp.MustCompile(`a+?`)
	longest.Longest()
	match(assert, "regexp longest", parsec.Regexp(longest), "aaab", "aaa", "b")
}
