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
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Whitespace matches a single unicode white space rune.
func Whitespace() Parser[rune] { return Satisfy(unicode.IsSpace) }

// Whitespaces skips zero or more white space runes. It never fails.
func Whitespaces() Parser[Unit] {
	return func(in Input) (Unit, Input, bool) {
		for {
			r, size := in.Peek()
			if size == 0 || !unicode.IsSpace(r) {
				return Unit{}, in, true
			}
			in = in.Advance(size)
		}
	}
}

// Gap skips one or more white space runes.
func Gap() Parser[Unit] {
	return Right(Whitespace(), Whitespaces())
}

// Newline matches '\n'.
func Newline() Parser[rune] { return Char('\n') }

// Tab matches '\t'.
func Tab() Parser[rune] { return Char('\t') }

// Upper matches an upper case letter.
func Upper() Parser[rune] { return Satisfy(unicode.IsUpper) }

// Lower matches a lower case letter.
func Lower() Parser[rune] { return Satisfy(unicode.IsLower) }

// Letter matches any unicode letter.
func Letter() Parser[rune] { return Satisfy(unicode.IsLetter) }

// Alphanumeric matches a unicode letter or number.
func Alphanumeric() Parser[rune] {
	return Satisfy(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) })
}

// Digit matches '0' to '9'.
func Digit() Parser[rune] { return Satisfy(isDigit) }

// HexDigit matches '0' to '9', 'a' to 'f' and 'A' to 'F'.
func HexDigit() Parser[rune] {
	return Satisfy(func(r rune) bool {
		return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
	})
}

// OneOf matches any single rune that appears in chars.
func OneOf(chars string) Parser[rune] {
	table := rangetable.New([]rune(chars)...)
	return Satisfy(func(r rune) bool { return unicode.Is(table, r) })
}

// NoneOf matches any single rune that does not appear in chars.
func NoneOf(chars string) Parser[rune] {
	table := rangetable.New([]rune(chars)...)
	return Satisfy(func(r rune) bool { return !unicode.Is(table, r) })
}

// Symbol matches the literal s followed by any amount of white space.
func Symbol(s string) Parser[string] {
	return String(s).Lexeme()
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
