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
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Sign matches '+' or '-'.
func Sign() Parser[rune] {
	return OneOf("+-")
}

// Decimal matches one or more digits and converts them to a T.
// It does not accept a sign, and fails if the value does not fit in a T.
func Decimal[T constraints.Integer]() Parser[T] {
	return convert(Many1String(Digit()), parseInteger[T])
}

// Integer matches an optionally signed run of digits and converts it to a T.
// White space is allowed between the sign and the digits.
// It fails if the value does not fit in a T, which includes any negative
// value when T is unsigned.
func Integer[T constraints.Integer]() Parser[T] {
	return convert(signed(Many1String(Digit())), parseInteger[T])
}

// Float matches an optionally signed decimal number with an optional fraction
// and exponent, such as "-1.5e3", and converts it to a T.
func Float[T constraints.Float]() Parser[T] {
	digits := Many1String(Digit())
	fraction := Right(Char('.'), digits)
	exponent := Right(OneOf("eE"), Right(Optional(Sign()), digits))
	body := Recognize(Right(digits, Right(Optional(fraction), Optional(exponent))))
	return convert(signed(body), parseFloat[T])
}

// signed prefixes the text of body with an optional sign, dropping any white
// space between the two.
func signed(body Parser[string]) Parser[string] {
	sign := Option(Left(Sign(), Whitespaces()), '+')
	return Seq(sign, body, func(s rune, text string) string {
		if s == '-' {
			return "-" + text
		}
		return text
	})
}

// convert runs p and turns its text into a T with conv, failing if conv
// returns an error.
func convert[T any](p Parser[string], conv func(string) (T, error)) Parser[T] {
	return func(in Input) (T, Input, bool) {
		text, next, ok := p(in)
		if !ok {
			return fail[T](in)
		}
		v, err := conv(text)
		if err != nil {
			return fail[T](in)
		}
		return v, next, true
	}
}

func parseInteger[T constraints.Integer](text string) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if zero-1 < zero {
		v, err := strconv.ParseInt(text, 10, bits)
		return T(v), err
	}
	v, err := strconv.ParseUint(text, 10, bits)
	return T(v), err
}

func parseFloat[T constraints.Float](text string) (T, error) {
	var zero T
	v, err := strconv.ParseFloat(text, int(unsafe.Sizeof(zero))*8)
	return T(v), err
}
