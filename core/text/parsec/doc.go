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

// Package parsec provides composable parser combinators for writing
// recursive-descent parsers without hand written scanning loops.
//
// A Parser is a plain function from an Input view to a value, the remaining
// Input and a success flag. Primitive parsers such as Char, String and Digit
// match single tokens, and combinators such as Many, Choice, Map, SepBy and
// ChainLeft1 build larger parsers out of smaller ones. A failed parser never
// consumes input, so alternatives are always retried from the position the
// failed branch started at.
//
// Grammars are built once and then invoked any number of times:
//
//	number := parsec.Integer[int]().Lexeme()
//	list := parsec.SepBy(number, parsec.Char(',').Lexeme())
//	values, rest, ok := list.ParseString("+1, -2, 3")
//
// Rules that refer to themselves are written as ordinary functions with the
// parser signature and wrapped with Func, which is also how mutually recursive
// rules are expressed.
//
// Run is the convenience entry point for parsing a whole string, turning the
// outcome into an error value.
package parsec
