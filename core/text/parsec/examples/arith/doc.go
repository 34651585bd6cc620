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

// Package arith is a worked example of the parsec package: a parser and
// evaluator for integer arithmetic with the four basic operators and
// parentheses.
//
// The grammar is
//
//	expression := level0
//	level0     := level1 (('+' | '-') level1)*
//	level1     := term (('*' | '/') term)*
//	term       := integer | '(' level0 ')'
//
// where every token may be followed by white space and integers may carry a
// sign.
package arith
