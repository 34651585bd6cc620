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
	"fmt"
	"regexp"

	"github.com/aiifabbf/parsec/core/text/parsec"
)

func ExampleSepEndBy() {
	integer := parsec.Integer[int]().Lexeme()
	list := parsec.SepEndBy(integer, parsec.Symbol(","))
	vec := parsec.Between(parsec.Symbol("vec!["), list, parsec.Symbol("]"))
	v, err := parsec.Run(vec, "vec![ +1, -2, 3, ]")
	fmt.Println(v, err)
	// Output: [1 -2 3] <nil>
}

func ExampleChainLeft1() {
	sub := parsec.Map(parsec.Symbol("-"), func(string) func(int, int) int {
		return func(a, b int) int { return a - b }
	})
	expr := parsec.ChainLeft1(parsec.Decimal[int]().Lexeme(), sub)
	v, rest, ok := expr.ParseString("10 - 2 - 3 -")
	fmt.Println(v, rest, ok)
	// Output: 5 - true
}

func ExampleRegexp() {
	ident := parsec.Regexp(regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`))
	assign := parsec.Seq(ident.Lexeme(), parsec.Right(parsec.Symbol("="), parsec.Integer[int]()),
		func(name string, value int) string { return fmt.Sprintf("%s:%d", name, value) })
	fmt.Println(parsec.Run(assign, "max_depth = -3"))
	// Output: max_depth:-3 <nil>
}

func ExampleRun() {
	_, err := parsec.Run(parsec.Many1String(parsec.Letter()), "abc123")
	fmt.Println(err)
	// Output: 3 bytes left over "123": Unexpected input at end of parse
}
