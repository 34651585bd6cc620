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

package arith

import (
	"context"

	"github.com/aiifabbf/parsec/core/log"
	"github.com/aiifabbf/parsec/core/text/parsec"
)

type grammar struct {
	level0 parsec.Parser[Expression]
	level1 parsec.Parser[Expression]
	term   parsec.Parser[Expression]
}

// newGrammar builds the expression parser. Each rule is traced to the log
// handler of ctx when it accepts debug messages.
func newGrammar(ctx context.Context) *grammar {
	g := &grammar{}
	number := parsec.Map(parsec.Integer[int64]().Lexeme(), func(v int64) Expression { return Number(v) })
	group := parsec.Between(parsec.Symbol("("), parsec.Func(g.expression), parsec.Symbol(")"))
	g.term = parsec.Trace(ctx, "term", parsec.Choice(number, group))
	g.level1 = parsec.Trace(ctx, "level1", parsec.ChainLeft1(g.term, operator("*/")))
	g.level0 = parsec.Trace(ctx, "level0", parsec.ChainLeft1(g.level1, operator("+-")))
	return g
}

// expression is the entry point of the recursion from term back to level0.
func (g *grammar) expression(in parsec.Input) (Expression, parsec.Input, bool) {
	return g.level0(in)
}

// operator matches any of the operator characters in ops and returns a
// function that builds the Binary node for it.
func operator(ops string) parsec.Parser[func(lhs, rhs Expression) Expression] {
	return parsec.Map(parsec.OneOf(ops).Lexeme(), func(r rune) func(lhs, rhs Expression) Expression {
		return func(lhs, rhs Expression) Expression {
			return &Binary{Op: Op(r), LHS: lhs, RHS: rhs}
		}
	})
}

// Parse parses input as an arithmetic expression.
// Leading and trailing white space is ignored. All of the input must form a
// single expression.
func Parse(ctx context.Context, input string) (Expression, error) {
	ctx = log.Enter(ctx, "arith")
	p := parsec.Right(parsec.Whitespaces(), newGrammar(ctx).level0)
	e, err := parsec.Run(p, input)
	if err != nil {
		return nil, log.Err(ctx, err, "Failed to parse expression")
	}
	log.D(ctx, "Parsed %v", e)
	return e, nil
}
