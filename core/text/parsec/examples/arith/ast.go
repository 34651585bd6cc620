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
	"fmt"
	"strconv"

	"github.com/aiifabbf/parsec/core/fault"
	"github.com/pkg/errors"
)

// ErrDivideByZero is returned by Eval when a divisor evaluates to zero.
const ErrDivideByZero = fault.Const("Division by zero")

// Expression is a node of the syntax tree of an arithmetic expression.
type Expression interface {
	// Eval returns the value of the expression.
	Eval() (int64, error)
	// String returns the expression in fully parenthesised form.
	String() string
}

// Number is an integer literal.
type Number int64

// Op is a binary operator.
type Op rune

// The operators of the grammar, each written as its own symbol.
const (
	// Add is '+'.
	Add = Op('+')
	// Subtract is '-'.
	Subtract = Op('-')
	// Multiply is '*'.
	Multiply = Op('*')
	// Divide is '/', which truncates toward zero.
	Divide = Op('/')
)

// String returns the symbol of the operator.
func (o Op) String() string { return string(rune(o)) }

// Binary is the application of a binary operator to two expressions.
type Binary struct {
	Op  Op
	LHS Expression
	RHS Expression
}

// Eval returns the value of the literal. It never fails.
func (n Number) Eval() (int64, error) { return int64(n), nil }

// String returns the literal in decimal, with a leading '-' if negative.
func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }

// Eval evaluates both operands and applies the operator to them.
// Dividing by zero returns ErrDivideByZero.
func (b *Binary) Eval() (int64, error) {
	lhs, err := b.LHS.Eval()
	if err != nil {
		return 0, err
	}
	rhs, err := b.RHS.Eval()
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case Add:
		return lhs + rhs, nil
	case Subtract:
		return lhs - rhs, nil
	case Multiply:
		return lhs * rhs, nil
	case Divide:
		if rhs == 0 {
			return 0, errors.Wrapf(ErrDivideByZero, "evaluating %v", b)
		}
		return lhs / rhs, nil
	default:
		return 0, errors.Errorf("Unknown operator %q", rune(b.Op))
	}
}

// String returns the expression in parentheses, such as "(1 + (2 * 3))".
func (b *Binary) String() string {
	return fmt.Sprintf("(%v %v %v)", b.LHS, b.Op, b.RHS)
}
