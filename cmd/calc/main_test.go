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

package main

import (
	"bytes"
	"testing"

	"github.com/aiifabbf/parsec/core/assert"
	"github.com/aiifabbf/parsec/core/text/parsec"
	"github.com/aiifabbf/parsec/core/text/parsec/examples/arith"
)

func calc(args ...string) (string, string, error) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalc(t *testing.T) {
	assert := assert.To(t)
	out, _, err := calc("1", "+", "2", "*", "3")
	assert.For("err").ThatError(err).Succeeded()
	assert.For("output").ThatString(out).Equals("1 + 2 * 3 = 7\n")

	out, _, err = calc("--tree", "(1+2)*3")
	assert.For("tree err").ThatError(err).Succeeded()
	assert.For("tree output").ThatString(out).Equals("((1 + 2) * 3) = 9\n")
}

func TestCalcNegative(t *testing.T) {
	assert := assert.To(t)
	out, _, err := calc("--", "-1", "+", "2")
	assert.For("leading err").ThatError(err).Succeeded()
	assert.For("leading output").ThatString(out).Equals("-1 + 2 = 1\n")

	out, _, err = calc("1", "-", "-2")
	assert.For("later err").ThatError(err).Succeeded()
	assert.For("later output").ThatString(out).Equals("1 - -2 = 3\n")

	out, _, err = calc("--tree", "--", "-1*2")
	assert.For("tree err").ThatError(err).Succeeded()
	assert.For("tree output").ThatString(out).Equals("(-1 * 2) = -2\n")
}

func TestCalcEnvironment(t *testing.T) {
	assert := assert.To(t)
	t.Setenv("CALC_TREE", "true")
	out, _, err := calc("8 / 2 / 2")
	assert.For("err").ThatError(err).Succeeded()
	assert.For("output").ThatString(out).Equals("((8 / 2) / 2) = 2\n")

	// A flag on the command line wins over the environment.
	out, _, err = calc("--tree=false", "8 / 2 / 2")
	assert.For("flag err").ThatError(err).Succeeded()
	assert.For("flag output").ThatString(out).Equals("8 / 2 / 2 = 2\n")
}

func TestCalcVerbose(t *testing.T) {
	assert := assert.To(t)
	_, quiet, err := calc("1+1")
	assert.For("quiet err").ThatError(err).Succeeded()
	assert.For("quiet log").ThatString(quiet).IsEmpty()

	_, logged, err := calc("-v", "1+1")
	assert.For("verbose err").ThatError(err).Succeeded()
	assert.For("verbose log").ThatString(logged).Contains("level=debug")
	assert.For("verbose trace").ThatString(logged).Contains("calc->arith->level0")
}

func TestCalcErrors(t *testing.T) {
	assert := assert.To(t)
	out, logged, err := calc("1", "/", "0")
	assert.For("divide err").ThatError(err).HasCause(arith.ErrDivideByZero)
	assert.For("divide output").ThatString(out).IsEmpty()
	assert.For("divide log").ThatString(logged).Contains("Division by zero")

	_, _, err = calc("1", "+")
	assert.For("parse err").ThatError(err).HasCause(parsec.ErrTrailing)

	_, _, err = calc()
	assert.For("no args").ThatError(err).Failed()
}
