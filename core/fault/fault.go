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

// Package fault holds the error types shared across packages.
package fault

import "github.com/pkg/errors"

// Const is the type for constant error values.
// Being a string type, a Const can be declared in a const block and compared
// with ==, which makes it the natural type for sentinel errors.
type Const string

// Error implements error for Const returning the string value of the const.
func (e Const) Error() string { return string(e) }

// InvalidErrorType is the cause of the error returned by From when the value
// is not an error.
const InvalidErrorType = Const("Invalid type for error")

// From converts a value recovered from a panic into an error.
// If the value is nil, an untyped nil is returned. If the value is an error it
// is returned as is, any other value gives an error whose cause is
// InvalidErrorType and whose message includes the value.
func From(value interface{}) error {
	switch err := value.(type) {
	case nil:
		return nil
	case error:
		return err
	default:
		return errors.Wrapf(InvalidErrorType, "%T(%v)", value, value)
	}
}
