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

package log

import (
	"context"
	"fmt"
)

// Err creates a new error that wraps cause with the current logging
// information.
func (l *Logger) Err(cause error, msg string) error {
	return &err{cause, l.Message(Error, false, msg)}
}

// Errf creates a new error that wraps cause with the current logging
// information.
func (l *Logger) Errf(cause error, fmt string, args ...interface{}) error {
	return l.Err(cause, sprintf(fmt, args...))
}

type err struct {
	cause error
	msg   *Message
}

// Cause returns the wrapped error, for github.com/pkg/errors.Cause.
func (e *err) Cause() error { return e.cause }

// Unwrap returns the wrapped error, for the standard errors package.
func (e *err) Unwrap() error { return e.cause }

func (e *err) Error() string {
	text := e.msg.Text
	if len(e.msg.Trace) > 0 {
		text = fmt.Sprintf("%s: %s", e.msg.Trace[len(e.msg.Trace)-1], text)
	}
	if e.cause == nil {
		return text
	}
	return fmt.Sprintf("%v: %v", text, e.cause)
}

// Err creates a new error that wraps cause with the current logging
// information.
func Err(ctx context.Context, cause error, msg string) error {
	return From(ctx).Err(cause, msg)
}

// Errf creates a new error that wraps cause with the current logging
// information.
func Errf(ctx context.Context, cause error, fmt string, args ...interface{}) error {
	return From(ctx).Errf(cause, fmt, args...)
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
