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

// Package assert is a fluent assertion library for tests.
//
// Assertions are started from a Manager, which wraps the test object:
//
//	assert := assert.To(t)
//	assert.For("sum").Add("input", in).That(sum).Equals(6)
//
// Each assertion builds up a message, and only commits it to the test output
// if the test fails. The result of each test is also returned as a bool so
// callers can stop early.
package assert
