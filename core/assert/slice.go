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

package assert

import (
	"reflect"
)

// OnSlice is the result of calling ThatSlice on an Assertion.
// It provides assertion tests that are specific to slice types.
type OnSlice struct {
	Assertion
	slice interface{}
}

// ThatSlice returns an OnSlice for assertions on slice type objects.
// Calling this with a non slice type will result in panics.
func (a Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{Assertion: a, slice: slice}
}

// IsEmpty asserts that the slice was of length 0
func (o OnSlice) IsEmpty() bool {
	value := reflect.ValueOf(o.slice)
	return o.Compare(value.Len(), "length ==", 0).Test(value.Len() == 0)
}

// IsNotEmpty asserts that the slice has elements
func (o OnSlice) IsNotEmpty() bool {
	value := reflect.ValueOf(o.slice)
	return o.Compare(value.Len(), "length >", 0).Test(value.Len() > 0)
}

// IsLength asserts that the slice has exactly the specified number of elements
func (o OnSlice) IsLength(length int) bool {
	value := reflect.ValueOf(o.slice)
	return o.Compare(value.Len(), "length ==", length).Test(value.Len() == length)
}

// Equals asserts the array or slice matches expected, element by element.
// A nil slice is considered equal to an empty one.
func (o OnSlice) Equals(expected interface{}) bool {
	gs := reflect.ValueOf(o.slice)
	es := reflect.ValueOf(expected)
	if gs.Len() != es.Len() {
		return o.Compare(o.slice, "==", expected).Test(false)
	}
	for i := 0; i < gs.Len(); i++ {
		g, e := gs.Index(i).Interface(), es.Index(i).Interface()
		if g != e {
			o.Compare(o.slice, "==", expected)
			return o.Add("Differs at", i).Test(false)
		}
	}
	return true
}

// DeepEquals asserts the array or slice matches expected using a deep
// comparison.
func (o OnSlice) DeepEquals(expected interface{}) bool {
	return o.TestDeepDiff(o.slice, expected)
}
