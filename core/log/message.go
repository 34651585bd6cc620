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
	"fmt"
	"strings"
	"time"
)

// Message is a single log record.
type Message struct {
	// The message text.
	Text string

	// The time the message was logged.
	Time time.Time

	// The severity of the message.
	Severity Severity

	// StopProcess is true if the message indicates the process should stop.
	StopProcess bool

	// The tag associated with the log record.
	Tag string

	// The list of scopes entered before the message was logged, outermost first.
	Trace []string

	// The key-value pairs of extra data associated with the message.
	Values Values
}

// Value is a name-value pair bound to a Message.
type Value struct {
	Name  string
	Value interface{}
}

// Values is a list of name-value pairs, sorted by name.
type Values []*Value

func (v Values) Len() int           { return len(v) }
func (v Values) Less(i, j int) bool { return v[i].Name < v[j].Name }
func (v Values) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }

// Brief returns the message as a single line of the form
// "S: [outer->inner] <tag> text name=value".
func (m *Message) Brief() string {
	sb := strings.Builder{}
	sb.WriteString(m.Severity.Short())
	sb.WriteString(": ")
	if len(m.Trace) > 0 {
		fmt.Fprintf(&sb, "[%s] ", strings.Join(m.Trace, "->"))
	}
	if m.Tag != "" {
		fmt.Fprintf(&sb, "<%s> ", m.Tag)
	}
	sb.WriteString(m.Text)
	for _, v := range m.Values {
		fmt.Fprintf(&sb, " %s=%v", v.Name, v.Value)
	}
	return sb.String()
}
