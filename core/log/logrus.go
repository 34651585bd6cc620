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
	"strings"

	"github.com/sirupsen/logrus"
)

var logrusLevels = map[Severity]logrus.Level{
	Verbose: logrus.TraceLevel,
	Debug:   logrus.DebugLevel,
	Info:    logrus.InfoLevel,
	Warning: logrus.WarnLevel,
	Error:   logrus.ErrorLevel,
	Fatal:   logrus.ErrorLevel,
}

// Logrus returns a Handler that forwards messages to l.
// The trace, tag and values of each message become logrus fields.
// Fatal messages are logged at error level, it is up to the caller to decide
// whether to stop the process.
func Logrus(l *logrus.Logger) Handler {
	return NewHandler(func(m *Message) {
		fields := logrus.Fields{}
		if len(m.Trace) > 0 {
			fields["trace"] = strings.Join(m.Trace, "->")
		}
		if m.Tag != "" {
			fields["tag"] = m.Tag
		}
		for _, v := range m.Values {
			fields[v.Name] = v.Value
		}
		level, ok := logrusLevels[m.Severity]
		if !ok {
			level = logrus.InfoLevel
		}
		l.WithFields(fields).WithTime(m.Time).Log(level, m.Text)
	}, nil)
}

// LogrusLevel returns the logrus level that messages of severity s are
// logged at, for use with logrus.Logger.SetLevel.
func LogrusLevel(s Severity) logrus.Level {
	if level, ok := logrusLevels[s]; ok {
		return level
	}
	return logrus.InfoLevel
}
