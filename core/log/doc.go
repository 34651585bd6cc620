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

// Package log provides context carried logging.
//
// Everything a log call needs (the handler, the severity filter, the tag, the
// trace of entered scopes and any bound values) is stored in the
// context.Context, so code that is handed a context can log without knowing
// where the output goes.
//
//	ctx = log.PutHandler(ctx, log.Logrus(logrus.StandardLogger()))
//	ctx = log.Enter(ctx, "expression")
//	log.D(ctx, "matched %d bytes", n)
package log
