/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package sink provides apis.Logger implementations backed by zerolog,
// plus a no-op sink for headless environments.
package sink

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"dirpx.dev/solo/apis"
)

// New wraps a zerolog.Logger as an apis.Logger. Guard diagnostics are
// emitted at warn level.
func New(l zerolog.Logger) apis.Logger {
	return &zsink{l: l}
}

// Console returns an apis.Logger writing human-readable output to w.
func Console(w io.Writer) apis.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return New(zerolog.New(output).With().Timestamp().Str("app", "solo").Logger())
}

// zsink adapts zerolog to the guard's log sink contract.
type zsink struct {
	l zerolog.Logger
}

// Warn emits msg at warn level. Multi-line instance traces pass through
// unmodified.
func (s *zsink) Warn(msg string) {
	s.l.Warn().Msg(msg)
}

// Nop returns an apis.Logger that discards everything.
func Nop() apis.Logger {
	return nopSink{}
}

// nopSink is the sink for environments with no log surface.
type nopSink struct{}

// Warn discards msg.
func (nopSink) Warn(string) {}
