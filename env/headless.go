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

// Package env provides the baseline headless environment installed at
// process init. It reports no authoring capability, so the guard always
// takes the runtime validation path until a real environment is set.
package env

import (
	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/sink"
)

// Headless returns a non-interactive apis.Environ: no enumeration, a
// declining confirm, a no-op disposal, and a discarding logger.
func Headless() apis.Environ {
	return headless{}
}

type headless struct{}

// Ensure headless implements apis.Environ.
var _ apis.Environ = headless{}

// Interactive always reports false.
func (headless) Interactive() bool { return false }

// Instances returns nil: a headless process cannot enumerate a scene.
func (headless) Instances(string) []apis.Host { return nil }

// Confirm declines without blocking.
func (headless) Confirm(string, string) bool { return false }

// Dispose is a no-op; there is no lifecycle manager to forward to.
func (headless) Dispose(apis.Host) {}

// Logger returns a discarding sink.
func (headless) Logger() apis.Logger { return sink.Nop() }
