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

package apis

// Logger is the diagnostic log sink exposed by an environment.
// Implementations must tolerate multi-line messages (instance traces).
type Logger interface {
	// Warn emits a diagnostic message to the environment's log.
	Warn(msg string)
}

// Lifecycle accepts disposal requests for hosts the guard rejects.
type Lifecycle interface {
	// Dispose requests teardown of h. The request is asynchronous from the
	// guard's point of view: the guard does not observe completion.
	Dispose(h Host)
}

// Environ describes the host environment that drives the guard.
//
// # Overview
//
// Environ is the guard's single window onto the outside world: the
// lifecycle manager that tears down rejected duplicates, the authoring
// environment that enumerates live instances and presents modal dialogs,
// and the diagnostic log sink. The guard selects between its runtime and
// authoring validation paths by consulting Interactive at call time; both
// paths exist in every build.
//
// # Contract
//
//   - Interactive MUST report whether an interactive, non-running authoring
//     session is available. Headless and production builds return false.
//   - Instances MUST enumerate every currently-existing host of the given
//     kind, including persisted templates (the guard filters those out
//     itself). Order is unspecified; the guard preserves it in traces.
//     Instances MAY return nil when the environment cannot enumerate.
//   - Confirm MUST present a modal two-choice dialog and block until the
//     author picks a choice. It returns true for the acknowledging choice
//     and false for cancel. Non-interactive environments SHOULD return
//     false without blocking.
//   - Logger MUST return a non-nil Logger.
//   - All methods are invoked from the environment's serialized callback
//     thread; implementations need not add their own locking for guard
//     traffic.
type Environ interface {
	Lifecycle

	// Interactive reports whether an interactive authoring session is
	// available. When false the guard falls back to runtime validation.
	Interactive() bool

	// Instances enumerates all existing hosts of the given kind,
	// persisted templates included.
	Instances(kind string) []Host

	// Confirm presents a modal two-choice dialog and returns true for the
	// acknowledging choice.
	Confirm(title, body string) bool

	// Logger returns the environment's diagnostic log sink.
	Logger() Logger
}
