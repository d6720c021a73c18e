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

// Guard validates that at most one live instance of a kind exists.
//
// A host type delegates its lifecycle callbacks to a Guard: Activate on
// construction/activation, Dispose on teardown, Inspect on the authoring
// environment's add/reset event. The guard selects between runtime and
// authoring validation by consulting the environment's Interactive
// capability at call time.
type Guard interface {
	// Activate registers h as the canonical instance of its kind.
	// If the slot already holds a different instance, h is handed to the
	// lifecycle manager for disposal and an error unwrapping to
	// ErrDuplicateInstance is returned.
	Activate(h Host) error

	// Dispose clears the canonical slot if it currently holds h.
	// Disposing a non-canonical duplicate is a no-op.
	Dispose(h Host)

	// Inspect performs the authoring-mode duplicate scan for h's kind.
	// When the environment is not interactive it falls back to Activate.
	// Once more than one qualifying instance is found, Inspect always
	// returns an error unwrapping to ErrMultipleInstances; the dialog
	// outcome only controls whether the trace is logged.
	Inspect(h Host) error

	// Instance returns the canonical instance for kind without side effects.
	Instance(kind string) (Host, bool)
}
