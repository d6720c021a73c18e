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

// Registry holds one canonical-instance slot per kind.
// Keep it minimal so implementations can stay a mutex-guarded map.
type Registry interface {
	// Bind sets the canonical instance for kind if the slot is empty.
	// Re-binding the same (kind, host) pair is idempotent; binding a
	// different host to an occupied slot fails.
	Bind(kind string, h Host) error

	// Release clears the slot for kind if it currently holds h, and
	// reports whether it cleared. Releasing a non-canonical host never
	// clears the canonical slot.
	Release(kind string, h Host) bool

	// Instance returns the canonical instance for kind, if any.
	Instance(kind string) (Host, bool)

	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Slot

	// Count returns the number of occupied slots.
	Count() int

	// Reset clears all slots.
	Reset()
}

// Slot is a single (kind, canonical host) association in a Registry snapshot.
type Slot struct {
	// Kind is the slot's kind identifier.
	Kind string
	// Host is the canonical instance bound to the slot.
	Host Host
}
