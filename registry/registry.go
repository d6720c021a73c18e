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

package registry

import (
	"errors"
	"sync"

	"dirpx.dev/solo/apis"
)

var (
	// ErrNilHost is returned when a nil host is provided.
	ErrNilHost = errors.New("solo(registry): nil host provided")
	// ErrEmptyKind is returned when an empty kind is provided.
	ErrEmptyKind = errors.New("solo(registry): empty kind provided")
	// ErrSlotOccupied indicates an attempt to bind a second host
	// while the slot already holds a different one.
	ErrSlotOccupied = errors.New("solo(registry): slot already occupied")
)

// New constructs an empty Registry.
// The cfg parameter is accepted for builder symmetry; no knob affects slots today.
func New(_ apis.Config) apis.Registry {
	return &registry{slots: make(map[string]apis.Host)}
}

// registry is a mutex-guarded Registry implementation.
// Invariant: each slot is either absent or holds exactly one host.
type registry struct {
	// mu guards slots.
	mu sync.Mutex
	// slots maps kind to the canonical host.
	slots map[string]apis.Host
}

// Bind sets the canonical instance for kind if the slot is empty.
// It is idempotent for the same (kind, host) pair.
func (r *registry) Bind(kind string, h apis.Host) error {
	// Validate inputs early.
	if h == nil {
		return ErrNilHost
	}
	if kind == "" {
		return ErrEmptyKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.slots[kind]; ok {
		if cur == h {
			return nil // idempotent re-bind
		}
		return ErrSlotOccupied
	}

	r.slots[kind] = h
	return nil
}

// Release clears the slot for kind if it currently holds h.
// Releasing any other host leaves the slot untouched.
func (r *registry) Release(kind string, h apis.Host) bool {
	if h == nil || kind == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.slots[kind]; !ok || cur != h {
		return false
	}
	delete(r.slots, kind)
	return true
}

// Instance returns the canonical instance for kind, if any.
func (r *registry) Instance(kind string) (apis.Host, bool) {
	if kind == "" {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.slots[kind]
	return h, ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]apis.Slot, 0, len(r.slots))
	for k, h := range r.slots {
		entries = append(entries, apis.Slot{Kind: k, Host: h})
	}
	return entries
}

// Count returns the number of occupied slots.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Reset clears all slots.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[string]apis.Host)
}
