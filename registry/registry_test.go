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

package registry_test

import (
	"testing"

	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/config"
	"dirpx.dev/solo/registry"
)

// fakeHost is a minimal apis.Host for slot tests.
type fakeHost struct {
	name string
}

func (h *fakeHost) Name() string      { return h.name }
func (h *fakeHost) Parent() apis.Host { return nil }
func (h *fakeHost) Persisted() bool   { return false }

func TestBind_IdempotentAndInstance(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	a := &fakeHost{name: "A"}

	if err := reg.Bind("scene.director", a); err != nil {
		t.Fatalf("Bind: unexpected error: %v", err)
	}
	// idempotent re-bind of the same (kind, host) pair
	if err := reg.Bind("scene.director", a); err != nil {
		t.Fatalf("Bind idempotent: unexpected error: %v", err)
	}

	got, ok := reg.Instance("scene.director")
	if !ok || got != a {
		t.Fatalf("Instance: got (%v,%v), want (A,true)", got, ok)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestBind_OccupiedSlot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	a := &fakeHost{name: "A"}
	b := &fakeHost{name: "B"}

	if err := reg.Bind("scene.director", a); err != nil {
		t.Fatalf("Bind: unexpected error: %v", err)
	}
	if err := reg.Bind("scene.director", b); err != registry.ErrSlotOccupied {
		t.Fatalf("expected ErrSlotOccupied, got: %v", err)
	}

	// The canonical instance is untouched.
	if got, ok := reg.Instance("scene.director"); !ok || got != a {
		t.Fatalf("Instance after rejected bind: got (%v,%v), want (A,true)", got, ok)
	}
}

func TestBind_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	a := &fakeHost{name: "A"}

	if err := reg.Bind("scene.director", nil); err != registry.ErrNilHost {
		t.Fatalf("nil host: want ErrNilHost, got %v", err)
	}
	if err := reg.Bind("", a); err != registry.ErrEmptyKind {
		t.Fatalf("empty kind: want ErrEmptyKind, got %v", err)
	}
}

func TestRelease_NonCanonicalIsNoop(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	a := &fakeHost{name: "A"}
	b := &fakeHost{name: "B"}

	if err := reg.Bind("scene.director", a); err != nil {
		t.Fatalf("Bind: unexpected error: %v", err)
	}

	// Releasing the rejected duplicate must not clear the canonical slot.
	if cleared := reg.Release("scene.director", b); cleared {
		t.Fatalf("Release(non-canonical) = true, want false")
	}
	if got, ok := reg.Instance("scene.director"); !ok || got != a {
		t.Fatalf("Instance after non-canonical release: got (%v,%v), want (A,true)", got, ok)
	}
}

func TestRelease_CanonicalClearsSlot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	a := &fakeHost{name: "A"}

	if err := reg.Bind("scene.director", a); err != nil {
		t.Fatalf("Bind: unexpected error: %v", err)
	}
	if cleared := reg.Release("scene.director", a); !cleared {
		t.Fatalf("Release(canonical) = false, want true")
	}
	if got, ok := reg.Instance("scene.director"); ok || got != nil {
		t.Fatalf("Instance after release: got (%v,%v), want (nil,false)", got, ok)
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", reg.Count())
	}
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	a := &fakeHost{name: "A"}
	b := &fakeHost{name: "B"}

	_ = reg.Bind("scene.director", a)
	_ = reg.Bind("audio.mixer", b)

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}

	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count())
	}
	if got, ok := reg.Instance("scene.director"); ok || got != nil {
		t.Fatalf("Instance after Reset: got (%v,%v), want (nil,false)", got, ok)
	}
}

func TestInstance_EmptyAndUnknownKind(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if got, ok := reg.Instance(""); ok || got != nil {
		t.Fatalf("Instance(\"\"): got (%v,%v), want (nil,false)", got, ok)
	}
	if got, ok := reg.Instance("scene.director"); ok || got != nil {
		t.Fatalf("Instance(unknown): got (%v,%v), want (nil,false)", got, ok)
	}
}

func TestSlotHoldsAtMostOne_Sequence(t *testing.T) {
	// Any serialized bind/release sequence leaves at most one host per kind.
	reg := registry.New(config.DefaultConfig())
	a := &fakeHost{name: "A"}
	b := &fakeHost{name: "B"}

	_ = reg.Bind("scene.director", a)
	_ = reg.Bind("scene.director", b) // rejected
	reg.Release("scene.director", b)  // no-op
	reg.Release("scene.director", a)  // clears
	if err := reg.Bind("scene.director", b); err != nil {
		t.Fatalf("Bind(B) after release: unexpected error: %v", err)
	}

	if got, ok := reg.Instance("scene.director"); !ok || got != b {
		t.Fatalf("Instance: got (%v,%v), want (B,true)", got, ok)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}
