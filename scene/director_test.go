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

package scene_test

import (
	"errors"
	"testing"

	"dirpx.dev/solo"
	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/builder"
	"dirpx.dev/solo/config"
	"dirpx.dev/solo/guard"
	"dirpx.dev/solo/registry"
	"dirpx.dev/solo/scene"
)

// resetGlobal installs env with a fresh registry so tests start clean.
func resetGlobal(tb testing.TB, e apis.Environ) {
	tb.Helper()
	cfg := config.DefaultConfig()
	solo.SetAll(&cfg, nil, e, registry.New(cfg), nil, builder.New())
}

func TestDirector_RuntimeSingleton(t *testing.T) {
	e := scene.NewEnv()
	resetGlobal(t, e)

	d1 := scene.NewDirector("Main")
	e.Spawn(d1)
	if err := d1.OnActivate(); err != nil {
		t.Fatalf("OnActivate(Main): unexpected error: %v", err)
	}

	if cur, ok := scene.Current(); !ok || cur != d1 {
		t.Fatalf("Current = (%v,%v), want (Main,true)", cur, ok)
	}

	// A second director is disposed and rejected.
	d2 := scene.NewDirector("Rogue")
	e.Spawn(d2)
	err := d2.OnActivate()
	if !errors.Is(err, guard.ErrDuplicateInstance) {
		t.Fatalf("OnActivate(Rogue): got %v, want ErrDuplicateInstance", err)
	}
	if disposed := e.Disposed(); len(disposed) != 1 || disposed[0] != d2 {
		t.Fatalf("Disposed = %v, want [Rogue]", disposed)
	}
	if cur, ok := scene.Current(); !ok || cur != d1 {
		t.Fatalf("Current after duplicate = (%v,%v), want (Main,true)", cur, ok)
	}

	// Disposing the canonical director empties the slot.
	d1.OnDispose()
	if _, ok := scene.Current(); ok {
		t.Fatal("Current after OnDispose = set, want empty")
	}
}

func TestDirector_AuthoringScanFindsDuplicates(t *testing.T) {
	choices := 0
	e := scene.NewEnv(
		scene.WithInteractive(true),
		scene.WithConfirm(func(title, body string) bool {
			choices++
			return false // cancel: trace is not logged
		}),
	)
	resetGlobal(t, e)

	world := scene.NewNode("World")
	d1 := scene.NewDirector("Main")
	d2 := scene.NewDirector("Extra")
	world.Attach(&d1.Node)
	world.Attach(&d2.Node)
	e.Spawn(d1)
	e.Spawn(d2)

	err := d1.OnReset()
	if !errors.Is(err, guard.ErrMultipleInstances) {
		t.Fatalf("OnReset: got %v, want ErrMultipleInstances", err)
	}
	if choices != 1 {
		t.Fatalf("confirm invoked %d times, want 1", choices)
	}
}

func TestDirector_AuthoringScanIgnoresPersistedTemplate(t *testing.T) {
	e := scene.NewEnv(scene.WithInteractive(true))
	resetGlobal(t, e)

	live := scene.NewDirector("Main")
	tmpl := scene.NewDirector("Template")
	tmpl.Persist()
	e.Spawn(live)
	e.Spawn(tmpl)

	if err := live.OnReset(); err != nil {
		t.Fatalf("OnReset with template: unexpected error: %v", err)
	}
}

func TestDirector_HeadlessResetFallsBackToRuntime(t *testing.T) {
	e := scene.NewEnv() // non-interactive
	resetGlobal(t, e)

	d1 := scene.NewDirector("Main")
	d2 := scene.NewDirector("Rogue")
	e.Spawn(d1)
	e.Spawn(d2)

	if err := d1.OnReset(); err != nil {
		t.Fatalf("OnReset(Main) headless: unexpected error: %v", err)
	}
	if err := d2.OnReset(); !errors.Is(err, guard.ErrDuplicateInstance) {
		t.Fatalf("OnReset(Rogue) headless: got %v, want ErrDuplicateInstance", err)
	}
}
