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

// Package solo provides a global, process-wide singleton guard for
// engine-managed scene objects.
//
// solo is responsible for guaranteeing that exactly one live instance of a
// given kind exists, detecting duplicates both during interactive authoring
// and at runtime, and producing a diagnostic instance trace when duplicates
// are found. Examples of kinds: "scene.director", "audio.mixer",
// "input.router".
//
// # Design
//
// The core of solo is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Config: bounds that control kind derivation and hierarchy walks
//     (pointer unwrap depth, parent-link hop limit).
//
//   - Environ: the host environment driving the guard. It provides the
//     lifecycle manager (disposal of rejected duplicates), the authoring
//     capability predicate, scene enumeration, the modal confirmation
//     primitive, and the diagnostic log sink. The default environment is
//     headless: non-interactive, with no enumeration and a discarding log.
//
//   - Registry: a process-wide mapping from kind to the current canonical
//     host instance — one nullable slot per kind. The slot is set on first
//     successful activation and cleared only when the matching instance is
//     disposed.
//
//   - Guard: the validation logic hooked into host lifecycle callbacks.
//     At runtime a second activation of an occupied kind is disposed and
//     rejected with ErrDuplicateInstance. Under interactive authoring the
//     add/reset hook scans all live (non-persisted) instances of the kind,
//     presents an instance trace behind a two-choice dialog, optionally
//     logs it, and fails with ErrMultipleInstances whenever more than one
//     instance exists.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Guard instances for a given Config and Environ. The Builder may
//     migrate slots from previous Registry instances.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state and
// atomically swap it in.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Lifecycle hooks and read helpers:
//
//     Activate(h apis.Host) error
//     Dispose(h apis.Host)
//     Inspect(h apis.Host) error
//     Instance(kind string) (apis.Host, bool)
//     InstanceAs[T apis.Host](kind string) (T, bool)
//     Registry() apis.Registry
//     Guard() apis.Guard
//     Env() apis.Environ
//
//     These always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config)
//     SetEnv(env apis.Environ)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetGuard(grd apis.Guard)
//     UnpinRegistry() / UnpinGuard()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Registry / Guard as needed), and
//     then atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects kind derivation and path walks. Calling SetConfig()
//     may trigger a rebuild of Registry and/or Guard, unless they are
//     explicitly "pinned". Migrated registries keep their slots.
//
//     - Environ is consulted by the guard at call time. SetEnv() rebuilds
//     the Guard (unless pinned) so it captures the new environment; the
//     Registry and its slots are untouched.
//
//     - SetRegistry() / SetGuard() directly overwrite the current layer in
//     the snapshot and "pin" it. A pinned layer is not rebuilt
//     automatically until you call UnpinRegistry()/UnpinGuard().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Environ, Registry, Guard in one shot. This is
//     mainly used by tests to get a clean deterministic state between
//     test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Registry().Entries(), Registry().Count(), etc.
//
// # Concurrency model
//
// The environment delivers lifecycle callbacks serialized on its main
// thread, so guard operations for a given kind never race. The package
// still keeps reads wait-free (atomic snapshot loads) and serializes
// writers on a short build mutex, matching the rest of the process-wide
// services in this codebase.
//
// # Usage pattern in a binary
//
// A host type embeds delegation to the global guard:
//
//	type Director struct{ scene.Node }
//
//	func (*Director) Kind() string { return "scene.director" }
//
//	// lifecycle callbacks wired by the environment:
//	func (d *Director) OnActivate() error { return solo.Activate(d) }
//	func (d *Director) OnDispose()        { solo.Dispose(d) }
//	func (d *Director) OnReset() error    { return solo.Inspect(d) }
//
// and dependents reach the canonical instance via:
//
//	if dir, ok := solo.InstanceAs[*Director]("scene.director"); ok {
//	    // use dir...
//	}
//
// # Scope
//
// solo is intentionally small. It is not a dependency-injection container
// or a service locator. It does not construct hosts, decide destruction
// timing, or mediate cross-object communication. It only solves one job:
//
//	"Ensure at most one live instance of a kind is reachable, and give
//	 the author a usable trace when that stops being true."
//
// Everything else (scheduling, injection, persistence, UI) belongs to
// higher layers.
package solo
