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

// Package guard enforces the single-instance invariant for scene objects.
//
// The guard owns no hosts. It records the canonical instance per kind in a
// registry slot and hooks the environment's lifecycle callbacks:
//
//   - Activate: runtime registration; a second activation of the same kind
//     is disposed and rejected.
//   - Dispose: clears the slot when the canonical instance goes away.
//   - Inspect: authoring-mode scan over every live instance of the kind,
//     with an instance trace, a modal confirmation, and an optional log
//     emission. Inspect always fails once multiplicity is detected; the
//     dialog only decides whether the trace reaches the log.
package guard

import (
	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/kind"
	"dirpx.dev/solo/trace"
)

// New constructs a Guard over the given registry and environment.
func New(cfg apis.Config, reg apis.Registry, env apis.Environ) apis.Guard {
	return &guard{cfg: cfg, reg: reg, env: env}
}

// guard validates host activations against a registry of canonical slots.
type guard struct {
	// cfg carries the derivation and walk bounds.
	cfg apis.Config
	// reg holds the canonical slot per kind.
	reg apis.Registry
	// env is the lifecycle/authoring environment driving the guard.
	env apis.Environ
}

// Ensure guard implements apis.Guard.
var _ apis.Guard = (*guard)(nil)

// Activate registers h as the canonical instance of its kind.
// If the slot already holds a different host, h is handed to the lifecycle
// manager for disposal and a *DuplicateError is returned; the slot keeps
// the original instance.
func (g *guard) Activate(h apis.Host) error {
	if h == nil {
		return ErrNilHost
	}
	k := kind.Of(h, g.cfg)
	if k == "" {
		return ErrUnknownKind
	}

	if cur, ok := g.reg.Instance(k); ok && cur != h {
		// Reject before the duplicate becomes reachable.
		g.env.Dispose(h)
		return &DuplicateError{Kind: k}
	}

	return g.reg.Bind(k, h)
}

// Dispose clears the canonical slot if it currently holds h.
// Disposing a non-canonical duplicate never clears the slot.
func (g *guard) Dispose(h apis.Host) {
	if h == nil {
		return
	}
	k := kind.Of(h, g.cfg)
	if k == "" {
		return
	}
	g.reg.Release(k, h)
}

// Inspect performs the authoring-mode duplicate scan for h's kind.
//
// Outside an interactive authoring session it falls back to Activate, so
// the hook still validates in headless builds. Otherwise it enumerates all
// live (non-persisted) instances of the kind; with at most one instance it
// succeeds silently. With more, it renders the instance trace, presents
// the two-choice confirmation, logs the trace if the author acknowledged,
// and returns a *MultipleError regardless of the choice.
func (g *guard) Inspect(h apis.Host) error {
	if h == nil {
		return ErrNilHost
	}
	if !g.env.Interactive() {
		return g.Activate(h)
	}

	k := kind.Of(h, g.cfg)
	if k == "" {
		return ErrUnknownKind
	}

	// Persisted templates are not live scene instances.
	live := make([]apis.Host, 0, 4)
	for _, inst := range g.env.Instances(k) {
		if inst == nil || inst.Persisted() {
			continue
		}
		live = append(live, inst)
	}
	if len(live) <= 1 {
		return nil
	}

	tr := trace.Render(live, g.cfg.MaxWalk)
	if g.env.Confirm(trace.Title(k), trace.Body(k, len(live), tr)) {
		g.env.Logger().Warn(tr)
	}
	return &MultipleError{Kind: k, Count: len(live)}
}

// Instance returns the canonical instance for k without side effects.
func (g *guard) Instance(k string) (apis.Host, bool) {
	return g.reg.Instance(k)
}
