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

package solo

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/builder"
	"dirpx.dev/solo/config"
	"dirpx.dev/solo/env"
)

// init initializes the global guard state.
func init() {
	// Initialize state with default cfg, env, reg, and grd.
	s := &state{cfg: config.DefaultConfig(), env: env.Headless()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.grd = b.BuildGuard(s.cfg, s.reg, s.env, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("solo: builder returned nil registry")
	// ErrNilGuard is returned when a builder returns a nil guard.
	ErrNilGuard = errors.New("solo: builder returned nil guard")
)

// Activate registers h as the canonical instance of its kind using the
// global guard. A duplicate activation disposes h and returns an error
// unwrapping to guard.ErrDuplicateInstance.
// This is a convenience wrapper around the global grd.
func Activate(h apis.Host) error {
	return st.Load().grd.Activate(h)
}

// Dispose clears the canonical slot for h's kind if h is canonical.
// This is a convenience wrapper around the global grd.
func Dispose(h apis.Host) {
	st.Load().grd.Dispose(h)
}

// Inspect runs the authoring-mode duplicate scan for h's kind, falling
// back to runtime validation when the environment is not interactive.
// This is a convenience wrapper around the global grd.
func Inspect(h apis.Host) error {
	return st.Load().grd.Inspect(h)
}

// Instance returns the canonical instance for kind, if any.
// This is a convenience wrapper around the global grd.
func Instance(kind string) (apis.Host, bool) {
	return st.Load().grd.Instance(kind)
}

// InstanceAs returns the canonical instance for kind as type T.
// The second result is false when the slot is empty or holds another type.
func InstanceAs[T apis.Host](kind string) (T, bool) {
	h, ok := st.Load().grd.Instance(kind)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := h.(T)
	return t, ok
}

// SetAll explicitly sets all global guard state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, e apis.Environ, reg apis.Registry, grd apis.Guard, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Environment
	nenv := old.env
	if e != nil {
		nenv = e
	}

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Guard
	ngrd := grd
	npgrd := false
	if ngrd == nil {
		ngrd = nbld.BuildGuard(ncfg, nreg, nenv, next)
	} else {
		npgrd = true
	}

	// Ensure non-nil reg and grd.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			env:  nenv,
			reg:  nreg,
			grd:  ngrd,
			bld:  nbld,
			preg: npreg,
			pgrd: npgrd,
		},
	)
}

// Config returns the global guard configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global guard configuration to cfg.
// It rebuilds the global reg and grd using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and grd based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(cfg, nreg, old.env, old.ext)
	}

	// Ensure non-nil reg and grd.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			env:  old.env,
			reg:  nreg,
			grd:  ngrd,
			bld:  b,
			preg: old.preg,
			pgrd: old.pgrd,
		},
	)
}

// Env returns the global guard environment.
func Env() apis.Environ {
	return st.Load().env
}

// SetEnv sets the global guard environment to e.
// It rebuilds the global grd so it captures the new environment;
// the registry and its slots are untouched.
// This is a convenience wrapper around the global state.
func SetEnv(e apis.Environ) {
	if e == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new grd based on the old cfg/reg and the new env.
	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(old.cfg, old.reg, e, old.ext)
	}

	// Ensure non-nil grd.
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			env:  e,
			reg:  old.reg,
			grd:  ngrd,
			bld:  b,
			preg: old.preg,
			pgrd: old.pgrd,
		},
	)
}

// Registry returns the global guard registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global guard registry to reg and pins it.
// It rebuilds the global grd over the new registry.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new grd based on the old cfg/env and the new reg.
	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(old.cfg, reg, old.env, old.ext)
	}

	// Ensure non-nil grd.
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			env:  old.env,
			reg:  reg,
			grd:  ngrd,
			bld:  b,
			preg: true,
			pgrd: old.pgrd,
		},
	)
}

// Guard returns the global guard.
func Guard() apis.Guard {
	return st.Load().grd
}

// SetGuard sets the global guard to grd and pins it.
// This is a convenience wrapper around the global state.
func SetGuard(grd apis.Guard) {
	if grd == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			env:  old.env,
			reg:  old.reg,
			grd:  grd,
			bld:  old.bld,
			preg: old.preg,
			pgrd: true,
		},
	)
}

// Builder returns the global guard bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global guard bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and grd based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(old.cfg, nreg, old.env, old.ext)
	}

	// Ensure non-nil reg and grd.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			env:  old.env,
			reg:  nreg,
			grd:  ngrd,
			bld:  b,
			preg: old.preg,
			pgrd: old.pgrd,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and grd based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(old.cfg, nreg, old.env, ext)
	}

	// Ensure non-nil reg and grd.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			env:  old.env,
			reg:  nreg,
			grd:  ngrd,
			bld:  b,
			preg: old.preg,
			pgrd: old.pgrd,
		},
	)
}

// ExtAs returns the global guard extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global guard registry is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global guard registry immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			env:  old.env,
			reg:  old.reg,
			grd:  old.grd,
			bld:  old.bld,
			preg: true,
			pgrd: old.pgrd,
		},
	)
}

// UnpinRegistry makes the global guard registry mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			env:  old.env,
			reg:  old.reg,
			grd:  old.grd,
			bld:  old.bld,
			preg: false,
			pgrd: old.pgrd,
		},
	)
}

// IsGuardPinned returns whether the global guard is pinned (immutable).
func IsGuardPinned() bool {
	return st.Load().pgrd
}

// PinGuard makes the global guard immutable.
func PinGuard() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			env:  old.env,
			reg:  old.reg,
			grd:  old.grd,
			bld:  old.bld,
			preg: old.preg,
			pgrd: true,
		},
	)
}

// UnpinGuard makes the global guard mutable again.
func UnpinGuard() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			env:  old.env,
			reg:  old.reg,
			grd:  old.grd,
			bld:  old.bld,
			preg: old.preg,
			pgrd: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global guard state.
var st atomic.Pointer[state]

// state is the global guard state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global guard configuration.
	cfg apis.Config
	// ext is the global guard extension configuration.
	ext any
	// env is the global guard environment.
	env apis.Environ
	// reg is the global guard registry.
	reg apis.Registry
	// grd is the global guard.
	grd apis.Guard
	// bld is the global guard builder.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pgrd indicates whether the grd is pinned (immutable).
	pgrd bool
}
