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

// Package kind derives stable kind identifiers for host values.
//
// Resolution order:
//  1. If the value implements apis.Kinder, use v.Kind().
//  2. Otherwise unwrap pointers (bounded by Config.MaxUnwrap) and derive
//     a memoized "pkg.Type" identifier from the Go type.
//
// Unnamed types (anonymous structs, closures) yield "": the guard refuses
// to guess a slot for them.
package kind

import (
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/config"
)

// cacheKey ensures memoization respects the config knob that affects derivation.
type cacheKey struct {
	t         reflect.Type
	maxUnwrap int16
}

// kindCache caches derived kinds by (type, MaxUnwrap).
var kindCache sync.Map // key: cacheKey, val: string

// Of returns the kind identifier for v, or "" if none can be determined.
// Values implementing apis.Kinder short-circuit reflection entirely.
func Of(v any, cfg apis.Config) string {
	if v == nil {
		return ""
	}
	if k, ok := v.(apis.Kinder); ok {
		return k.Kind()
	}
	return OfType(reflect.TypeOf(v), cfg)
}

// OfType returns the kind identifier for t, or "" if none can be determined.
func OfType(t reflect.Type, cfg apis.Config) string {
	if t == nil {
		return ""
	}

	key := cacheKey{t: t, maxUnwrap: int16(cfg.MaxUnwrap)}
	if v, ok := kindCache.Load(key); ok {
		return v.(string)
	}

	base := unwrap(t, cfg)
	name := ""
	if base != nil && base.Name() != "" {
		name = stripTypeParams(base.Name())
		if p := base.PkgPath(); p != "" {
			name = path.Base(p) + "." + name
		}
	}

	kindCache.Store(key, name)
	return name
}

// unwrap strips pointer layers until a non-pointer type is reached,
// bounded by cfg.MaxUnwrap. If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func unwrap(t reflect.Type, cfg apis.Config) reflect.Type {
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	for i := 0; t != nil && t.Kind() == reflect.Ptr && i < maxUnwrap; i++ {
		t = t.Elem()
	}
	return t
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
