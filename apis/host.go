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

// Host is an externally-owned scene object observed by the guard.
//
// # Overview
//
// A Host has an identity name, a position in a hierarchical containment
// tree, and a lifecycle (constructed -> activated -> optionally destroyed)
// driven by its owning environment. The guard never constructs or destroys
// hosts; it only records a back-reference to the current canonical instance
// of each kind and walks parent links to render diagnostic paths.
//
// # Contract
//
//   - Name MUST return the host's identity name. It SHOULD be stable for
//     the lifetime of the host; an empty name is tolerated but produces
//     degenerate hierarchy paths.
//   - Parent MUST return the containment parent, or nil for a root object.
//     Parent chains SHOULD be acyclic; the guard bounds its walks with
//     Config.MaxWalk as a safety guard against cycles.
//   - Persisted MUST report whether the object is a stored template or
//     library asset rather than a live scene instance. Persisted objects
//     never count toward the authoring-mode duplicate check.
//   - All methods MUST be cheap, side-effect free, and safe to call from
//     the environment's callback thread.
type Host interface {
	// Name returns the host's identity name.
	Name() string

	// Parent returns the containment parent, or nil for a root object.
	Parent() Host

	// Persisted reports whether the host is a stored template rather than
	// a live scene instance.
	Persisted() bool
}

// Kinder is the zero-reflection fast path for kind derivation.
//
// When a host implements Kinder, the guard MUST use the returned kind and
// MUST NOT fall back to reflect-based derivation. The returned kind plays
// the same role a type parameter plays in generics-based singleton bases:
// it selects the registry slot the host competes for.
//
// The returned value MUST be non-empty, deterministic for a given concrete
// type, and independent of mutable instance state. Returning a constant
// string literal is RECOMMENDED.
type Kinder interface {
	// Kind returns the canonical, type-level kind for this host.
	Kind() string
}
