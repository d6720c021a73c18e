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

package scene

import (
	"dirpx.dev/solo"
)

// KindDirector is the registry kind Director instances compete for.
const KindDirector = "scene.director"

// Director is the example singleton host: a node that delegates its
// lifecycle callbacks to the global guard. At most one live Director
// exists per process.
type Director struct {
	Node
}

// NewDirector constructs a detached Director.
func NewDirector(name string) *Director {
	return &Director{Node: Node{name: name}}
}

// Kind returns the Director registry kind.
func (*Director) Kind() string { return KindDirector }

// OnActivate registers the Director as canonical; a duplicate is disposed
// and rejected.
func (d *Director) OnActivate() error { return solo.Activate(d) }

// OnDispose clears the canonical slot if this Director holds it.
func (d *Director) OnDispose() { solo.Dispose(d) }

// OnReset runs the authoring duplicate scan for Directors.
func (d *Director) OnReset() error { return solo.Inspect(d) }

// Current returns the canonical Director, if one is active.
func Current() (*Director, bool) {
	return solo.InstanceAs[*Director](KindDirector)
}
