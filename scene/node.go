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

// Package scene provides a minimal in-memory host environment: a node tree
// implementing apis.Host, an apis.Environ over it, and Director, a trivial
// example singleton type. It is the thin shell around the guard, intended
// for examples and tests; real engines supply their own environment.
package scene

import (
	"dirpx.dev/solo/apis"
)

// Node is a named object in a containment tree.
// The zero value is not usable; construct nodes with NewNode.
type Node struct {
	name      string
	parent    *Node
	children  []*Node
	persisted bool
}

// NewNode constructs a detached (root-level) node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Ensure Node implements apis.Host.
var _ apis.Host = (*Node)(nil)

// Name returns the node's identity name.
func (n *Node) Name() string { return n.name }

// Parent returns the containment parent, or nil for a root node.
func (n *Node) Parent() apis.Host {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Persisted reports whether the node is a stored template.
func (n *Node) Persisted() bool { return n.persisted }

// Persist marks the node as a stored template and returns it.
// Persisted nodes never count toward the authoring duplicate check.
func (n *Node) Persist() *Node {
	n.persisted = true
	return n
}

// Attach makes child a member of n's children, detaching it from any
// previous parent first. Attaching a node to itself is a no-op.
func (n *Node) Attach(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// Detach removes n from its parent, making it root-level again.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Children returns a copy of n's direct children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}
