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
	"testing"

	"dirpx.dev/solo/scene"
	"dirpx.dev/solo/trace"
)

func TestNode_RootHasNoParent(t *testing.T) {
	n := scene.NewNode("Root")

	if n.Parent() != nil {
		t.Fatalf("Parent() = %v, want nil", n.Parent())
	}
	if got := trace.Path(n, 0); got != "/Root" {
		t.Fatalf("Path = %q, want %q", got, "/Root")
	}
}

func TestNode_AttachBuildsHierarchyPath(t *testing.T) {
	root := scene.NewNode("Root")
	mid := scene.NewNode("Mid")
	leaf := scene.NewNode("Leaf")
	root.Attach(mid)
	mid.Attach(leaf)

	if got := trace.Path(leaf, 0); got != "/Root/Mid/Leaf" {
		t.Fatalf("Path = %q, want %q", got, "/Root/Mid/Leaf")
	}
	if len(root.Children()) != 1 || root.Children()[0] != mid {
		t.Fatalf("Children = %v, want [Mid]", root.Children())
	}
}

func TestNode_AttachReparents(t *testing.T) {
	a := scene.NewNode("A")
	b := scene.NewNode("B")
	child := scene.NewNode("Child")

	a.Attach(child)
	b.Attach(child)

	if got := trace.Path(child, 0); got != "/B/Child" {
		t.Fatalf("Path after reparent = %q, want %q", got, "/B/Child")
	}
	if len(a.Children()) != 0 {
		t.Fatalf("old parent still has %d children", len(a.Children()))
	}
}

func TestNode_Detach(t *testing.T) {
	root := scene.NewNode("Root")
	child := scene.NewNode("Child")
	root.Attach(child)

	child.Detach()

	if child.Parent() != nil {
		t.Fatalf("Parent after Detach = %v, want nil", child.Parent())
	}
	if len(root.Children()) != 0 {
		t.Fatalf("root still has %d children", len(root.Children()))
	}
}

func TestNode_Persist(t *testing.T) {
	n := scene.NewNode("Template")
	if n.Persisted() {
		t.Fatal("new node reports persisted")
	}
	n.Persist()
	if !n.Persisted() {
		t.Fatal("Persist() did not mark the node")
	}
}
