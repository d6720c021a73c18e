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

package kind_test

import (
	"reflect"
	"testing"

	"dirpx.dev/solo/config"
	"dirpx.dev/solo/kind"
)

// plainType has no explicit kind; it resolves via reflection.
type plainType struct{}

// kindedType implements apis.Kinder.
type kindedType struct{}

func (kindedType) Kind() string { return "custom.kind" }

func TestOf_KinderFastPath(t *testing.T) {
	cfg := config.DefaultConfig()

	got := kind.Of(kindedType{}, cfg)
	if got != "custom.kind" {
		t.Fatalf("Of(kindedType) = %q, want %q", got, "custom.kind")
	}
}

func TestOf_ReflectFallback(t *testing.T) {
	cfg := config.DefaultConfig()

	got := kind.Of(plainType{}, cfg)
	if got != "kind_test.plainType" {
		t.Fatalf("Of(plainType) = %q, want %q", got, "kind_test.plainType")
	}
}

func TestOf_UnwrapsPointers(t *testing.T) {
	cfg := config.DefaultConfig()

	v := &plainType{}
	if got := kind.Of(v, cfg); got != "kind_test.plainType" {
		t.Fatalf("Of(*plainType) = %q, want %q", got, "kind_test.plainType")
	}
	vv := &v
	if got := kind.Of(vv, cfg); got != "kind_test.plainType" {
		t.Fatalf("Of(**plainType) = %q, want %q", got, "kind_test.plainType")
	}
}

func TestOf_Nil(t *testing.T) {
	cfg := config.DefaultConfig()

	if got := kind.Of(nil, cfg); got != "" {
		t.Fatalf("Of(nil) = %q, want empty", got)
	}
}

func TestOfType_NilAndUnnamed(t *testing.T) {
	cfg := config.DefaultConfig()

	if got := kind.OfType(nil, cfg); got != "" {
		t.Fatalf("OfType(nil) = %q, want empty", got)
	}
	// Anonymous struct has no name to derive a kind from.
	anon := reflect.TypeOf(struct{ X int }{})
	if got := kind.OfType(anon, cfg); got != "" {
		t.Fatalf("OfType(anonymous) = %q, want empty", got)
	}
}

func TestOf_MaxUnwrapLimit(t *testing.T) {
	// MaxUnwrap = 1 leaves **plainType at *plainType, which is unnamed.
	cfg := config.NewConfig(config.WithMaxUnwrap(1))

	v := &plainType{}
	vv := &v
	if got := kind.Of(vv, cfg); got != "" {
		t.Fatalf("Of(**plainType) with MaxUnwrap=1 = %q, want empty", got)
	}

	// With enough unwraps it resolves.
	cfg8 := config.NewConfig(config.WithMaxUnwrap(8))
	if got := kind.Of(vv, cfg8); got != "kind_test.plainType" {
		t.Fatalf("Of(**plainType) with MaxUnwrap=8 = %q, want %q", got, "kind_test.plainType")
	}
}

func TestOf_MemoizationIsStable(t *testing.T) {
	cfg := config.DefaultConfig()

	first := kind.Of(plainType{}, cfg)
	second := kind.Of(plainType{}, cfg)
	if first != second {
		t.Fatalf("memoized kind changed: %q then %q", first, second)
	}
}
