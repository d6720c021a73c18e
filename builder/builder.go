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

package builder

import (
	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/guard"
	"dirpx.dev/solo/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its slots are migrated into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, s := range prev.Entries() {
			_ = nreg.Bind(s.Kind, s.Host)
		}
	}
	return nreg
}

// BuildGuard builds and returns a new apis.Guard over the provided registry
// and environment.
func (b *builder) BuildGuard(cfg apis.Config, reg apis.Registry, env apis.Environ, _ any) apis.Guard {
	return guard.New(cfg, reg, env)
}
