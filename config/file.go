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

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"dirpx.dev/solo/apis"
)

// fileConfig mirrors the TOML schema for guard knobs.
type fileConfig struct {
	MaxUnwrap int `toml:"max_unwrap"`
	MaxWalk   int `toml:"max_walk"`
}

// FromFile loads guard knobs from a TOML file, overlaying them on the
// defaults. Keys absent from the file keep their default values; negative
// values reset to the default, matching the option semantics.
func FromFile(path string) (apis.Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return apis.Config{}, fmt.Errorf("load guard config: %w", err)
	}

	if meta.IsDefined("max_unwrap") {
		cfg.MaxUnwrap = raw.MaxUnwrap
		if cfg.MaxUnwrap < 0 {
			cfg.MaxUnwrap = DefaultMaxUnwrap
		}
	}

	if meta.IsDefined("max_walk") {
		cfg.MaxWalk = raw.MaxWalk
		if cfg.MaxWalk < 0 {
			cfg.MaxWalk = DefaultMaxWalk
		}
	}

	return cfg, nil
}
