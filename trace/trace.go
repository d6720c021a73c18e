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

// Package trace renders the diagnostic reports the guard emits when it
// finds multiple instances of a kind. All functions are pure: they build
// strings and nothing else.
package trace

import (
	"fmt"
	"strings"

	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/config"
)

const (
	// Header is the first line of an instance trace.
	Header = "Instance Trace:"
	// Banner is the fixed reminder line in the warning body.
	Banner = "Only one Instance should exist!"
	// SeparatorWidth is the dash count of the separator line.
	SeparatorWidth = 50
)

// separator is the tab-indented fixed-width rule between trace entries.
var separator = "\t" + strings.Repeat("-", SeparatorWidth)

// Path returns the hierarchy path of h: the root-to-leaf sequence of
// ancestor names, each segment prefixed with "/". A root host named "Root"
// yields "/Root". The walk is bounded by maxWalk parent hops; if the bound
// is not positive, config.DefaultMaxWalk is used.
func Path(h apis.Host, maxWalk int) string {
	if h == nil {
		return ""
	}
	if maxWalk <= 0 {
		maxWalk = config.DefaultMaxWalk
	}

	segs := make([]string, 0, 8)
	for n := h; n != nil && len(segs) < maxWalk; n = n.Parent() {
		segs = append(segs, n.Name())
	}

	var b strings.Builder
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segs[i])
	}
	return b.String()
}

// Render builds the instance trace for hosts in the given order:
// the header, the separator, then per host its name, its hierarchy path,
// and the separator again.
func Render(hosts []apis.Host, maxWalk int) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteByte('\n')
	for _, h := range hosts {
		if h == nil {
			continue
		}
		b.WriteString(h.Name())
		b.WriteByte('\n')
		b.WriteString(Path(h, maxWalk))
		b.WriteByte('\n')
		b.WriteString(separator)
		b.WriteByte('\n')
	}
	return b.String()
}

// Title returns the warning dialog title for kind.
func Title(kind string) string {
	return fmt.Sprintf("Too many instances of %s", kind)
}

// Body returns the warning dialog body: the instance count and kind,
// the banner, a blank line, then the trace text.
func Body(kind string, count int, trace string) string {
	return fmt.Sprintf("Found %d instances of %s.\n%s\n\n%s", count, kind, Banner, trace)
}
