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
	"dirpx.dev/solo/apis"
	"dirpx.dev/solo/config"
	"dirpx.dev/solo/kind"
	"dirpx.dev/solo/sink"
)

// Env is an in-memory apis.Environ over spawned hosts.
//
// Enumeration order is spawn order. Env relies on the serialized callback
// delivery the guard assumes; it adds no locking of its own.
type Env struct {
	interactive bool
	cfg         apis.Config
	confirm     func(title, body string) bool
	logger      apis.Logger
	hosts       []apis.Host
	disposed    []apis.Host
}

// Ensure Env implements apis.Environ.
var _ apis.Environ = (*Env)(nil)

// NewEnv constructs an Env from the given options.
// Defaults: non-interactive, declining confirm, discarding logger.
func NewEnv(opts ...EnvOption) *Env {
	e := &Env{
		cfg:    config.DefaultConfig(),
		logger: sink.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnvOption is a functional option that mutates an Env during construction.
type EnvOption func(*Env)

// WithInteractive sets the authoring capability flag.
func WithInteractive(interactive bool) EnvOption {
	return func(e *Env) { e.interactive = interactive }
}

// WithConfirm sets the modal confirmation primitive.
func WithConfirm(confirm func(title, body string) bool) EnvOption {
	return func(e *Env) { e.confirm = confirm }
}

// WithLogger sets the diagnostic log sink.
func WithLogger(l apis.Logger) EnvOption {
	return func(e *Env) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConfig sets the config used for kind matching during enumeration.
func WithConfig(cfg apis.Config) EnvOption {
	return func(e *Env) { e.cfg = cfg }
}

// Spawn registers h as an existing host, making it visible to Instances.
func (e *Env) Spawn(h apis.Host) {
	if h == nil {
		return
	}
	e.hosts = append(e.hosts, h)
}

// Interactive reports whether an authoring session is available.
func (e *Env) Interactive() bool { return e.interactive }

// Instances enumerates all spawned hosts of the given kind in spawn order,
// persisted templates included.
func (e *Env) Instances(k string) []apis.Host {
	if k == "" {
		return nil
	}
	var out []apis.Host
	for _, h := range e.hosts {
		if kind.Of(h, e.cfg) == k {
			out = append(out, h)
		}
	}
	return out
}

// Confirm presents the modal dialog via the injected primitive.
// Without one it declines, matching a headless session.
func (e *Env) Confirm(title, body string) bool {
	if e.confirm == nil {
		return false
	}
	return e.confirm(title, body)
}

// Logger returns the diagnostic log sink.
func (e *Env) Logger() apis.Logger { return e.logger }

// Dispose removes h from the live set and records the request.
// Disposed *Node hosts are also detached from their parent.
func (e *Env) Dispose(h apis.Host) {
	if h == nil {
		return
	}
	for i, cur := range e.hosts {
		if cur == h {
			e.hosts = append(e.hosts[:i], e.hosts[i+1:]...)
			break
		}
	}
	if n, ok := h.(interface{ Detach() }); ok {
		n.Detach()
	}
	e.disposed = append(e.disposed, h)
}

// Disposed returns the hosts whose disposal was requested, in order.
func (e *Env) Disposed() []apis.Host {
	out := make([]apis.Host, len(e.disposed))
	copy(out, e.disposed)
	return out
}
