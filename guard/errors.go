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

package guard

import (
	"errors"
	"fmt"
)

var (
	// ErrNilHost is returned when a nil host is provided.
	ErrNilHost = errors.New("solo(guard): nil host provided")
	// ErrUnknownKind is returned when no kind can be derived for a host.
	ErrUnknownKind = errors.New("solo(guard): cannot derive kind for host")
	// ErrDuplicateInstance indicates a second runtime instance tried to
	// activate while the slot was occupied. Match with errors.Is; use
	// errors.As with *DuplicateError to recover the kind.
	ErrDuplicateInstance = errors.New("solo(guard): duplicate instance")
	// ErrMultipleInstances indicates the authoring-mode scan found more
	// than one qualifying instance. Match with errors.Is; use errors.As
	// with *MultipleError to recover the kind and count.
	ErrMultipleInstances = errors.New("solo(guard): multiple instances")
)

// DuplicateError reports a rejected runtime activation.
type DuplicateError struct {
	// Kind is the slot the rejected host competed for.
	Kind string
}

// Error implements error.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("solo(guard): duplicate instance of %s", e.Kind)
}

// Unwrap makes errors.Is(err, ErrDuplicateInstance) hold.
func (e *DuplicateError) Unwrap() error { return ErrDuplicateInstance }

// MultipleError reports an authoring-mode multiplicity finding.
type MultipleError struct {
	// Kind is the inspected kind.
	Kind string
	// Count is the number of qualifying (non-persisted) instances found.
	Count int
}

// Error implements error.
func (e *MultipleError) Error() string {
	return fmt.Sprintf("solo(guard): %d instances of %s, want at most 1", e.Count, e.Kind)
}

// Unwrap makes errors.Is(err, ErrMultipleInstances) hold.
func (e *MultipleError) Unwrap() error { return ErrMultipleInstances }
