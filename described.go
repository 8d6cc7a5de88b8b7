/*
   Copyright 2025 The DIRPX Authors

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

package coderr

import (
	"errors"

	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/code"
)

// Described is a coded error enriched with a call-site description.
//
// It optionally retains the foreign error it was lifted from as its cause.
// The cause is reachable through errors.Is / errors.As but never influences
// the code or the boundary rendering.
//
// All mutation helpers (WithX) return a shallow copy, so values can be
// shared between goroutines.
type Described struct {
	err   Error
	desc  string
	cause error
}

var (
	_ apis.CodedError     = (*Described)(nil)
	_ apis.DescribedError = (*Described)(nil)
)

// From converts a coded error into a described error with an empty
// description.
func From(e Error) *Described {
	return &Described{err: e}
}

// Describe is a convenience constructor for Described.
//
// Usage:
//
//	return coderr.Describe(code.FileNotFound, "config.yaml",
//	    coderr.WithCause(err),
//	)
//
// It always returns a new value and applies the options in order.
func Describe(c code.Code, desc string, opts ...Option) *Described {
	d := &Described{err: New(c), desc: desc}
	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// Code returns the numeric code.
func (d *Described) Code() code.Code { return d.err.code }

// ErrorCode implements apis.CodedError.
func (d *Described) ErrorCode() code.Code { return d.err.code }

// Coded returns the underlying coded error.
func (d *Described) Coded() Error { return d.err }

// Description returns the call-site description. It may be empty.
func (d *Described) Description() string { return d.desc }

// ErrorDescription implements apis.DescribedError.
func (d *Described) ErrorDescription() string { return d.desc }

// Cause returns the foreign error d was converted from, or nil.
func (d *Described) Cause() error { return d.cause }

// Error implements the built-in error interface.
//
// The format is the display form of the coded error, followed by
// ": <description>" when the description is not empty.
func (d *Described) Error() string {
	if d == nil {
		return "<nil>"
	}
	if d.desc == "" {
		return d.err.Error()
	}
	return d.err.Error() + ": " + d.desc
}

// Unwrap exposes the coded error and, when present, the cause.
func (d *Described) Unwrap() []error {
	if d == nil {
		return nil
	}
	if d.cause == nil {
		return []error{d.err}
	}
	return []error{d.err, d.cause}
}

// Is reports whether target is a described error with the same code.
// Coded Error targets are matched through Unwrap.
func (d *Described) Is(target error) bool {
	t, ok := target.(*Described)
	if !ok || t == nil || d == nil {
		return false
	}
	return t.err.code == d.err.code
}

// WithDescription returns a copy of d with the description replaced.
func (d *Described) WithDescription(desc string) *Described {
	cp := *d
	cp.desc = desc
	return &cp
}

// WithCause returns a copy of d with the given cause attached.
// If err is nil, d is returned unchanged.
func (d *Described) WithCause(err error) *Described {
	if err == nil {
		return d
	}
	cp := *d
	cp.cause = err
	return &cp
}

// As finds the first described error in err's chain. A bare coded Error in
// the chain is converted with From.
func As(err error) (*Described, bool) {
	if err == nil {
		return nil, false
	}
	var d *Described
	if errors.As(err, &d) && d != nil {
		return d, true
	}
	var e Error
	if errors.As(err, &e) {
		return From(e), true
	}
	return nil, false
}
