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

package httpx

import (
	"net/http"
	"strconv"

	gojson "github.com/goccy/go-json"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/code"
)

const (
	// FallbackCode is rendered when a responder has no described error.
	FallbackCode = code.UnexpectedErrorOccured

	// FallbackDescription accompanies FallbackCode.
	FallbackDescription = "发生意外错误"
)

// Payload is the JSON body of a boundary error.
type Payload struct {
	Error apis.ErrorView `json:"error"`
}

// Error is the boundary responder. It owns a transport status and an
// optional described error.
//
// An Error is built and rendered on the goroutine serving one request; the
// setters mutate the receiver and are not safe for concurrent use.
type Error struct {
	status int
	err    *coderr.Described
}

var (
	_ error             = (*Error)(nil)
	_ apis.ViewProvider = (*Error)(nil)
)

// NewError returns a responder with the given HTTP status and nothing
// attached. Statuses outside 100..999 are replaced with 500.
func NewError(status int) *Error {
	if status < 100 || status > 999 {
		status = http.StatusInternalServerError
	}
	return &Error{status: status}
}

// WithError is NewError(status).Err(d).
func WithError(status int, d *coderr.Described) *Error {
	return NewError(status).Err(d)
}

// Err attaches d and returns the receiver.
func (e *Error) Err(d *coderr.Described) *Error {
	e.err = d
	return e
}

// NotFind attaches code.DataBaseNotFound with msg as the description.
func (e *Error) NotFind(msg string) *Error {
	return e.Err(coderr.New(code.DataBaseNotFound).WithDescription(msg))
}

// InvalidData attaches code.InvalidMessageData with msg as the description.
func (e *Error) InvalidData(msg string) *Error {
	return e.Err(coderr.New(code.InvalidMessageData).WithDescription(msg))
}

// StatusCode returns the HTTP status.
func (e *Error) StatusCode() int { return e.status }

// Described returns the attached error, or nil.
func (e *Error) Described() *coderr.Described { return e.err }

// Error implements the built-in error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "httpx: status " + strconv.Itoa(e.status) + ": " + e.Effective().Error()
}

// Unwrap exposes the attached described error.
func (e *Error) Unwrap() error {
	if e == nil || e.err == nil {
		return nil
	}
	return e.err
}

// ErrorView implements apis.ViewProvider. It applies the fallback.
func (e *Error) ErrorView() apis.ErrorView {
	return adapter.ToView(e.Effective(), e.status)
}

// Render returns the HTTP status and the payload. When nothing is attached
// the payload carries FallbackCode and FallbackDescription.
//
// Render never fails and does not modify e; calling it again yields the
// same result.
func (e *Error) Render() (int, Payload) {
	return e.status, Payload{Error: e.ErrorView()}
}

// RenderBare is Render without the fallback: a responder with nothing
// attached yields {"status":<status>,"details":[]}. It exists for clients
// that depend on that literal shape.
func (e *Error) RenderBare() (int, Payload) {
	if e.err == nil {
		return e.status, Payload{Error: adapter.ToView(nil, e.status)}
	}
	return e.Render()
}

// Body returns the JSON encoding of the rendered payload.
func (e *Error) Body() ([]byte, error) {
	_, p := e.Render()
	return gojson.Marshal(p)
}

// Effective returns the attached error or, when nothing is attached, the
// fallback that Render uses.
func (e *Error) Effective() *coderr.Described {
	if e.err != nil {
		return e.err
	}
	return coderr.New(FallbackCode).WithDescription(FallbackDescription)
}
