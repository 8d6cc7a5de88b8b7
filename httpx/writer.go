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
	"errors"
	"net/http"
	"strconv"

	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/apis"
)

// Write emits the rendered status and payload of e on rw. A nil e writes
// nothing.
func Write(rw http.ResponseWriter, e *Error) {
	if e == nil {
		return
	}
	status, _ := e.Render()
	b, err := e.Body()
	if err != nil {
		// Payload holds only strings and integers.
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}

// Resolve turns any error into a responder:
//
//   - a *Error in the chain is returned as-is;
//   - anything else is lifted with l and gets its HTTP status from m.
//
// A nil lifter means adapter.Default(); a nil mapper means 500 for every
// code. Resolve returns nil for nil.
func Resolve(err error, l *adapter.Lifter, m apis.Mapper) *Error {
	if err == nil {
		return nil
	}
	var he *Error
	if errors.As(err, &he) && he != nil {
		return he
	}
	if l == nil {
		l = adapter.Default()
	}
	d := l.Lift(err)
	status := http.StatusInternalServerError
	if m != nil {
		status = m.HTTPStatus(d.Code())
	}
	return WithError(status, d)
}

// Meta carries extra context that the HTTP layer can add to an error
// response. All fields are optional.
type Meta struct {
	RequestID         string
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn any error into an HTTP
// response using the provided lifter and status mapper.
type Writer struct {
	Lifter *adapter.Lifter
	Mapper apis.Mapper
}

// Write resolves err and writes it to rw together with the headers derived
// from meta. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	e := Resolve(err, w.Lifter, w.Mapper)
	if e == nil {
		return
	}
	if meta.RequestID != "" {
		rw.Header().Set(RequestIDHeader, meta.RequestID)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	Write(rw, e)
}

// RequestIDHeader is the header carrying the request correlation id.
const RequestIDHeader = "X-Request-ID"
