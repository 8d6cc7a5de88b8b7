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
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"dirpx.dev/coderr/adapter/ioerr"
)

// ErrInvalidUTF8 is reported by ReadBody for a body that is not valid UTF-8.
var ErrInvalidUTF8 = fmt.Errorf("%w: stream did not contain valid UTF-8", ioerr.ErrInvalidData)

// FromTransport converts a transport-level failure (a broken stream, bytes
// that are not text) into a responder: HTTP 500 with
// code.InvalidMessageData and the failure's message. It returns nil for nil.
func FromTransport(err error) *Error {
	if err == nil {
		return nil
	}
	return NewError(http.StatusInternalServerError).InvalidData(err.Error())
}

// ReadBody reads r fully and checks that the content is valid UTF-8.
// A positive limit caps the number of bytes accepted.
//
// Any failure is returned as a *Error built by FromTransport.
func ReadBody(r io.Reader, limit int64) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, FromTransport(err)
	}
	if limit > 0 && int64(len(b)) > limit {
		return nil, FromTransport(fmt.Errorf("httpx: body exceeds %d bytes", limit))
	}
	if !utf8.Valid(b) {
		return nil, FromTransport(ErrInvalidUTF8)
	}
	return b, nil
}
