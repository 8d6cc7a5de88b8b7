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
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	gojson "github.com/goccy/go-json"

	"dirpx.dev/coderr/adapter/jsonerr"
)

const (
	// DefaultBodyLimit is the maximum accepted JSON request body, in bytes.
	DefaultBodyLimit int64 = 1024 * 1024 * 1000

	// DecodeErrorDesc is the desc field of the legacy decode-failure body.
	DecodeErrorDesc = "json解析错误"
)

// ErrorHandler turns a request body decode failure into a response.
type ErrorHandler func(err error) (status int, body []byte)

// JSONConfig controls how JSON request bodies are read and how decode
// failures are answered.
type JSONConfig struct {
	// Limit caps the body size in bytes. Zero or negative means no limit.
	Limit int64

	// ErrorHandler renders decode failures. Nil means LegacyDecodeError.
	ErrorHandler ErrorHandler
}

// DefaultJSONConfig keeps the historical behaviour: DefaultBodyLimit and
// LegacyDecodeError.
func DefaultJSONConfig() JSONConfig {
	return JSONConfig{Limit: DefaultBodyLimit, ErrorHandler: LegacyDecodeError}
}

// UnifiedJSONConfig renders decode failures through the boundary responder
// with code.InvalidMessageData, like every other error. Clients parsing the
// legacy decode-failure body must be updated before switching.
func UnifiedJSONConfig() JSONConfig {
	return JSONConfig{Limit: DefaultBodyLimit, ErrorHandler: UnifiedDecodeError}
}

// Decode reads a JSON document from r into v. Every failure, including an
// empty or oversized body, is returned as a *jsonerr.DecodeError.
func (c JSONConfig) Decode(r io.Reader, v any) error {
	if c.Limit > 0 {
		r = io.LimitReader(r, c.Limit+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return &jsonerr.DecodeError{Err: err}
	}
	if c.Limit > 0 && int64(len(b)) > c.Limit {
		return &jsonerr.DecodeError{Err: fmt.Errorf("json payload size exceeds the limit (%d bytes)", c.Limit)}
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return &jsonerr.DecodeError{Err: errors.New("json payload is empty")}
	}
	if err := gojson.Unmarshal(b, v); err != nil {
		return &jsonerr.DecodeError{Err: err}
	}
	return nil
}

// Handle renders err with the configured ErrorHandler.
func (c JSONConfig) Handle(err error) (int, []byte) {
	h := c.ErrorHandler
	if h == nil {
		h = LegacyDecodeError
	}
	return h(err)
}

type legacyDetails struct {
	StatusText string `json:"status_text"`
	Desc       string `json:"desc"`
}

type legacyView struct {
	Status  int           `json:"status"`
	Details legacyDetails `json:"details"`
}

type legacyPayload struct {
	Error legacyView `json:"error"`
}

// LegacyDecodeError answers HTTP 400 with
//
//	{"error":{"status":500,"details":{"status_text":"<message>","desc":"json解析错误"}}}
//
// Note that details is an object here, not an array, and that status
// stays 500 although the response is sent with 400.
func LegacyDecodeError(err error) (int, []byte) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	b, mErr := gojson.Marshal(legacyPayload{Error: legacyView{
		Status:  http.StatusInternalServerError,
		Details: legacyDetails{StatusText: msg, Desc: DecodeErrorDesc},
	}})
	if mErr != nil {
		return http.StatusInternalServerError, nil
	}
	return http.StatusBadRequest, b
}

// UnifiedDecodeError answers HTTP 400 with the regular boundary payload
// carrying code.InvalidMessageData.
func UnifiedDecodeError(err error) (int, []byte) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	e := NewError(http.StatusBadRequest).InvalidData(msg)
	b, mErr := e.Body()
	if mErr != nil {
		return http.StatusInternalServerError, nil
	}
	return e.StatusCode(), b
}
