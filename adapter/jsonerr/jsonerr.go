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

// Package jsonerr converts structured-data (JSON) encoding and decoding
// errors into code.InvalidMessageData.
//
// Both encoding/json and github.com/goccy/go-json are recognized.
//
// A streaming json.Decoder reports a truncated document as a bare
// io.ErrUnexpectedEOF, which is not claimed here and classifies as an I/O
// failure (code.UnexpectedEOF) further down the chain. Wrap it in a
// DecodeError to classify it as invalid message data; httpx.JSONConfig's
// Decode always does.
package jsonerr

import (
	"encoding/json"
	"errors"

	gojson "github.com/goccy/go-json"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/code"
)

// DecodeError wraps any failure that happened while decoding a request
// body, including transport-level failures such as an empty or oversized
// body, so that they all classify as invalid message data.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	if e == nil || e.Err == nil {
		return "jsonerr: decode failed"
	}
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Convert claims JSON errors. The description is the error's own message
// and err is retained as the cause.
func Convert(err error) (*coderr.Described, bool) {
	if err == nil || !isJSON(err) {
		return nil, false
	}
	return coderr.Describe(code.InvalidMessageData, err.Error(), coderr.WithCause(err)), true
}

func isJSON(err error) bool {
	var (
		decodeErr *DecodeError

		syntaxErr     *json.SyntaxError
		typeErr       *json.UnmarshalTypeError
		invalidErr    *json.InvalidUnmarshalError
		unsupTypeErr  *json.UnsupportedTypeError
		unsupValueErr *json.UnsupportedValueError
		marshalerErr  *json.MarshalerError

		goSyntaxErr     *gojson.SyntaxError
		goTypeErr       *gojson.UnmarshalTypeError
		goInvalidErr    *gojson.InvalidUnmarshalError
		goUnsupTypeErr  *gojson.UnsupportedTypeError
		goUnsupValueErr *gojson.UnsupportedValueError
		goMarshalerErr  *gojson.MarshalerError
	)
	return errors.As(err, &decodeErr) ||
		errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &invalidErr) ||
		errors.As(err, &unsupTypeErr) ||
		errors.As(err, &unsupValueErr) ||
		errors.As(err, &marshalerErr) ||
		errors.As(err, &goSyntaxErr) ||
		errors.As(err, &goTypeErr) ||
		errors.As(err, &goInvalidErr) ||
		errors.As(err, &goUnsupTypeErr) ||
		errors.As(err, &goUnsupValueErr) ||
		errors.As(err, &goMarshalerErr)
}
