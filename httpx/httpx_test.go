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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/adapter/jsonerr"
	"dirpx.dev/coderr/code"
	"dirpx.dev/coderr/mapper"
)

func TestError_RoundTrip(t *testing.T) {
	e := NewError(http.StatusNotFound).NotFind("user 42")

	b, err := e.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"status":404,"details":[{"err_type":"result not found","desc":"user 42"}]}}`, string(b))

	var p Payload
	require.NoError(t, gojson.Unmarshal(b, &p))
	assert.Equal(t, uint16(http.StatusNotFound), p.Error.Status)
	assert.Equal(t, code.DataBaseNotFound, e.Described().Code())
	require.Len(t, p.Error.Details, 1)
	assert.Equal(t, "result not found", p.Error.Details[0].ErrType)
	assert.Equal(t, "user 42", p.Error.Details[0].Desc)
	assert.Equal(t, http.StatusNotFound, e.StatusCode())
}

func TestError_RenderIsIdempotent(t *testing.T) {
	e := NewError(http.StatusBadRequest).InvalidData("bad field")
	b1, err := e.Body()
	require.NoError(t, err)
	b2, err := e.Body()
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	s1, p1 := e.Render()
	s2, p2 := e.Render()
	assert.Equal(t, s1, s2)
	assert.Equal(t, p1, p2)
}

func TestError_FallbackBody(t *testing.T) {
	e := NewError(http.StatusInternalServerError)
	status, p := e.Render()
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, uint16(500), p.Error.Status)
	require.Len(t, p.Error.Details, 1)
	assert.Equal(t, "unexpected error occured", p.Error.Details[0].ErrType)
	assert.Equal(t, "发生意外错误", p.Error.Details[0].Desc)
	assert.Nil(t, e.Described(), "rendering must not attach the fallback")
	assert.Equal(t, code.UnexpectedErrorOccured, e.Effective().Code())

	b, err := e.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"error":{"status":500,"details":[{"err_type":"unexpected error occured","desc":"发生意外错误"}]}}`, string(b))
}

func TestError_RenderBare(t *testing.T) {
	_, p := NewError(http.StatusInternalServerError).RenderBare()
	b, err := gojson.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"status":500,"details":[]}}`, string(b))

	_, p = NewError(http.StatusNotFound).NotFind("x").RenderBare()
	assert.Equal(t, uint16(404), p.Error.Status)
	require.Len(t, p.Error.Details, 1)
	assert.Equal(t, "result not found", p.Error.Details[0].ErrType)
}

func TestError_UnknownCodePlaceholder(t *testing.T) {
	e := WithError(http.StatusTeapot, coderr.Describe(code.Code(9999), "custom"))
	_, p := e.Render()
	assert.Equal(t, "unknown error code 9999", p.Error.Details[0].ErrType)
	assert.Equal(t, "custom", p.Error.Details[0].Desc)
}

func TestError_SettersChainAndReplace(t *testing.T) {
	e := NewError(http.StatusBadRequest)
	assert.Same(t, e, e.InvalidData("a"))
	assert.Same(t, e, e.NotFind("b"))
	assert.Equal(t, code.DataBaseNotFound, e.Described().Code())
	assert.Equal(t, "b", e.Described().Description())
}

func TestNewError_InvalidStatus(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, NewError(0).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, NewError(1000).StatusCode())
}

func TestError_ErrorAndUnwrap(t *testing.T) {
	d := coderr.Describe(code.PermissionDenied, "nope")
	e := WithError(http.StatusForbidden, d)
	assert.True(t, errors.Is(e, coderr.New(code.PermissionDenied)))
	assert.Contains(t, e.Error(), "status 403")
	assert.Contains(t, e.Error(), "nope")
	assert.Nil(t, NewError(500).Unwrap())
}

func TestFromTransport(t *testing.T) {
	assert.Nil(t, FromTransport(nil))

	e := FromTransport(errors.New("connection reset by peer"))
	assert.Equal(t, http.StatusInternalServerError, e.StatusCode())
	assert.Equal(t, code.InvalidMessageData, e.Described().Code())
	assert.Equal(t, "connection reset by peer", e.Described().Description())
}

func TestReadBody(t *testing.T) {
	b, err := ReadBody(strings.NewReader("hello"), 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	_, err = ReadBody(bytes.NewReader([]byte{0xff, 0xfe}), 0)
	var he *Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code.InvalidMessageData, he.Described().Code())
	assert.Equal(t, ErrInvalidUTF8.Error(), he.Described().Description())

	_, err = ReadBody(iotest.ErrReader(errors.New("stream broke")), 0)
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "stream broke", he.Described().Description())

	_, err = ReadBody(strings.NewReader("0123456789"), 4)
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.StatusCode())
}

func TestJSONConfig_Decode(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	cfg := DefaultJSONConfig()
	assert.Equal(t, int64(1024*1024*1000), cfg.Limit)

	require.NoError(t, cfg.Decode(strings.NewReader(`{"name":"ok"}`), &v))
	assert.Equal(t, "ok", v.Name)

	err := cfg.Decode(strings.NewReader(`{"name":`), &v)
	var de *jsonerr.DecodeError
	require.ErrorAs(t, err, &de)

	err = cfg.Decode(strings.NewReader(""), &v)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "json payload is empty", err.Error())

	small := JSONConfig{Limit: 4}
	err = small.Decode(strings.NewReader(`{"name":"too long"}`), &v)
	require.ErrorAs(t, err, &de)
}

func TestJSONConfig_LegacyHandler(t *testing.T) {
	status, body := DefaultJSONConfig().Handle(&jsonerr.DecodeError{Err: errors.New("json payload is empty")})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, `{"error":{"status":500,"details":{"status_text":"json payload is empty","desc":"json解析错误"}}}`, string(body))

	var zero JSONConfig
	status, _ = zero.Handle(errors.New("x"))
	assert.Equal(t, http.StatusBadRequest, status, "nil handler falls back to the legacy one")
}

func TestJSONConfig_UnifiedHandler(t *testing.T) {
	status, body := UnifiedJSONConfig().Handle(errors.New("unexpected end of JSON input"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":{"status":400,"details":[{"err_type":"invalid message data","desc":"unexpected end of JSON input"}]}}`, string(body))
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, NewError(http.StatusNotFound).NotFind("user 42"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":{"status":404,"details":[{"err_type":"result not found","desc":"user 42"}]}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Write(rec, nil)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestWriter_ResolvesForeignErrors(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)
	w := Writer{Lifter: adapter.Default(), Mapper: m}

	rec := httptest.NewRecorder()
	w.Write(rec, fmt.Errorf("load user: %w", gorm.ErrRecordNotFound), Meta{RequestID: "req-1", RetryAfterSeconds: 3})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))

	var p Payload
	require.NoError(t, gojson.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, uint16(404), p.Error.Status)
	assert.Equal(t, "result not found", p.Error.Details[0].ErrType)
	assert.Equal(t, "load user: record not found", p.Error.Details[0].Desc)
}

func TestResolve(t *testing.T) {
	assert.Nil(t, Resolve(nil, nil, nil))

	he := NewError(http.StatusConflict).InvalidData("x")
	assert.Same(t, he, Resolve(fmt.Errorf("wrap: %w", he), nil, nil))

	got := Resolve(errors.New("odd"), nil, nil)
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode())
	assert.Equal(t, code.UnKnowError, got.Described().Code())
}
