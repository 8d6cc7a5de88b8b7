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

// Package ginx wires the boundary responder into gin.
//
// Handlers report failures with Fail (or c.Error) and return; the
// Responder middleware lifts the last recorded error, maps it to an HTTP
// status and writes the boundary payload. Handlers that already hold a
// responder can write it directly with Abort.
package ginx

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/httpx"
	"dirpx.dev/coderr/logx"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Context keys set by this package.
const (
	RequestIDKey = "coderr.request_id"
	CodeKey      = "coderr.code"
)

// Fail records err on c and aborts the remaining handlers. The Responder
// middleware renders it.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Abort writes e immediately and aborts the remaining handlers.
func Abort(c *gin.Context, e *httpx.Error) {
	b, err := e.Body()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Set(CodeKey, uint16(e.Effective().Code()))
	c.Data(e.StatusCode(), contentTypeJSON, b)
	c.Abort()
}

// BindJSON decodes the request body into v using cfg. On failure it writes
// the response chosen by cfg.ErrorHandler, aborts and returns false.
func BindJSON(c *gin.Context, cfg httpx.JSONConfig, v any) bool {
	if err := cfg.Decode(c.Request.Body, v); err != nil {
		status, body := cfg.Handle(err)
		c.Data(status, contentTypeJSON, body)
		c.Abort()
		return false
	}
	return true
}

// Responder renders the last error recorded on the context once the
// handlers have run, unless a response was already written. 4xx responses
// are logged at warn level and 5xx at error level.
func Responder(l *adapter.Lifter, m apis.Mapper, log *logrus.Logger) gin.HandlerFunc {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		e := httpx.Resolve(last.Err, l, m)
		entry := logx.WithTrace(c.Request.Context(), log).
			WithFields(logx.Fields(e.Effective())).
			WithField("status", e.StatusCode())
		if id := RequestIDFrom(c); id != "" {
			entry = entry.WithField("request_id", id)
		}
		if e.StatusCode() >= http.StatusInternalServerError {
			entry.WithError(last.Err).Error("request failed")
		} else {
			entry.WithError(last.Err).Warn("request rejected")
		}

		Abort(c, e)
	}
}

// RequestID propagates the X-Request-ID header, generating a UUID when the
// client did not send one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(httpx.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(httpx.RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns the id stored by RequestID, or "".
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// Recovery turns a panic into the fallback payload with HTTP 500.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).
			WithField("path", c.Request.URL.Path).
			Error("handler panicked")
		Abort(c, httpx.NewError(http.StatusInternalServerError))
	})
}

// AccessLog writes one entry per request with the route, status, latency
// and the registry code of the rendered error, if any.
func AccessLog(log *logrus.Logger) gin.HandlerFunc {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		fields := logrus.Fields{
			"method":     c.Request.Method,
			"route":      route,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if id := RequestIDFrom(c); id != "" {
			fields["request_id"] = id
		}
		if v, ok := c.Get(CodeKey); ok {
			fields[logx.FieldCode] = v
		}
		logx.WithTrace(c.Request.Context(), log).WithFields(fields).Info("access")
	}
}
