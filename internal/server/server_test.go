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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/code"
	"dirpx.dev/coderr/config"
	"dirpx.dev/coderr/mapper"
	"dirpx.dev/coderr/page"
)

func newServer(t *testing.T, mutate func(*config.HTTP)) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default().HTTP
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := mapper.New(mapper.WithHTTPOverride(code.DataBaseNotFound, http.StatusGone))
	require.NoError(t, err)
	log, _ := test.NewNullLogger()

	s, err := New(cfg, m, nil, log)
	require.NoError(t, err)
	return s
}

func do(s *Server, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(newServer(t, nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListCodes(t *testing.T) {
	s := newServer(t, nil)

	w := do(s, http.MethodGet, "/v1/codes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all page.Result[apis.ErrorDescriptor]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Equal(t, len(code.Entries()), all.Total)
	assert.Equal(t, defaultPageSize, all.Limit)
	assert.Len(t, all.Items, defaultPageSize)

	w = do(s, http.MethodGet, "/v1/codes?band=persistence&limit=2&offset=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var pg page.Result[apis.ErrorDescriptor]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pg))
	assert.Equal(t, 4, pg.Total)
	assert.Equal(t, 2, pg.Limit)
	require.Len(t, pg.Items, 2)
	assert.Equal(t, apis.ErrorDescriptor{
		Code:       3003,
		Name:       "DataBaseNotFound",
		ReasonEN:   "result not found",
		ReasonCN:   "没有查询到结果",
		HTTPStatus: http.StatusGone,
		GRPCCode:   5,
	}, pg.Items[0])
	assert.Equal(t, uint16(3101), pg.Items[1].Code)
}

func TestListCodes_BadQuery(t *testing.T) {
	s := newServer(t, nil)

	w := do(s, http.MethodGet, "/v1/codes?band=weather", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"error":{"status":400,"details":[{"err_type":"invalid input parameter","desc":"unknown band \"weather\""}]}}`,
		w.Body.String())

	w = do(s, http.MethodGet, "/v1/codes?limit=many", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"err_type":"invalid input parameter"`)
}

func TestGetCode(t *testing.T) {
	s := newServer(t, nil)

	w := do(s, http.MethodGet, "/v1/codes/FileNotFound", "")
	require.Equal(t, http.StatusOK, w.Code)
	var d apis.ErrorDescriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, uint16(1001), d.Code)
	assert.Equal(t, http.StatusNotFound, d.HTTPStatus)

	w = do(s, http.MethodGet, "/v1/codes/4242", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t,
		`{"error":{"status":404,"details":[{"err_type":"result not found","desc":"code 4242 is not registered"}]}}`,
		w.Body.String())

	w = do(s, http.MethodGet, "/v1/codes/nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExplainCode(t *testing.T) {
	w := do(newServer(t, nil), http.MethodGet, "/v1/codes/3003/explain", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http: source=override -> 410")
}

func TestRender(t *testing.T) {
	s := newServer(t, nil)

	w := do(s, http.MethodPost, "/v1/render", `{"code":6001,"desc":"admin only"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t,
		`{"error":{"status":403,"details":[{"err_type":"role type error","desc":"admin only"}]}}`,
		w.Body.String())

	w = do(s, http.MethodPost, "/v1/render", `{"code":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"desc":"json解析错误"`)
}

func TestRender_UnifiedDecodeErrors(t *testing.T) {
	s := newServer(t, func(h *config.HTTP) { h.UnifiedDecodeErrors = true })

	w := do(s, http.MethodPost, "/v1/render", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"err_type":"invalid message data"`)
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default().HTTP
	cfg.TrustedProxies = []string{"not-an-ip"}

	_, err := New(cfg, nil, nil, nil)
	assert.Error(t, err)
}
