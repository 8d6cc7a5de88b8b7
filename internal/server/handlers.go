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
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/code"
	"dirpx.dev/coderr/ginx"
	"dirpx.dev/coderr/httpx"
	"dirpx.dev/coderr/page"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type handlers struct {
	mapper apis.Mapper
	json   httpx.JSONConfig
}

type listQuery struct {
	page.Query
	Band string `form:"band"`
}

type renderRequest struct {
	Code uint16 `json:"code"`
	Desc string `json:"desc"`
}

func (h *handlers) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) listCodes(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ginx.Fail(c, invalidInput(err.Error()))
		return
	}

	entries := code.Entries()
	if q.Band != "" {
		b, ok := code.ParseBand(q.Band)
		if !ok {
			ginx.Fail(c, invalidInput("unknown band "+strconv.Quote(q.Band)))
			return
		}
		entries = code.InBand(b)
	}

	descs := make([]apis.ErrorDescriptor, 0, len(entries))
	for _, e := range entries {
		descs = append(descs, h.describe(e.Code))
	}
	c.JSON(http.StatusOK, page.Slice(descs, q.Query.Normalize(defaultPageSize, maxPageSize)))
}

func (h *handlers) getCode(c *gin.Context) {
	cd, ok := h.parseCode(c)
	if !ok {
		return
	}
	if !cd.Registered() {
		ginx.Fail(c, httpx.NewError(http.StatusNotFound).NotFind("code "+strconv.FormatUint(uint64(cd), 10)+" is not registered"))
		return
	}
	c.JSON(http.StatusOK, h.describe(cd))
}

func (h *handlers) explainCode(c *gin.Context) {
	cd, ok := h.parseCode(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, h.mapper.Explain(cd))
}

// render answers with the boundary payload of the requested code, as any
// failing handler would.
func (h *handlers) render(c *gin.Context) {
	var req renderRequest
	if !ginx.BindJSON(c, h.json, &req) {
		return
	}
	ginx.Fail(c, coderr.New(code.Code(req.Code)).WithDescription(req.Desc))
}

func (h *handlers) parseCode(c *gin.Context) (code.Code, bool) {
	cd, err := code.Parse(c.Param("code"))
	if err != nil {
		ginx.Fail(c, invalidInput(err.Error()+": "+strconv.Quote(c.Param("code"))))
		return 0, false
	}
	return cd, true
}

func (h *handlers) describe(c code.Code) apis.ErrorDescriptor {
	return adapter.ToDescriptor(coderr.From(coderr.New(c)), h.mapper.Status(c))
}

func invalidInput(msg string) *httpx.Error {
	return httpx.NewError(http.StatusBadRequest).Err(coderr.New(code.InvalidInput).WithDescription(msg))
}
