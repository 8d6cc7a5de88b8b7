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

// Package server is the HTTP service exposing the code registry.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/config"
	"dirpx.dev/coderr/ginx"
	"dirpx.dev/coderr/mapper"
)

// Server owns the gin engine and the net/http server around it.
type Server struct {
	engine *gin.Engine
	srv    *http.Server
	h      *handlers
}

// New builds the engine with the error middleware chain and registers the
// routes. A nil mapper means the built-in defaults, a nil lifter means
// adapter.Default() and a nil logger means the logrus standard logger.
func New(cfg config.HTTP, m apis.Mapper, l *adapter.Lifter, log *logrus.Logger) (*Server, error) {
	if m == nil {
		var err error
		if m, err = mapper.New(); err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if l == nil {
		l = adapter.Default()
	}

	engine := gin.New()
	if len(cfg.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			return nil, err
		}
	}
	engine.Use(
		ginx.RequestID(),
		ginx.AccessLog(log),
		ginx.Recovery(log),
		ginx.Responder(l, m, log),
	)

	h := &handlers{mapper: m, json: cfg.JSONConfig()}
	engine.GET("/healthz", h.healthz)
	v1 := engine.Group("/v1")
	v1.GET("/codes", h.listCodes)
	v1.GET("/codes/:code", h.getCode)
	v1.GET("/codes/:code/explain", h.explainCode)
	v1.POST("/render", h.render)

	return &Server{
		engine: engine,
		h:      h,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
	}, nil
}

// Start serves until Shutdown; it then returns http.ErrServerClosed.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
