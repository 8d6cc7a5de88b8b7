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

// Package logx configures logrus for the service and derives structured
// log fields from coded errors.
package logx

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/config"
)

// Field keys written by this package.
const (
	FieldCode    = "code"
	FieldErrType = "err_type"
	FieldDesc    = "desc"
	FieldCause   = "cause"
	FieldTraceID = "trace_id"
	FieldSpanID  = "span_id"
	FieldService = "service"
)

// Options customizes Init.
type Options struct {
	// Logger is configured in place. Nil means logrus.StandardLogger().
	Logger *logrus.Logger

	// Console receives every entry. Nil means os.Stdout.
	Console io.Writer

	// Service, when set, is added to every entry as the "service" field.
	Service string
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Init applies cfg to the logger selected by opts.
//
// An unknown level falls back to info and is reported as a warning. When
// cfg.File is enabled, entries are written to both the console and a
// lumberjack-rotated file; the returned Closer closes that file and is a
// no-op otherwise.
func Init(cfg config.Log, opts Options) (io.Closer, error) {
	l := opts.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	switch cfg.Format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	l.SetReportCaller(cfg.ReportCaller)

	closer := io.Closer(closerFunc(func() error { return nil }))
	out := console
	if cfg.File.Enabled {
		if cfg.File.Path == "" {
			return nil, errors.New("logx: file output enabled without a path")
		}
		fw := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    max(1, cfg.File.MaxSizeMB),
			MaxBackups: max(0, cfg.File.MaxBackups),
			MaxAge:     max(0, cfg.File.MaxAgeDays),
			Compress:   cfg.File.Compress,
		}
		out = io.MultiWriter(console, fw)
		closer = fw
	}
	l.SetOutput(out)

	if opts.Service != "" {
		l.AddHook(serviceHook{name: opts.Service})
	}

	if lvl, err := logrus.ParseLevel(cfg.Level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}
	return closer, nil
}

type serviceHook struct {
	name string
}

func (h serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h serviceHook) Fire(e *logrus.Entry) error {
	e.Data[FieldService] = h.name
	return nil
}

// Fields returns the registry code, err_type and desc of err as logrus
// fields. err_type and desc match the boundary payload. Errors without a code are
// lifted with adapter.Default(). A nil err yields nil.
func Fields(err error) logrus.Fields {
	if err == nil {
		return nil
	}
	d, ok := coderr.As(err)
	if !ok {
		d = adapter.Default().Lift(err)
	}
	errType, ok := d.Code().ReasonEN()
	if !ok {
		errType = adapter.UnknownReason(uint16(d.Code()))
	}
	f := logrus.Fields{
		FieldCode:    uint16(d.Code()),
		FieldErrType: errType,
		FieldDesc:    d.Description(),
	}
	if c := d.Cause(); c != nil {
		f[FieldCause] = c.Error()
	}
	return f
}

// WithError is l.WithFields(Fields(err)).
func WithError(l logrus.FieldLogger, err error) *logrus.Entry {
	return l.WithFields(Fields(err))
}

// WithTrace binds ctx to an entry of l and adds "trace_id" and "span_id"
// when ctx carries a valid OpenTelemetry span context.
func WithTrace(ctx context.Context, l *logrus.Logger) *logrus.Entry {
	if l == nil {
		l = logrus.StandardLogger()
	}
	if ctx == nil {
		return logrus.NewEntry(l)
	}
	e := l.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		e = e.WithFields(logrus.Fields{
			FieldTraceID: sc.TraceID().String(),
			FieldSpanID:  sc.SpanID().String(),
		})
	}
	return e
}
