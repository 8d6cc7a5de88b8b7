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

package adapter

import (
	"sync"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/adapter/configerr"
	"dirpx.dev/coderr/adapter/dberr"
	"dirpx.dev/coderr/adapter/ioerr"
	"dirpx.dev/coderr/adapter/jsonerr"
	"dirpx.dev/coderr/adapter/mqerr"
	"dirpx.dev/coderr/code"
)

// Converter claims the foreign errors it recognizes. It must report false
// for everything else so that converters can be chained.
type Converter func(err error) (*coderr.Described, bool)

// Lifter turns arbitrary errors into described errors.
//
// A Lifter is an immutable chain of converters followed by a fallback code.
// It is safe for concurrent use.
type Lifter struct {
	converters []Converter
	fallback   code.Code
}

// Option configures a Lifter at build time.
type Option func(*Lifter)

// WithConverter appends c to the chain. Converters run in the order they
// were added.
func WithConverter(c Converter) Option {
	return func(l *Lifter) {
		if c != nil {
			l.converters = append(l.converters, c)
		}
	}
}

// WithConverters appends every converter in cs to the chain.
func WithConverters(cs ...Converter) Option {
	return func(l *Lifter) {
		for _, c := range cs {
			WithConverter(c)(l)
		}
	}
}

// WithFallback replaces the code used for errors no converter claims.
// The default is code.UnKnowError.
func WithFallback(c code.Code) Option {
	return func(l *Lifter) { l.fallback = c }
}

// New builds a Lifter. Without options it has no converters and lifts every
// foreign error to the fallback code.
func New(opts ...Option) *Lifter {
	l := &Lifter{fallback: code.UnKnowError}
	for _, opt := range opts {
		opt(l)
	}
	// detach from any slice shared through options
	l.converters = append([]Converter(nil), l.converters...)
	return l
}

// DefaultConverters returns the built-in converters in their default order:
// persistence, messaging, configuration, JSON, raw I/O.
//
// Raw I/O comes last because driver errors frequently wrap network errors,
// and the more specific classification must win.
func DefaultConverters() []Converter {
	return []Converter{
		dberr.Convert,
		mqerr.Convert,
		configerr.Convert,
		jsonerr.Convert,
		ioerr.Convert,
	}
}

var defaultLifter = sync.OnceValue(func() *Lifter {
	return New(WithConverters(DefaultConverters()...))
})

// Default returns the shared Lifter built from DefaultConverters.
func Default() *Lifter {
	return defaultLifter()
}

// Lift converts err into a described error:
//
//   - nil stays nil;
//   - a described (or bare coded) error anywhere in the chain is returned
//     as-is;
//   - otherwise the first converter claiming err wins;
//   - otherwise err becomes the fallback code with err.Error() as the
//     description.
//
// The foreign error is retained as the cause. Lift never panics; a nil
// receiver behaves like Default().
func (l *Lifter) Lift(err error) *coderr.Described {
	if err == nil {
		return nil
	}
	if l == nil {
		l = Default()
	}
	if d, ok := coderr.As(err); ok {
		return d
	}
	for _, c := range l.converters {
		if d, ok := c(err); ok && d != nil {
			return d
		}
	}
	return coderr.Describe(l.fallback, err.Error(), coderr.WithCause(err))
}

// Len reports the number of converters in the chain.
func (l *Lifter) Len() int {
	if l == nil {
		return 0
	}
	return len(l.converters)
}
