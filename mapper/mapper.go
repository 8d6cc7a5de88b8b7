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

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/code"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (per code and per band).
//  2. Apply user-provided options.
//  3. Validate every status: HTTP rules must be 4xx/5xx, gRPC rules must be
//     a canonical non-OK code.
//  4. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate an invalid status value.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range bandHTTP {
		b.httpBands[k] = v
	}
	for k, v := range bandGRPC {
		b.grpcBands[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) + (4) Validate and freeze.
	m := &mapper{}
	var err error
	if m.httpDefault, err = freezeHTTP("default", b.httpDefaults); err != nil {
		return nil, err
	}
	if m.grpcDefault, err = freezeGRPC("default", b.grpcDefaults); err != nil {
		return nil, err
	}
	if m.httpOverride, err = freezeHTTP("override", b.httpOverride); err != nil {
		return nil, err
	}
	if m.grpcOverride, err = freezeGRPC("override", b.grpcOverride); err != nil {
		return nil, err
	}
	if m.httpBand, err = freezeHTTP("band", b.httpBands); err != nil {
		return nil, err
	}
	if m.grpcBand, err = freezeGRPC("band", b.grpcBands); err != nil {
		return nil, err
	}
	if err := validHTTP(b.fallbackHTTP); err != nil {
		return nil, fmt.Errorf("mapper: fallback HTTP: %w", err)
	}
	if err := validGRPC(b.fallbackGRPC); err != nil {
		return nil, fmt.Errorf("mapper: fallback gRPC: %w", err)
	}
	m.fallbackHTTP = b.fallbackHTTP
	m.fallbackGRPC = codes.Code(b.fallbackGRPC)

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// overrides, per-code defaults and per-band defaults. Lookups are map hits
// and safe for concurrent use once constructed.
type mapper struct {
	// httpOverride holds explicit HTTP statuses for specific codes.
	httpOverride map[code.Code]int
	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// httpDefault holds the base HTTP status for a given code.
	httpDefault map[code.Code]int
	// grpcDefault holds the base gRPC status for a given code.
	grpcDefault map[code.Code]codes.Code

	// httpBand and grpcBand hold the statuses of codes without a per-code
	// rule, keyed by band.
	httpBand map[code.Band]int
	grpcBand map[code.Band]codes.Code

	// fallbackHTTP and fallbackGRPC are used when nothing matched. Typically
	// http.StatusInternalServerError and codes.Internal.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code default (library or user overridden);
//  3. per-band default;
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(c code.Code) int {
	v, _ := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	v, _ := m.resolveGRPC(c)
	return v
}

// Status resolves both HTTP and gRPC using the same input.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a code.
//
// Example output:
//
//	code=3003 name="DataBaseNotFound" band=persistence
//	http: source=default -> 404
//	grpc: source=default -> NOTFOUND(5)
//
// source is one of override, default, band or fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%d name=%q band=%s\n", uint16(c), c.Name(), code.BandOf(c))

	hv, hsrc := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hv)

	gv, gsrc := m.resolveGRPC(c)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", gsrc, grpcName(gv))

	return b.String()
}

func (m *mapper) resolveHTTP(c code.Code) (int, string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, "override"
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, "default"
	}
	if v, ok := m.httpBand[code.BandOf(c)]; ok {
		return v, "band"
	}
	return m.fallbackHTTP, "fallback"
}

func (m *mapper) resolveGRPC(c code.Code) (codes.Code, string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, "override"
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v, "default"
	}
	if v, ok := m.grpcBand[code.BandOf(c)]; ok {
		return v, "band"
	}
	return m.fallbackGRPC, "fallback"
}
