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

// Package mapper provides deterministic, immutable mappings from registry
// codes (dirpx.dev/coderr/code) to transport-level statuses for HTTP and
// gRPC.
//
// # Overview
//
// The boundary payload always carries the numeric registry code. The
// transport status that accompanies it (the HTTP status line, the gRPC
// status code) is a policy decision of the service, and this package is
// where that policy lives. A Mapper is:
//
//   - immutable: a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per code or band;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. per-code default (library or user-adjusted);
//  3. per-band default (code.BandIO, code.BandPersistence, ...);
//  4. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// The package ships with defaults for the codes that have an obvious
// transport meaning (code.DataBaseNotFound -> 404 / NotFound,
// code.PermissionDenied -> 403 / PermissionDenied, code.InvalidMessageData
// -> 400 / InvalidArgument, timeouts -> 504 / DeadlineExceeded, ...) and for
// every band. Everything else ends in the fallback.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.DataBaseNotFound, http.StatusGone),
//	    mapper.WithHTTPBand(code.BandDevice, http.StatusServiceUnavailable),
//	)
//	if err != nil {
//	    // invalid status value
//	}
//
//	st := m.Status(code.DataBaseNotFound)
//	// st.HTTP == 410, st.GRPC == codes.NotFound
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a code was resolved,
// including which tier matched. It is intended for inspection and logging,
// not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps.
package mapper
