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

// Package code is the registry of numeric error codes.
//
// A code is the stable, machine-readable classification of a failure. Codes
// are:
//
//   - unsigned 16-bit numbers;
//   - unique across the whole registry;
//   - grouped into closed numeric bands per domain (see Band);
//   - append-only: once a code has been emitted it keeps its meaning forever.
//
// Every registered code has a symbolic identifier (the Go constant name) and
// an English and a Chinese reason (see package reason). Lookups against an
// unregistered value are legal and simply report "absent".
//
// Adding a failure kind means appending one row to the table in registry.go
// inside the appropriate band and declaring the matching constant in
// codes.go. No existing row may change.
package code
