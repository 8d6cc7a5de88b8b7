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

// Package apis defines the public Go-level contracts of the coded error
// model.
//
// Transport adapters (HTTP, gRPC), loggers and the CLI depend on these small
// interfaces and view types instead of the concrete error implementation in
// the root package.
//
// This package must stay lightweight: it only contains interfaces and very
// small view types, and depends on nothing but dirpx.dev/coderr/code and the
// gRPC codes enumeration.
package apis
