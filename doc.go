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

// Package coderr is the error value model of the dirpx code registry.
//
// Two layers are provided:
//
//   - Error: a comparable value holding exactly one numeric code from
//     dirpx.dev/coderr/code. Its reasons are resolved through the registry;
//     it has no other state.
//   - *Described: an Error plus a free-form description supplied at the call
//     site and, optionally, the foreign error it was converted from.
//
// The description never changes the classification of an error. Two
// described errors with the same code are equal for errors.Is regardless of
// their descriptions.
//
// Typical usage:
//
//	return coderr.New(code.DataBaseNotFound).WithDescription("user 42")
//
// or, with options:
//
//	return coderr.Describe(code.FileNotFound, path,
//	    coderr.WithCause(err),
//	)
//
// Converting errors from other packages (os, net, gorm, sarama, ...) into
// this model is the job of dirpx.dev/coderr/adapter.
package coderr
