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

// Package httpx renders described errors at an HTTP boundary.
//
// The central type is Error, the boundary responder: a transport status plus
// an optional described error. Rendering always produces a body of the form
//
//	{"error":{"status":404,"details":[{"err_type":"result not found","desc":"user 42"}]}}
//
// where status repeats the HTTP status, err_type is the English reason of
// the code and desc is the call-site description. A responder without an
// attached error renders the fixed fallback (FallbackCode,
// FallbackDescription) so clients never receive an empty error body.
//
// The package also carries the JSON request body collaborator (JSONConfig)
// with its legacy decode-failure payload, and small adapters for transport
// level failures (FromTransport, ReadBody).
package httpx
