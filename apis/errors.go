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

package apis

import "dirpx.dev/coderr/code"

// CodedError represents an error classified by one numeric registry code.
//
// The code is the value boundary adapters use to decide which transport
// status to return and which reason to render. Unregistered codes are legal
// and must be tolerated by every consumer.
type CodedError interface {
	error

	// ErrorCode returns the numeric registry code.
	ErrorCode() code.Code
}

// DescribedError is a CodedError that also carries a free-form description
// supplied where the error was raised.
//
// The description is advisory: it is never used for classification.
type DescribedError interface {
	CodedError

	// ErrorDescription returns the description. May be empty.
	ErrorDescription() string
}

// CausedError represents an error that exposes the foreign error it was
// converted from.
//
// Implementations SHOULD return the direct cause. If there is none, they
// SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error, if any. May return nil.
	Cause() error
}
