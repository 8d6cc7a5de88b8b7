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

// ErrorDescriptor is a flat, self-contained description of one described
// error, suitable for structured logs, CLI output and diagnostics.
//
// It uses plain scalar fields so that it can be marshaled without importing
// the concrete error types.
type ErrorDescriptor struct {
	// Code is the numeric registry code.
	Code uint16 `json:"code"`

	// Name is the symbolic identifier, e.g. "DataBaseNotFound". Empty for an
	// unregistered code.
	Name string `json:"name,omitempty"`

	// ReasonEN and ReasonCN are the registry reasons. Empty when the code is
	// not registered.
	ReasonEN string `json:"reason_en,omitempty"`
	ReasonCN string `json:"reason_cn,omitempty"`

	// Description is the call-site description.
	Description string `json:"description,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	// 0 means "not resolved" (gRPC OK is never used for an error).
	GRPCCode int `json:"grpc_code,omitempty"`
}
