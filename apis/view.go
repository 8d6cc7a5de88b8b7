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

// ViewProvider is implemented by values that can produce the transport
// friendly form of a boundary error.
type ViewProvider interface {
	// ErrorView returns the payload body of the error.
	ErrorView() ErrorView
}

// ErrorView is the inner object of a boundary payload:
//
//	{"status": 404, "details": [{"err_type": "result not found", "desc": "..."}]}
//
// Status repeats the transport status the error is answered with. The
// registry code is identified by err_type.
type ErrorView struct {
	Status  uint16   `json:"status"`
	Details []Detail `json:"details"`
}
