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

// Detail is one element of the "details" array of a boundary error payload.
//
// ErrType is the English reason of the code and is stable across releases;
// Desc is the call-site description and is advisory.
type Detail struct {
	ErrType string `json:"err_type"`
	Desc    string `json:"desc"`
}
