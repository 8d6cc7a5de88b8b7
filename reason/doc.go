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

// Package reason holds the human-readable side of a registry entry.
//
// Where a code answers “which failure is this?” as a stable number, a reason
// answers the same question in words. Every registered code carries exactly
// two reasons:
//
//   - an English one, which is what the boundary payload exposes as
//     "err_type" and what clients may switch on;
//   - a Chinese one, used for operator-facing output and the fallback
//     description.
//
// The package also defines Locale, the small closed set of languages a
// caller can ask for, together with the normalization rules used to turn
// header or flag values ("en-US", "zh_CN", "ZH") into a Locale.
package reason
