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

package coderr

// Option is a functional option for constructing or transforming a
// described error. It always takes a *Described and returns a (possibly
// new) *Described.
type Option func(*Described) *Described

// WithCause attaches a cause on construction.
// Intended to be used with Describe(...).
func WithCause(err error) Option {
	return func(d *Described) *Described {
		return d.WithCause(err)
	}
}

// WithDescriptionOption replaces the description on construction.
// Intended to be used with Describe(...) when the description is computed
// by another option-producing helper.
func WithDescriptionOption(desc string) Option {
	return func(d *Described) *Described {
		return d.WithDescription(desc)
	}
}
