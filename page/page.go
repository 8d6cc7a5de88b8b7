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

// Package page holds the paginated result wrapper returned by listing
// endpoints.
package page

// Result is one page of a listing.
//
// Total is the total number of matching items, which may exceed
// len(Items) when the listing is paginated.
type Result[T any] struct {
	Items []T `json:"items"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// New returns an empty result. Items marshals as [] rather than null.
func New[T any]() Result[T] {
	return Result[T]{Items: []T{}}
}

// WithItems sets the items and resets Total to len(items). Call WithTotal
// afterwards when the page is a slice of a larger set.
func (r Result[T]) WithItems(items []T) Result[T] {
	if items == nil {
		items = []T{}
	}
	r.Items = items
	r.Total = len(items)
	return r
}

// WithLimit sets the page size that was applied.
func (r Result[T]) WithLimit(limit int) Result[T] {
	r.Limit = limit
	return r
}

// WithTotal overrides the total count.
func (r Result[T]) WithTotal(total int) Result[T] {
	r.Total = total
	return r
}

// Query is the offset/limit pair accepted by listing endpoints.
type Query struct {
	Offset int `form:"offset" json:"offset"`
	Limit  int `form:"limit" json:"limit"`
}

// Normalize clamps q: a negative offset becomes 0, a non-positive limit
// becomes def and a limit above maxLimit becomes maxLimit.
func (q Query) Normalize(def, maxLimit int) Query {
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 {
		q.Limit = def
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}

// Slice cuts one page out of all according to q and reports the full set
// size as Total.
func Slice[T any](all []T, q Query) Result[T] {
	start := q.Offset
	if start < 0 {
		start = 0
	}
	if start > len(all) {
		start = len(all)
	}
	end := len(all)
	if q.Limit > 0 && q.Limit < end-start {
		end = start + q.Limit
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return New[T]().WithItems(items).WithLimit(q.Limit).WithTotal(len(all))
}
