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

package page

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Builders(t *testing.T) {
	r := New[string]().WithItems([]string{"a", "b", "c"})
	assert.Equal(t, 3, r.Total, "WithItems sets total to the item count")

	r = r.WithLimit(10).WithTotal(42)
	assert.Equal(t, 10, r.Limit)
	assert.Equal(t, 42, r.Total)
	assert.Len(t, r.Items, 3)
}

func TestResult_BuildersDoNotAlias(t *testing.T) {
	base := New[int]().WithLimit(5)
	other := base.WithLimit(7)
	assert.Equal(t, 5, base.Limit)
	assert.Equal(t, 7, other.Limit)
}

func TestResult_JSON(t *testing.T) {
	b, err := json.Marshal(New[int]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"limit":0,"total":0}`, string(b))

	b, err = json.Marshal(New[int]().WithItems(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"limit":0,"total":0}`, string(b))
}

func TestQuery_Normalize(t *testing.T) {
	assert.Equal(t, Query{Offset: 0, Limit: 20}, Query{Offset: -3}.Normalize(20, 100))
	assert.Equal(t, Query{Offset: 5, Limit: 100}, Query{Offset: 5, Limit: 1000}.Normalize(20, 100))
	assert.Equal(t, Query{Offset: 1, Limit: 7}, Query{Offset: 1, Limit: 7}.Normalize(20, 100))
}

func TestSlice(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}

	r := Slice(all, Query{Offset: 1, Limit: 2})
	assert.Equal(t, []int{2, 3}, r.Items)
	assert.Equal(t, 2, r.Limit)
	assert.Equal(t, 5, r.Total)

	r = Slice(all, Query{Offset: 4, Limit: 10})
	assert.Equal(t, []int{5}, r.Items)

	r = Slice(all, Query{Offset: 99, Limit: 10})
	assert.Empty(t, r.Items)
	assert.NotNil(t, r.Items)
	assert.Equal(t, 5, r.Total)
}

func TestSlice_HugeLimit(t *testing.T) {
	r := Slice([]int{1, 2, 3}, Query{Offset: 1, Limit: math.MaxInt})
	assert.Equal(t, []int{2, 3}, r.Items)
	assert.Equal(t, 3, r.Total)
}
