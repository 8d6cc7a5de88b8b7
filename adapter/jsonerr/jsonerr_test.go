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

package jsonerr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/coderr/code"
)

type payload struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestConvert_EncodingJSON(t *testing.T) {
	var p payload
	for _, in := range []string{`{"name":"x",}`, `{"age":"old"}`} {
		err := json.Unmarshal([]byte(in), &p)
		require.Error(t, err)

		d, ok := Convert(err)
		require.True(t, ok, "input %s", in)
		assert.Equal(t, code.InvalidMessageData, d.Code())
		assert.Equal(t, err.Error(), d.Description())
	}
}

func TestConvert_GoJSON(t *testing.T) {
	var p payload
	for _, in := range []string{`{"name":`, `{"age":"old"}`} {
		err := gojson.Unmarshal([]byte(in), &p)
		require.Error(t, err)

		d, ok := Convert(err)
		require.True(t, ok, "input %s: %T", in, err)
		assert.Equal(t, code.InvalidMessageData, d.Code())
	}
}

func TestConvert_InvalidUnmarshalTarget(t *testing.T) {
	err := json.Unmarshal([]byte(`{}`), any(nil))
	d, ok := Convert(err)
	require.True(t, ok)
	assert.Equal(t, code.InvalidMessageData, d.Code())
}

func TestConvert_DecodeErrorWrapsTransportFailures(t *testing.T) {
	err := fmt.Errorf("bind: %w", &DecodeError{Err: io.EOF})
	d, ok := Convert(err)
	require.True(t, ok)
	assert.Equal(t, code.InvalidMessageData, d.Code())
	assert.True(t, errors.Is(d, io.EOF))
}

func TestConvert_TruncatedStream(t *testing.T) {
	var v map[string]any
	err := json.NewDecoder(strings.NewReader(`{"a":`)).Decode(&v)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, ok := Convert(err)
	assert.False(t, ok, "a bare unexpected EOF is left to the I/O converter")

	d, ok := Convert(&DecodeError{Err: err})
	require.True(t, ok)
	assert.Equal(t, code.InvalidMessageData, d.Code())
}

func TestConvert_NotClaimed(t *testing.T) {
	_, ok := Convert(errors.New("plain"))
	assert.False(t, ok)
	_, ok = Convert(nil)
	assert.False(t, ok)
}
