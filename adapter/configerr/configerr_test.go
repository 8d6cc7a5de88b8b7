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

package configerr

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/coderr/code"
)

func TestConvert_TOMLParseError(t *testing.T) {
	var v map[string]any
	_, err := toml.Decode("name = ", &v)
	require.Error(t, err)

	d, ok := Convert(err)
	require.True(t, ok, "%T must be claimed", err)
	assert.Equal(t, code.ConfigurationInvalid, d.Code())
	assert.Equal(t, err.Error(), d.Description())
}

func TestConvert_ViperErrors(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(bytes.NewBufferString("a: [1, 2"))
	require.Error(t, err)
	d, ok := Convert(err)
	require.True(t, ok, "%T must be claimed", err)
	assert.Equal(t, code.ConfigurationInvalid, d.Code())

	v = viper.New()
	v.SetConfigName("definitely_missing_config")
	v.AddConfigPath(t.TempDir())
	err = v.ReadInConfig()
	require.Error(t, err)
	d, ok = Convert(err)
	require.True(t, ok, "%T must be claimed", err)
	assert.Equal(t, code.ConfigurationInvalid, d.Code())
}

func TestConvert_ValidationErrors(t *testing.T) {
	type cfg struct {
		Addr string `validate:"required"`
	}
	err := validator.New().Struct(cfg{})
	require.Error(t, err)

	d, ok := Convert(fmt.Errorf("config: %w", err))
	require.True(t, ok)
	assert.Equal(t, code.ConfigurationInvalid, d.Code())
}

func TestConvert_DecodeError(t *testing.T) {
	root := errors.New("expected int")
	err := &DecodeError{Source: "config_dev.yaml", Err: root}
	assert.Equal(t, "configerr: decode config_dev.yaml: expected int", err.Error())

	d, ok := Convert(err)
	require.True(t, ok)
	assert.Equal(t, code.ConfigurationInvalid, d.Code())
	assert.True(t, errors.Is(d, root))
}

func TestConvert_NotClaimed(t *testing.T) {
	_, ok := Convert(errors.New("plain"))
	assert.False(t, ok)
}
