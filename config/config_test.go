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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/adapter/configerr"
	"dirpx.dev/coderr/code"
	"dirpx.dev/coderr/httpx"
	"dirpx.dev/coderr/reason"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func baseOpts(dir string) LoadOptions {
	return LoadOptions{
		ConfigPath: dir,
		Env:        "test",
		EnvFile:    filepath.Join(dir, "missing.env"),
		EnvPrefix:  "CODERR",
	}
}

func TestLoad_YAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config_test.yaml", `
app:
  name: registry
  locale: zh-CN
http:
  addr: ":8181"
  read_timeout: 3s
  trusted_proxies: "10.0.0.1,10.0.0.2"
log:
  level: debug
  format: text
`)

	cfg, err := Load(baseOpts(dir))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "registry", cfg.App.Name)
	assert.Equal(t, reason.Chinese, cfg.App.Locale)
	assert.Equal(t, ":8181", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.HTTP.TrustedProxies)
	assert.Equal(t, httpx.DefaultBodyLimit, cfg.HTTP.BodyLimit)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config_test.yaml", "http:\n  addr: \":8181\"\n")
	t.Setenv("CODERR_HTTP_ADDR", ":9999")
	t.Setenv("CODERR_GRPC_ENABLED", "true")

	cfg, err := Load(baseOpts(dir))
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.True(t, cfg.GRPC.Enabled)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, "test.env", "CODERR_APP_NAME=from-dotenv\n")
	t.Cleanup(func() { _ = os.Unsetenv("CODERR_APP_NAME") })

	opts := baseOpts(dir)
	opts.EnvFile = envFile
	opts.AllowNoConfig = true

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(baseOpts(dir))
	require.Error(t, err)
	assert.Equal(t, code.ConfigurationInvalid, adapter.Default().Lift(err).Code())

	opts := baseOpts(dir)
	opts.AllowNoConfig = true
	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config_test.yaml", "http: [unclosed\n")

	_, err := Load(baseOpts(dir))
	require.Error(t, err)
	assert.Equal(t, code.ConfigurationInvalid, adapter.Default().Lift(err).Code())
}

func TestLoad_DecodeError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config_test.yaml", "http:\n  read_timeout: soon\n")

	_, err := Load(baseOpts(dir))
	var de *configerr.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Source, "config_test.yaml")
	assert.Equal(t, code.ConfigurationInvalid, adapter.Default().Lift(err).Code())
}

func TestLoad_ValidationError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config_test.yaml", "grpc:\n  enabled: true\n  addr: \"\"\nlog:\n  format: xml\n")

	_, err := Load(baseOpts(dir))
	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve, 2)
	assert.Equal(t, code.ConfigurationInvalid, adapter.Default().Lift(err).Code())
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "legacy.toml", `
[app]
name = "legacy"
locale = "cn"

[http]
addr = ":7000"
unified_decode_errors = true
write_timeout = "20s"
`)
	cfg, err := LoadTOML(p)
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.App.Name)
	assert.Equal(t, reason.Chinese, cfg.App.Locale)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.Equal(t, 20*time.Second, cfg.HTTP.WriteTimeout)
	assert.True(t, cfg.HTTP.UnifiedDecodeErrors)
}

func TestLoadTOML_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTOML(writeFile(t, dir, "bad.toml", "[app\nname = 1"))
	require.Error(t, err)
	assert.Equal(t, code.ConfigurationInvalid, adapter.Default().Lift(err).Code())

	_, err = LoadTOML(writeFile(t, dir, "unknown.toml", "[app]\nname = \"x\"\ncolour = \"red\"\n"))
	var de *configerr.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Error(), "app.colour")
}

func TestHTTP_JSONConfig(t *testing.T) {
	h := Default().HTTP
	jc := h.JSONConfig()
	assert.Equal(t, httpx.DefaultBodyLimit, jc.Limit)

	status, _ := jc.Handle(assert.AnError)
	assert.Equal(t, 400, status)

	h.UnifiedDecodeErrors = true
	h.BodyLimit = 10
	jc = h.JSONConfig()
	assert.Equal(t, int64(10), jc.Limit)
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}
