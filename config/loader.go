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
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"dirpx.dev/coderr/adapter/configerr"
)

// LoadOptions controls Load.
type LoadOptions struct {
	ConfigPath    string // directory holding config_<env>.yaml, default "./configs"
	Env           string // overrides APP_ENV; default "dev"
	EnvFile       string // overrides ENV_FILE; default ".env"
	EnvPrefix     string // environment variable prefix, e.g. "CODERR"
	AllowNoConfig bool   // tolerate a missing config file
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration from defaults, the YAML file and the
// environment.
//
// Failures keep their original type in the chain: a missing or malformed
// file surfaces viper's errors, a decode failure is a
// *configerr.DecodeError and a validation failure is
// validator.ValidationErrors.
func Load(opts LoadOptions) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	if opts.ConfigPath == "" {
		opts.ConfigPath = "./configs"
	}
	env := opts.Env
	if env == "" {
		env = GetEnv()
	}

	v := viper.New()
	v.SetConfigName("config_" + env)
	v.SetConfigType("yaml")
	v.AddConfigPath(opts.ConfigPath)
	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	cfg := Default()
	cfg.App.Env = env
	setDefaults(v, cfg)

	source := "env"
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || !opts.AllowNoConfig {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	} else {
		source = v.ConfigFileUsed()
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, &configerr.DecodeError{Source: source, Err: err}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML reads a TOML configuration file on top of the defaults. Unknown
// keys are rejected.
func LoadTOML(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, &configerr.DecodeError{
			Source: path,
			Err:    fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")),
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

// GetEnv returns APP_ENV, defaulting to "dev".
func GetEnv() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "dev"
}

func loadEnvFile(path string) error {
	if path == "" {
		path = os.Getenv("ENV_FILE")
	}
	var err error
	if path != "" {
		err = godotenv.Load(path)
	} else {
		path = ".env"
		err = godotenv.Load()
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// setDefaults registers every key with viper so that AutomaticEnv can
// override keys that are absent from the file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("app.env", cfg.App.Env)
	v.SetDefault("app.name", cfg.App.Name)
	v.SetDefault("app.locale", string(cfg.App.Locale))

	v.SetDefault("http.addr", cfg.HTTP.Addr)
	v.SetDefault("http.body_limit", cfg.HTTP.BodyLimit)
	v.SetDefault("http.unified_decode_errors", cfg.HTTP.UnifiedDecodeErrors)
	v.SetDefault("http.read_timeout", cfg.HTTP.ReadTimeout)
	v.SetDefault("http.write_timeout", cfg.HTTP.WriteTimeout)
	v.SetDefault("http.trusted_proxies", cfg.HTTP.TrustedProxies)

	v.SetDefault("grpc.enabled", cfg.GRPC.Enabled)
	v.SetDefault("grpc.addr", cfg.GRPC.Addr)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.report_caller", cfg.Log.ReportCaller)
	v.SetDefault("log.file.enabled", cfg.Log.File.Enabled)
	v.SetDefault("log.file.path", cfg.Log.File.Path)
	v.SetDefault("log.file.max_size_mb", cfg.Log.File.MaxSizeMB)
	v.SetDefault("log.file.max_backups", cfg.Log.File.MaxBackups)
	v.SetDefault("log.file.max_age_days", cfg.Log.File.MaxAgeDays)
	v.SetDefault("log.file.compress", cfg.Log.File.Compress)
}
