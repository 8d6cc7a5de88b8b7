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

// Package config loads the service configuration.
//
// Sources, in increasing priority:
//
//  1. built-in defaults (Default);
//  2. config_<env>.yaml in the config directory (viper);
//  3. environment variables with the configured prefix, "." replaced by "_"
//     (for example CODERR_HTTP_ADDR), optionally seeded from a .env file
//     (godotenv).
//
// A legacy TOML file can be loaded instead with LoadTOML. Every loader
// validates the result with go-playground/validator.
package config

import (
	"time"

	"dirpx.dev/coderr/httpx"
	"dirpx.dev/coderr/reason"
)

// Config is the root configuration of the service.
type Config struct {
	App  App  `mapstructure:"app" toml:"app"`
	HTTP HTTP `mapstructure:"http" toml:"http"`
	GRPC GRPC `mapstructure:"grpc" toml:"grpc"`
	Log  Log  `mapstructure:"log" toml:"log"`
}

// App identifies the running service.
type App struct {
	Env  string `mapstructure:"env" toml:"env"`
	Name string `mapstructure:"name" toml:"name" validate:"required"`

	// Locale selects the reason language used by the CLI and by logs.
	Locale reason.Locale `mapstructure:"locale" toml:"locale"`
}

// HTTP configures the HTTP listener.
type HTTP struct {
	Addr string `mapstructure:"addr" toml:"addr" validate:"required"`

	// BodyLimit caps JSON request bodies, in bytes. 0 disables the cap.
	BodyLimit int64 `mapstructure:"body_limit" toml:"body_limit" validate:"gte=0"`

	// UnifiedDecodeErrors renders body decode failures with the regular
	// error payload instead of the legacy one.
	UnifiedDecodeErrors bool `mapstructure:"unified_decode_errors" toml:"unified_decode_errors"`

	ReadTimeout  time.Duration `mapstructure:"read_timeout" toml:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" toml:"write_timeout" validate:"gte=0"`

	TrustedProxies []string `mapstructure:"trusted_proxies" toml:"trusted_proxies"`
}

// JSONConfig returns the request body settings derived from h.
func (h HTTP) JSONConfig() httpx.JSONConfig {
	cfg := httpx.DefaultJSONConfig()
	if h.UnifiedDecodeErrors {
		cfg = httpx.UnifiedJSONConfig()
	}
	cfg.Limit = h.BodyLimit
	return cfg
}

// GRPC configures the optional gRPC listener.
type GRPC struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Addr    string `mapstructure:"addr" toml:"addr" validate:"required_if=Enabled true"`
}

// Log configures logging.
type Log struct {
	Level        string  `mapstructure:"level" toml:"level"`
	Format       string  `mapstructure:"format" toml:"format" validate:"omitempty,oneof=json text"`
	ReportCaller bool    `mapstructure:"report_caller" toml:"report_caller"`
	File         LogFile `mapstructure:"file" toml:"file"`
}

// LogFile configures the rotating log file written next to stdout.
type LogFile struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled"`
	Path       string `mapstructure:"path" toml:"path" validate:"required_if=Enabled true"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		App: App{
			Env:    "dev",
			Name:   "coderr",
			Locale: reason.English,
		},
		HTTP: HTTP{
			Addr:         ":8080",
			BodyLimit:    httpx.DefaultBodyLimit,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		GRPC: GRPC{
			Addr: ":9090",
		},
		Log: Log{
			Level:  "info",
			Format: "json",
			File: LogFile{
				Path:       "./logs/coderr.log",
				MaxSizeMB:  100,
				MaxBackups: 7,
				MaxAgeDays: 7,
			},
		},
	}
}
