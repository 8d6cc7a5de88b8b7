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

// Package configerr converts configuration loading and decoding errors into
// code.ConfigurationInvalid.
//
// Recognized sources are BurntSushi/toml parse errors, viper file and parse
// errors, go-playground/validator results and DecodeError, the wrapper the
// config loader puts around struct decoding failures.
package configerr

import (
	"errors"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/code"
)

// DecodeError reports that configuration data was read but could not be
// decoded into the target structure.
type DecodeError struct {
	// Source names what was being decoded, e.g. a file path or "env".
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	if e == nil || e.Err == nil {
		return "configerr: decode failed"
	}
	if e.Source == "" {
		return "configerr: decode: " + e.Err.Error()
	}
	return "configerr: decode " + e.Source + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Convert claims configuration errors. The description is the error's own
// message and err is retained as the cause.
func Convert(err error) (*coderr.Described, bool) {
	if err == nil || !isConfig(err) {
		return nil, false
	}
	return coderr.Describe(code.ConfigurationInvalid, err.Error(), coderr.WithCause(err)), true
}

func isConfig(err error) bool {
	var (
		decodeErr *DecodeError

		tomlErr    toml.ParseError
		tomlPtrErr *toml.ParseError

		parseErr    viper.ConfigParseError
		notFoundErr viper.ConfigFileNotFoundError

		validationErrs validator.ValidationErrors
		invalidValErr  *validator.InvalidValidationError
	)
	return errors.As(err, &decodeErr) ||
		errors.As(err, &tomlErr) ||
		errors.As(err, &tomlPtrErr) ||
		errors.As(err, &parseErr) ||
		errors.As(err, &notFoundErr) ||
		errors.As(err, &validationErrs) ||
		errors.As(err, &invalidValErr)
}
