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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Locale selects one of the two reason strings of a registry entry.
//
// It is a separate type (not just string) so that packages rendering reasons
// declare explicitly which language they want instead of passing raw header
// values around.
type Locale string

const (
	// English is the default locale. Boundary payloads always use it.
	English Locale = "en"

	// Chinese selects the localized reason.
	Chinese Locale = "zh"
)

var (
	// ErrLocaleInvalid is returned when a value cannot be parsed as a Locale.
	ErrLocaleInvalid = errors.New("reason: invalid locale")
)

// Ensure Locale implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be used directly in config structs and CLI flags.
var (
	_ encoding.TextMarshaler   = (*Locale)(nil)
	_ encoding.TextUnmarshaler = (*Locale)(nil)
)

// Text is the pair of reasons attached to one registry entry.
//
// Both fields are non-empty for every registered code; the zero value means
// "no reason known" and is what lookups of unregistered codes produce.
type Text struct {
	// EN is the English reason, e.g. "file not found".
	EN string `json:"en"`

	// CN is the Chinese reason, e.g. "文件未发现".
	CN string `json:"cn"`
}

// IsZero reports whether neither reason is set.
func (t Text) IsZero() bool {
	return t.EN == "" && t.CN == ""
}

// In returns the reason for the given locale. Unknown locales fall back to
// English.
func (t Text) In(l Locale) string {
	if l == Chinese {
		return t.CN
	}
	return t.EN
}

// Normalize brings a user-provided language tag closer to the canonical
// locale form.
//
// Only obvious, non-lossy transformations are applied:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '_' with '-';
//   - drops the region subtag ("en-us" -> "en", "zh-cn" -> "zh").
//
// It does NOT guarantee validity; callers should still call Parse.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}
	return s
}

// ParseLocale normalizes and validates a language tag.
//
// The empty string is accepted and yields English, so an absent header or
// flag behaves like the default.
func ParseLocale(s string) (Locale, error) {
	switch Normalize(s) {
	case "", "en":
		return English, nil
	case "zh", "cn":
		return Chinese, nil
	default:
		return English, ErrLocaleInvalid
	}
}

// String returns the canonical string representation of the locale.
func (l Locale) String() string {
	return string(l)
}

// MarshalText implements encoding.TextMarshaler.
func (l Locale) MarshalText() ([]byte, error) {
	if l != English && l != Chinese {
		return nil, ErrLocaleInvalid
	}
	return []byte(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (l *Locale) UnmarshalText(text []byte) error {
	parsed, err := ParseLocale(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
