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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"

	"dirpx.dev/coderr/reason"
)

// Code is a numeric error code.
//
// It is defined as a separate type (not just uint16) so that other packages
// can explicitly declare that they expect a registry code, and so that raw
// transport statuses are not accidentally mixed with error codes.
//
// Any uint16 value is a legal Code; only registered values have reasons.
type Code uint16

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as a code.
	ErrCodeInvalid = errors.New("code: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config structs and read from CLI arguments.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse accepts either the decimal form ("1001") or the symbolic identifier
// ("FileNotFound", case-insensitive) of a code.
//
// Decimal values do not need to be registered; identifiers obviously do.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrCodeInvalid
	}
	if s[0] >= '0' && s[0] <= '9' {
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return 0, ErrCodeInvalid
		}
		return Code(n), nil
	}
	if c, ok := byName[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, ErrCodeInvalid
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Uint16 returns the numeric value of the code.
func (c Code) Uint16() uint16 {
	return uint16(c)
}

// Registered reports whether c is present in the registry.
func (c Code) Registered() bool {
	_, ok := byCode[c]
	return ok
}

// Name returns the symbolic identifier of a registered code, or "" when the
// code is not registered.
func (c Code) Name() string {
	if e, ok := Lookup(c); ok {
		return e.Name
	}
	return ""
}

// ReasonEN returns the English reason of c.
func (c Code) ReasonEN() (string, bool) {
	t, ok := Reason(c)
	return t.EN, ok
}

// ReasonCN returns the Chinese reason of c.
func (c Code) ReasonCN() (string, bool) {
	t, ok := Reason(c)
	return t.CN, ok
}

// String returns the symbolic identifier for registered codes and
// "Code(<n>)" otherwise.
func (c Code) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return "Code(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// MarshalText implements encoding.TextMarshaler.
//
// The decimal form is used because it is the stable part of a code;
// identifiers are for humans.
func (c Code) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts everything
// Parse accepts.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Entry is one row of the registry.
type Entry struct {
	// Code is the numeric code.
	Code Code

	// Name is the symbolic identifier, identical to the Go constant name.
	Name string

	// Reason holds the English and Chinese reasons.
	Reason reason.Text
}

// Band returns the band the entry belongs to.
func (e Entry) Band() Band {
	return BandOf(e.Code)
}

// Reason resolves the reasons of c. It is a pure, total function over all
// 16-bit inputs and reports false for any value not in the registry.
func Reason(c Code) (reason.Text, bool) {
	e, ok := Lookup(c)
	if !ok {
		return reason.Text{}, false
	}
	return e.Reason, true
}

// Lookup returns the registry row for c.
func Lookup(c Code) (Entry, bool) {
	i, ok := byCode[c]
	if !ok {
		return Entry{}, false
	}
	return table[i], true
}

// Entries returns a copy of the registry in ascending code order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// InBand returns a copy of all registry rows that belong to b.
func InBand(b Band) []Entry {
	var out []Entry
	for _, e := range table {
		if b.Contains(e.Code) {
			out = append(out, e)
		}
	}
	return out
}
