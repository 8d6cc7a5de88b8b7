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

package coderr

import (
	"fmt"
	"strconv"

	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/code"
)

// Error is a coded error: a single registry code and nothing else.
//
// It is a small comparable value, so it can be used as a sentinel and
// compared with == or errors.Is. Unregistered codes are legal; their reasons
// resolve to absent.
type Error struct {
	code code.Code
}

var (
	_ error           = Error{}
	_ apis.CodedError = Error{}
	_ fmt.Stringer    = Error{}
)

// New wraps c. The code is not checked against the registry.
func New(c code.Code) Error {
	return Error{code: c}
}

// Code returns the numeric code.
func (e Error) Code() code.Code { return e.code }

// ErrorCode implements apis.CodedError.
func (e Error) ErrorCode() code.Code { return e.code }

// ReasonEN returns the English reason of the code, if registered.
func (e Error) ReasonEN() (string, bool) { return e.code.ReasonEN() }

// ReasonCN returns the Chinese reason of the code, if registered.
func (e Error) ReasonCN() (string, bool) { return e.code.ReasonCN() }

// Error implements the built-in error interface.
//
// The format is:
//
//	error code<N> reason:"<english>" desc:"<chinese>"
//
// Absent reasons are rendered as <none>:
//
//	error code9999 reason:<none> desc:<none>
func (e Error) Error() string {
	en, _ := e.code.ReasonEN()
	cn, _ := e.code.ReasonCN()
	return "error code" + strconv.FormatUint(uint64(e.code), 10) +
		" reason:" + quoteOrNone(en) +
		" desc:" + quoteOrNone(cn)
}

// String is an alias of Error so that Error can be logged with %v and %s.
func (e Error) String() string { return e.Error() }

// WithDescription returns a described error with the same code and the
// given description. e is not modified.
func (e Error) WithDescription(desc string) *Described {
	return &Described{err: e, desc: desc}
}

// WithDescriptionf is WithDescription with fmt.Sprintf formatting.
func (e Error) WithDescriptionf(format string, args ...any) *Described {
	return e.WithDescription(fmt.Sprintf(format, args...))
}

// WithError re-wraps a lower-level coded error under e's code. The
// description is the full display form of other, so its context survives
// the reclassification.
func (e Error) WithError(other Error) *Described {
	return e.WithDescription(other.Error())
}

func quoteOrNone(s string) string {
	if s == "" {
		return "<none>"
	}
	return strconv.Quote(s)
}
