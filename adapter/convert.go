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

package adapter

import (
	"strconv"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/apis"
)

// UnknownReason returns the placeholder rendered as err_type when a code
// reaches a boundary without a registered reason.
func UnknownReason(c uint16) string {
	return "unknown error code " + strconv.FormatUint(uint64(c), 10)
}

// ToDescriptor converts a described error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or CLI
// output. It carries the registry code, both reasons and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(d *coderr.Described, st apis.Status) apis.ErrorDescriptor {
	if d == nil {
		return apis.ErrorDescriptor{}
	}
	c := d.Code()
	en, _ := c.ReasonEN()
	cn, _ := c.ReasonCN()
	return apis.ErrorDescriptor{
		Code:        uint16(c),
		Name:        c.Name(),
		ReasonEN:    en,
		ReasonCN:    cn,
		Description: d.Description(),
		HTTPStatus:  st.HTTP,
		GRPCCode:    int(st.GRPC),
	}
}

// ToView converts a described error and the transport status it is
// answered with into the inner object of a boundary payload. It performs
// no redaction: the description is exposed as-is.
//
// err_type is the English reason of the code; unregistered codes render
// UnknownReason instead. ToView never fails.
func ToView(d *coderr.Described, status int) apis.ErrorView {
	if d == nil {
		return apis.ErrorView{Status: uint16(status), Details: []apis.Detail{}}
	}
	c := d.Code()
	errType, ok := c.ReasonEN()
	if !ok {
		errType = UnknownReason(uint16(c))
	}
	return apis.ErrorView{
		Status: uint16(status),
		Details: []apis.Detail{{
			ErrType: errType,
			Desc:    d.Description(),
		}},
	}
}
