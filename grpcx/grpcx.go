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

// Package grpcx carries coded errors across gRPC.
//
// Server interceptors lift handler errors into described errors and return
// a gRPC status whose code comes from the mapper. The status carries one
// google.rpc.ErrorInfo detail with the registry code, reason and
// description, so clients can rebuild the described error with
// ExtractDescribed.
package grpcx

import (
	"context"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/code"
	"dirpx.dev/coderr/httpx"
)

// Domain is the ErrorInfo domain of every status produced here.
const Domain = "coderr.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaCode       = "code"
	MetaErrType    = "err_type"
	MetaDesc       = "desc"
	MetaHTTPStatus = "http_status"
)

// Status converts d into a gRPC status. The message is the description,
// or the reason when there is none. A nil mapper yields codes.Internal;
// a nil d yields httpx.FallbackCode.
func Status(d *coderr.Described, m apis.Mapper) *status.Status {
	if d == nil {
		d = coderr.New(httpx.FallbackCode).WithDescription(httpx.FallbackDescription)
	}
	st := apis.Status{HTTP: 500, GRPC: codes.Internal}
	if m != nil {
		st = m.Status(d.Code())
	}

	view := adapter.ToView(d, st.HTTP)
	errType := view.Details[0].ErrType
	msg := d.Description()
	if msg == "" {
		msg = errType
	}

	base := status.New(st.GRPC, msg)
	info := &errdetails.ErrorInfo{
		Reason: reasonOf(d.Code()),
		Domain: Domain,
		Metadata: map[string]string{
			MetaCode:       strconv.FormatUint(uint64(d.Code()), 10),
			MetaErrType:    errType,
			MetaDesc:       d.Description(),
			MetaHTTPStatus: strconv.Itoa(st.HTTP),
		},
	}
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

func reasonOf(c code.Code) string {
	if name := c.Name(); name != "" {
		return name
	}
	return "Code" + strconv.FormatUint(uint64(c), 10)
}

// FromError converts any error into a gRPC status error. Errors that
// already carry a gRPC status are returned unchanged; everything else is
// lifted with l (nil means adapter.Default()). FromError returns nil for
// nil.
func FromError(err error, l *adapter.Lifter, m apis.Mapper) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(interface{ GRPCStatus() *status.Status }); ok {
		return err
	}
	if l == nil {
		l = adapter.Default()
	}
	return Status(l.Lift(err), m).Err()
}

// UnaryServerInterceptor converts handler errors with FromError.
func UnaryServerInterceptor(l *adapter.Lifter, m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, FromError(err, l, m)
		}
		return resp, nil
	}
}

// StreamServerInterceptor converts handler errors with FromError.
func StreamServerInterceptor(l *adapter.Lifter, m apis.Mapper) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return FromError(handler(srv, ss), l, m)
	}
}

// ExtractErrorInfo returns the ErrorInfo detail attached by Status.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// ExtractDescribed rebuilds the described error carried by a status
// produced by Status. The cause does not cross the wire.
func ExtractDescribed(err error) (*coderr.Described, bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok {
		return nil, false
	}
	n, perr := strconv.ParseUint(info.GetMetadata()[MetaCode], 10, 16)
	if perr != nil {
		return nil, false
	}
	return coderr.Describe(code.Code(n), info.GetMetadata()[MetaDesc]), true
}
