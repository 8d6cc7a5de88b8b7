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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/code"
	"dirpx.dev/coderr/mapper"
)

func newMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New()
	require.NoError(t, err)
	return m
}

func TestStatus_ErrorInfo(t *testing.T) {
	st := Status(coderr.New(code.DataBaseNotFound).WithDescription("user 7"), newMapper(t))

	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "user 7", st.Message())

	require.Len(t, st.Details(), 1)
	got, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)

	want := &errdetails.ErrorInfo{
		Reason: "DataBaseNotFound",
		Domain: Domain,
		Metadata: map[string]string{
			MetaCode:       "3003",
			MetaErrType:    "result not found",
			MetaDesc:       "user 7",
			MetaHTTPStatus: "404",
		},
	}
	assert.True(t, proto.Equal(want, got), "got %v", got)
}

func TestStatus_UnknownCodeAndNil(t *testing.T) {
	st := Status(coderr.New(code.Code(42)).WithDescription(""), nil)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "unknown error code 42", st.Message())

	info, ok := ExtractErrorInfo(st.Err())
	require.True(t, ok)
	assert.Equal(t, "Code42", info.GetReason())

	st = Status(nil, newMapper(t))
	d, ok := ExtractDescribed(st.Err())
	require.True(t, ok)
	assert.Equal(t, code.UnexpectedErrorOccured, d.Code())
	assert.Equal(t, "发生意外错误", d.Description())
}

func TestUnaryServerInterceptor(t *testing.T) {
	icpt := UnaryServerInterceptor(nil, newMapper(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/coderr.v1.Codes/Get"}

	resp, err := icpt(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = icpt(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return nil, sarama.ErrOutOfBrokers
	})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())

	d, ok := ExtractDescribed(err)
	require.True(t, ok)
	assert.Equal(t, code.ConnectionMessageQuqueError, d.Code())
	assert.Nil(t, d.Cause())
}

func TestUnaryServerInterceptor_KeepsStatusErrors(t *testing.T) {
	icpt := UnaryServerInterceptor(nil, newMapper(t))
	orig := status.Error(codes.Aborted, "retry")

	_, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		return nil, orig
	})
	assert.Equal(t, orig, err)
	_, ok := ExtractErrorInfo(err)
	assert.False(t, ok)
}

func TestStreamServerInterceptor(t *testing.T) {
	icpt := StreamServerInterceptor(nil, newMapper(t))

	err := icpt(nil, nil, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error {
		return errors.New("opaque")
	})
	d, ok := ExtractDescribed(err)
	require.True(t, ok)
	assert.Equal(t, code.UnKnowError, d.Code())
	assert.Equal(t, "opaque", d.Description())

	assert.NoError(t, icpt(nil, nil, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error { return nil }))
}

func TestExtract_NonStatus(t *testing.T) {
	_, ok := ExtractDescribed(nil)
	assert.False(t, ok)
	_, ok = ExtractDescribed(errors.New("plain"))
	assert.False(t, ok)
}
