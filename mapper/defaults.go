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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/coderr/code"
)

// defaultHTTP defines the library's built-in HTTP mappings for codes with an
// obvious transport meaning. Codes not listed here resolve through their
// band.
var defaultHTTP = map[code.Code]int{
	// I/O.
	code.FileNotFound:      http.StatusNotFound,
	code.PermissionDenied:  http.StatusForbidden,
	code.ConnectionRefused: http.StatusServiceUnavailable, // Remote side is unreachable.
	code.ConnectionReset:   http.StatusServiceUnavailable,
	code.ConnectionAborted: http.StatusServiceUnavailable,
	code.NotConnected:      http.StatusServiceUnavailable,
	code.AlreadyExists:     http.StatusConflict,
	code.InvalidInput:      http.StatusBadRequest,
	code.InvalidData:       http.StatusBadRequest,
	code.TimedOut:          http.StatusGatewayTimeout,

	// Messaging.
	code.ConnectionMessageQuqueError: http.StatusServiceUnavailable,
	code.FetchMessageTimeout:         http.StatusGatewayTimeout,
	code.InvalidMessageData:          http.StatusBadRequest, // Undecodable request body.
	code.InvalidCommand:              http.StatusBadRequest,

	// Persistence.
	code.DataBaseInvalidQuery: http.StatusBadRequest,
	code.DataBaseNotFound:     http.StatusNotFound,
	code.InvalidConnection:    http.StatusServiceUnavailable,

	// Device.
	code.ConnectionDeviceTimeout: http.StatusGatewayTimeout,
	code.DeviceAddrInvalid:       http.StatusBadRequest,
	code.DeviceNotFound:          http.StatusNotFound,
	code.InvalidDeviceType:       http.StatusBadRequest,
	code.SendDataTimeout:         http.StatusGatewayTimeout,
	code.InvalidSendData:         http.StatusBadRequest,
	code.ReceiveDataTimeout:      http.StatusGatewayTimeout,
	code.DeviceAlreadyExist:      http.StatusConflict,
	code.DeviceNotUsed:           http.StatusServiceUnavailable,

	// System.
	code.UnexpectedErrorOccured: http.StatusInternalServerError,
	code.UnKnowError:            http.StatusInternalServerError,

	// Authorization.
	code.RoleTypeError: http.StatusForbidden,
}

// defaultGRPC mirrors defaultHTTP with canonical gRPC status codes.
var defaultGRPC = map[code.Code]codes.Code{
	// I/O.
	code.FileNotFound:      codes.NotFound,
	code.PermissionDenied:  codes.PermissionDenied,
	code.ConnectionRefused: codes.Unavailable,
	code.ConnectionReset:   codes.Unavailable,
	code.ConnectionAborted: codes.Unavailable,
	code.NotConnected:      codes.Unavailable,
	code.AlreadyExists:     codes.AlreadyExists,
	code.InvalidInput:      codes.InvalidArgument,
	code.InvalidData:       codes.InvalidArgument,
	code.TimedOut:          codes.DeadlineExceeded,
	code.Interrupted:       codes.Aborted, // gRPC only; HTTP has no better fit than the band.

	// Messaging.
	code.ConnectionMessageQuqueError: codes.Unavailable,
	code.FetchMessageTimeout:         codes.DeadlineExceeded,
	code.InvalidMessageData:          codes.InvalidArgument,
	code.InvalidCommand:              codes.InvalidArgument,

	// Persistence.
	code.DataBaseInvalidQuery: codes.InvalidArgument,
	code.DataBaseNotFound:     codes.NotFound,
	code.InvalidConnection:    codes.Unavailable,

	// Device.
	code.ConnectionDeviceTimeout: codes.DeadlineExceeded,
	code.DeviceAddrInvalid:       codes.InvalidArgument,
	code.DeviceNotFound:          codes.NotFound,
	code.InvalidDeviceType:       codes.InvalidArgument,
	code.SendDataTimeout:         codes.DeadlineExceeded,
	code.InvalidSendData:         codes.InvalidArgument,
	code.ReceiveDataTimeout:      codes.DeadlineExceeded,
	code.DeviceAlreadyExist:      codes.AlreadyExists,
	code.DeviceNotUsed:           codes.Unavailable,

	// System.
	code.ConfigurationInvalid: codes.FailedPrecondition,

	// Authorization.
	code.RoleTypeError: codes.PermissionDenied,
}

// bandHTTP is consulted when a code has neither an override nor a default.
var bandHTTP = map[code.Band]int{
	code.BandIO:            http.StatusInternalServerError,
	code.BandMessaging:     http.StatusBadGateway,
	code.BandPersistence:   http.StatusInternalServerError,
	code.BandDevice:        http.StatusBadGateway, // Failures of downstream hardware.
	code.BandSystem:        http.StatusInternalServerError,
	code.BandAuthorization: http.StatusForbidden,
	code.BandTranslation:   http.StatusInternalServerError,
}

var bandGRPC = map[code.Band]codes.Code{
	code.BandIO:            codes.Internal,
	code.BandMessaging:     codes.Unavailable,
	code.BandPersistence:   codes.Internal,
	code.BandDevice:        codes.Unavailable,
	code.BandSystem:        codes.Internal,
	code.BandAuthorization: codes.PermissionDenied,
	code.BandTranslation:   codes.Internal,
}
