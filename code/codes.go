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

// I/O error codes (1001-2000)
//
// These codes describe failures of operating-system primitives: files,
// sockets, pipes. Each distinguished OS failure kind has its own code so
// that raw I/O errors can be lifted without losing their classification.
const (
	// FileNotFound indicates that a file or directory does not exist.
	FileNotFound Code = 1001

	// PermissionDenied indicates the OS refused the operation for lack of
	// privileges.
	PermissionDenied Code = 1002

	// ConnectionRefused indicates the remote end refused the connection.
	ConnectionRefused Code = 1003

	// ConnectionReset indicates the remote end reset the connection.
	ConnectionReset Code = 1004

	// ConnectionAborted indicates the connection was aborted locally or by
	// the remote end.
	ConnectionAborted Code = 1005

	// NotConnected indicates a network operation on an unconnected socket.
	NotConnected Code = 1006

	// AddrInUse indicates the socket address is already bound.
	AddrInUse Code = 1007

	// AddrNotAvailable indicates the requested address is not local or
	// does not exist.
	AddrNotAvailable Code = 1008

	// BrokenPipe indicates a write on a pipe or socket whose reader is gone.
	BrokenPipe Code = 1009

	// AlreadyExists indicates an entity (typically a file) already exists.
	AlreadyExists Code = 1010

	// WouldBlock indicates a non-blocking operation that needs to block to
	// complete.
	WouldBlock Code = 1011

	// InvalidInput indicates an invalid parameter was passed to an I/O
	// primitive.
	InvalidInput Code = 1012

	// InvalidData indicates data read from a stream was not valid for the
	// operation.
	InvalidData Code = 1013

	// TimedOut indicates an I/O deadline expired.
	TimedOut Code = 1014

	// WriteZero indicates a write completed without writing all bytes.
	WriteZero Code = 1015

	// Interrupted indicates the operation was interrupted by a signal.
	Interrupted Code = 1016

	// Other is the generic I/O failure. It is used only when the underlying
	// error is I/O-shaped but carries no distinguished kind; unclassified
	// OS kinds map to UnKnowError instead.
	Other Code = 1017

	// UnexpectedEOF indicates a stream ended before the expected amount of
	// data was read.
	UnexpectedEOF Code = 1018
)

// Messaging error codes (2001-3000)
//
// Queue and pub/sub failures, plus malformed message payloads. Structured
// data that fails to decode is classified as InvalidMessageData.
const (
	InvalidMessageQuque         Code = 2001
	ConnectionMessageQuqueError Code = 2002
	SubscribeMessageQuqueFail   Code = 2003
	FetchMessageFail            Code = 2004
	FetchMessageTimeout         Code = 2005
	// InvalidMessageData is the code for every structured-data decode
	// failure (JSON bodies, message payloads).
	InvalidMessageData Code = 2006
	InvalidCommand     Code = 2007
	InvalidUseRule     Code = 2008
)

// Persistence error codes (3001-4000)
const (
	// DataBaseInvalidQuery indicates the query could not be constructed.
	DataBaseInvalidQuery Code = 3001

	// DataBaseError indicates the database returned an error. The
	// description carries the database-supplied message.
	DataBaseError Code = 3002

	// DataBaseNotFound indicates the query matched no result.
	DataBaseNotFound Code = 3003

	// InvalidConnection indicates the connection to the store is unusable.
	InvalidConnection Code = 3101
)

// Device error codes (4001-5000)
const (
	ConnectionDeviceError   Code = 4001
	ConnectionDeviceTimeout Code = 4002
	DeviceAddrInvalid       Code = 4003
	DeviceNotFound          Code = 4004
	InvalidDeviceType       Code = 4005
	SendDataTimeout         Code = 4006
	SendDataFail            Code = 4007
	InvalidSendData         Code = 4008
	ReceiveDataTimeout      Code = 4009
	ReceiveDataFail         Code = 4010
	ReceiveUnexpectedEOF    Code = 4011
	DeviceAlreadyExist      Code = 4012
	DeviceNotUsed           Code = 4013
	DeviceReportError       Code = 4014
)

// System error codes (5001-6000)
const (
	// UnexpectedErrorOccured is the universal fallback rendered at the
	// boundary when a failure carries no detail at all.
	UnexpectedErrorOccured Code = 5001

	// ServerRegisterFail indicates service registration failed.
	ServerRegisterFail Code = 5002

	// ConfigurationInvalid is the code for every configuration decode or
	// validation failure.
	ConfigurationInvalid Code = 5003

	// UnKnowError is the fallback for foreign errors that no conversion rule
	// recognizes.
	UnKnowError Code = 5100
)

// Authorization error codes (6001-7000)
const (
	// RoleTypeError indicates the requested role type does not exist.
	RoleTypeError Code = 6001
)

// Translation error codes (7001-8000)
const (
	TransInitError     Code = 7001
	TransRegisterError Code = 7002
	CheckError         Code = 7003
	TransInnerError    Code = 7004
)
