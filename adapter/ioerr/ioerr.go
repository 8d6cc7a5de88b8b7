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

// Package ioerr converts raw filesystem and network errors into the I/O band
// of the code registry.
//
// Classification is done in two steps: KindOf reduces an error to one of a
// fixed set of kinds, and Kind.Code maps the kind to a registry code. The
// kinds follow the distinguished I/O failure classes most platforms report;
// anything the platform reports but this package does not enumerate becomes
// KindUncategorized and ends in code.UnKnowError.
package ioerr

import (
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
	"syscall"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/code"
)

// ErrInvalidData marks a stream that was read successfully but whose
// content is malformed (for example, not valid UTF-8). Wrap it with %w to
// have Convert classify the error as code.InvalidData.
var ErrInvalidData = errors.New("ioerr: invalid data")

// Kind is the class of an I/O failure.
type Kind uint8

const (
	// KindNone means the error is not an I/O error.
	KindNone Kind = iota
	KindNotFound
	KindPermissionDenied
	KindConnectionRefused
	KindConnectionReset
	KindConnectionAborted
	KindNotConnected
	KindAddrInUse
	KindAddrNotAvailable
	KindBrokenPipe
	KindAlreadyExists
	KindWouldBlock
	KindInvalidInput
	KindInvalidData
	KindTimedOut
	KindWriteZero
	KindInterrupted
	// KindOther is an I/O-shaped error (path, link, syscall or network
	// operation error) whose cause is not an OS error number.
	KindOther
	KindUnexpectedEOF
	// KindUncategorized is an OS-level failure with no dedicated kind.
	KindUncategorized
)

var kinds = [...]struct {
	name string
	code code.Code
}{
	KindNone:              {"none", 0},
	KindNotFound:          {"not_found", code.FileNotFound},
	KindPermissionDenied:  {"permission_denied", code.PermissionDenied},
	KindConnectionRefused: {"connection_refused", code.ConnectionRefused},
	KindConnectionReset:   {"connection_reset", code.ConnectionReset},
	KindConnectionAborted: {"connection_aborted", code.ConnectionAborted},
	KindNotConnected:      {"not_connected", code.NotConnected},
	KindAddrInUse:         {"addr_in_use", code.AddrInUse},
	KindAddrNotAvailable:  {"addr_not_available", code.AddrNotAvailable},
	KindBrokenPipe:        {"broken_pipe", code.BrokenPipe},
	KindAlreadyExists:     {"already_exists", code.AlreadyExists},
	KindWouldBlock:        {"would_block", code.WouldBlock},
	KindInvalidInput:      {"invalid_input", code.InvalidInput},
	KindInvalidData:       {"invalid_data", code.InvalidData},
	KindTimedOut:          {"timed_out", code.TimedOut},
	KindWriteZero:         {"write_zero", code.WriteZero},
	KindInterrupted:       {"interrupted", code.Interrupted},
	KindOther:             {"other", code.Other},
	KindUnexpectedEOF:     {"unexpected_eof", code.UnexpectedEOF},
	KindUncategorized:     {"uncategorized", code.UnKnowError},
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if int(k) >= len(kinds) {
		return "invalid"
	}
	return kinds[k].name
}

// Code returns the registry code of k. KindNone has no code and reports 0.
func (k Kind) Code() code.Code {
	if int(k) >= len(kinds) {
		return code.UnKnowError
	}
	return kinds[k].code
}

var errnoKinds = map[syscall.Errno]Kind{
	syscall.ENOENT:        KindNotFound,
	syscall.EACCES:        KindPermissionDenied,
	syscall.EPERM:         KindPermissionDenied,
	syscall.ECONNREFUSED:  KindConnectionRefused,
	syscall.ECONNRESET:    KindConnectionReset,
	syscall.ECONNABORTED:  KindConnectionAborted,
	syscall.ENOTCONN:      KindNotConnected,
	syscall.EADDRINUSE:    KindAddrInUse,
	syscall.EADDRNOTAVAIL: KindAddrNotAvailable,
	syscall.EPIPE:         KindBrokenPipe,
	syscall.EEXIST:        KindAlreadyExists,
	syscall.EAGAIN:        KindWouldBlock,
	syscall.EINVAL:        KindInvalidInput,
	syscall.EBADMSG:       KindInvalidData,
	syscall.EILSEQ:        KindInvalidData,
	syscall.ETIMEDOUT:     KindTimedOut,
	syscall.EINTR:         KindInterrupted,
}

var sentinelKinds = []struct {
	err  error
	kind Kind
}{
	{fs.ErrNotExist, KindNotFound},
	{fs.ErrPermission, KindPermissionDenied},
	{fs.ErrExist, KindAlreadyExists},
	{fs.ErrInvalid, KindInvalidInput},
	{fs.ErrClosed, KindUncategorized},
	{os.ErrDeadlineExceeded, KindTimedOut},
	{io.ErrUnexpectedEOF, KindUnexpectedEOF},
	// A bare EOF that reaches a boundary means a stream ended early.
	{io.EOF, KindUnexpectedEOF},
	{io.ErrShortWrite, KindWriteZero},
	{io.ErrShortBuffer, KindInvalidInput},
	{io.ErrClosedPipe, KindBrokenPipe},
	{net.ErrClosed, KindNotConnected},
	{ErrInvalidData, KindInvalidData},
}

// KindOf classifies err. It reports KindNone for nil and for errors that
// carry no I/O failure.
//
// Order of precedence:
//  1. an enumerated OS error number anywhere in the chain;
//  2. a well-known sentinel (fs.ErrNotExist, io.ErrUnexpectedEOF, ...),
//     which also catches platform error numbers that are not enumerated;
//  3. any other OS error number (KindUncategorized);
//  4. a timeout reported by an I/O-shaped error;
//  5. any other I/O-shaped error (KindOther).
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var errno syscall.Errno
	hasErrno := errors.As(err, &errno) && errno != 0
	if hasErrno {
		if k, ok := errnoKinds[errno]; ok {
			return k
		}
	}

	// Errno.Is maps platform numbers (e.g. ERROR_FILE_NOT_FOUND on
	// Windows) onto the fs sentinels.
	for _, s := range sentinelKinds {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}
	if hasErrno {
		return KindUncategorized
	}

	if !ioShaped(err) {
		return KindNone
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimedOut
	}
	return KindOther
}

// ioShaped reports whether err was produced by an os or net operation.
func ioShaped(err error) bool {
	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
		opErr      *net.OpError
		dnsErr     *net.DNSError
		addrErr    *net.AddrError
	)
	return errors.As(err, &pathErr) ||
		errors.As(err, &linkErr) ||
		errors.As(err, &syscallErr) ||
		errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.As(err, &addrErr)
}

// Convert claims I/O errors. The description is the error's own message
// and err is retained as the cause.
func Convert(err error) (*coderr.Described, bool) {
	k := KindOf(err)
	if k == KindNone {
		return nil, false
	}
	return coderr.Describe(k.Code(), err.Error(), coderr.WithCause(err)), true
}
