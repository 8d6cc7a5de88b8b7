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

// Package dberr converts persistence-layer errors into the persistence band
// of the code registry.
//
// Recognized sources:
//
//   - gorm.io/gorm sentinels;
//   - github.com/go-sql-driver/mysql server errors and connection sentinels;
//   - database/sql and database/sql/driver sentinels;
//   - go.mongodb.org/mongo-driver/v2 sentinels, command and write errors;
//   - github.com/redis/go-redis/v9 replies and sentinels.
//
// Server errors keep only the message supplied by the database: internal
// connection details and driver prefixes are never put into a description.
package dberr

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/code"
)

// notFound lists the "query matched nothing" sentinels.
var notFound = []error{
	gorm.ErrRecordNotFound,
	sql.ErrNoRows,
	mongo.ErrNoDocuments,
	redis.Nil,
}

// invalidQuery lists errors raised while a query is being built, before it
// reaches the server.
var invalidQuery = []error{
	gorm.ErrInvalidField,
	gorm.ErrMissingWhereClause,
	gorm.ErrPrimaryKeyRequired,
	gorm.ErrModelValueRequired,
	gorm.ErrModelAccessibleFieldsRequired,
	gorm.ErrSubQueryRequired,
	gorm.ErrInvalidValue,
	gorm.ErrInvalidValueOfLength,
	gorm.ErrUnsupportedRelation,
	gorm.ErrPreloadNotAllowed,
	gorm.ErrEmptySlice,
	gorm.ErrInvalidData,
	mongo.ErrNilDocument,
	mongo.ErrEmptySlice,
}

// invalidConnection lists errors that mean the connection (or pool) is
// unusable.
var invalidConnection = []error{
	driver.ErrBadConn,
	sql.ErrConnDone,
	mysql.ErrInvalidConn,
	gorm.ErrInvalidDB,
	mongo.ErrClientDisconnected,
	redis.ErrClosed,
}

// serverSide lists sentinels that are reported as plain database errors.
var serverSide = []error{
	sql.ErrTxDone,
	gorm.ErrInvalidTransaction,
	gorm.ErrNotImplemented,
	gorm.ErrUnsupportedDriver,
	gorm.ErrDryRunModeUnsupported,
	gorm.ErrDuplicatedKey,
	gorm.ErrForeignKeyViolated,
}

// Convert claims persistence errors. err is retained as the cause.
func Convert(err error) (*coderr.Described, bool) {
	if err == nil {
		return nil, false
	}

	switch {
	case isAny(err, notFound):
		return describe(code.DataBaseNotFound, err.Error(), err), true
	case isAny(err, invalidQuery):
		return describe(code.DataBaseInvalidQuery, err.Error(), err), true
	case isAny(err, invalidConnection):
		return describe(code.InvalidConnection, err.Error(), err), true
	}

	if msg, ok := serverMessage(err); ok {
		return describe(code.DataBaseError, msg, err), true
	}
	if isAny(err, serverSide) {
		return describe(code.DataBaseError, err.Error(), err), true
	}
	return nil, false
}

// FromDB is the total variant of Convert for repository boundaries:
// anything not recognized becomes code.UnKnowError. It returns nil for nil.
func FromDB(err error) *coderr.Described {
	if err == nil {
		return nil
	}
	if d, ok := Convert(err); ok {
		return d
	}
	return describe(code.UnKnowError, err.Error(), err)
}

// IsNotFound reports whether err is one of the "no rows" sentinels.
func IsNotFound(err error) bool {
	return err != nil && isAny(err, notFound)
}

// serverMessage extracts the message supplied by the database server.
func serverMessage(err error) (string, bool) {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Message, true
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return orError(cmdErr.Message, err), true
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		switch {
		case len(writeErr.WriteErrors) > 0:
			return orError(writeErr.WriteErrors[0].Message, err), true
		case writeErr.WriteConcernError != nil:
			return orError(writeErr.WriteConcernError.Message, err), true
		}
		return err.Error(), true
	}
	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) {
		switch {
		case len(bulkErr.WriteErrors) > 0:
			return orError(bulkErr.WriteErrors[0].Message, err), true
		case bulkErr.WriteConcernError != nil:
			return orError(bulkErr.WriteConcernError.Message, err), true
		}
		return err.Error(), true
	}

	var redisErr redis.Error
	if errors.As(err, &redisErr) {
		return redisErr.Error(), true
	}
	return "", false
}

func orError(msg string, err error) string {
	if msg == "" {
		return err.Error()
	}
	return msg
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

func describe(c code.Code, desc string, cause error) *coderr.Described {
	return coderr.Describe(c, desc, coderr.WithCause(cause))
}
