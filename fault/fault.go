// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCreateFailed         = ProcessError("cannot create store file")
	ErrEmptyFile            = InvalidError("store file is empty")
	ErrEmptyImport          = InvalidError("imported file is empty")
	ErrEmptyStore           = InvalidError("store contains no objects")
	ErrFileNotFound         = NotFoundError("store file not found")
	ErrFormatMismatch       = InvalidError("store format tag mismatch")
	ErrIndexOutOfRange      = InvalidError("index out of range")
	ErrInvalidConfiguration = InvalidError("invalid configuration file type")
	ErrInvalidFloat         = InvalidError("invalid float value")
	ErrInvalidGuid          = InvalidError("invalid guid")
	ErrInvalidInteger       = InvalidError("invalid integer value")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTypeName      = InvalidError("invalid property type name")
	ErrLengthTooLarge       = LengthError("length field exceeds limit")
	ErrNegativeLength       = LengthError("negative length field")
	ErrNilObject            = InvalidError("nil object")
	ErrNilProperty          = InvalidError("nil property")
	ErrNilStore             = InvalidError("nil store")
	ErrNilValue             = InvalidError("nil property value")
	ErrNotFoundObject       = NotFoundError("object not found")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrTruncatedData        = LengthError("truncated data")
	ErrUnknownTypeTag       = InvalidError("unknown property type tag")
	ErrWriteFailed          = ProcessError("write to store file failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// Cause - the underlying fault of an error that may carry context
func Cause(e error) error {
	if nil == e {
		return nil
	}
	return errors.Cause(e)
}

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := Cause(e).(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := Cause(e).(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := Cause(e).(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := Cause(e).(ProcessError); return ok }
