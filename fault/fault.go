// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised          = ExistsError("already initialised")
	ErrBlockHeightMismatch         = InvalidError("block height mismatch")
	ErrBlockNotFound               = NotFoundError("block not found")
	ErrBlockVersionMismatch        = InvalidError("block version mismatch")
	ErrCheckpointMismatch          = InvalidError("checkpoint mismatch")
	ErrCorruptIndex                = RecordError("corrupt index")
	ErrCorruptRecord               = RecordError("corrupt record")
	ErrDuplicateTransaction        = ExistsError("duplicate transaction")
	ErrEmptyStore                  = NotFoundError("store is empty")
	ErrIndexOutOfRange             = LengthError("index out of range")
	ErrInvalidCapacity             = InvalidError("invalid capacity")
	ErrInvalidChain                = InvalidError("invalid chain")
	ErrInvalidCharacter            = InvalidError("invalid character")
	ErrInvalidCount                = InvalidError("invalid count")
	ErrInvalidCursor               = InvalidError("invalid cursor")
	ErrInvalidInputType            = InvalidError("invalid input type")
	ErrInvalidLoggerChannel        = InvalidError("invalid logger channel")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrKeyImageAlreadySpent        = ExistsError("key image already spent")
	ErrNotInitialised              = NotFoundError("not initialised")
	ErrPreviousBlockDigestMismatch = InvalidError("previous block digest mismatch")
	ErrReadOnly                    = ProcessError("database is read only")
	ErrRecordTooLarge              = LengthError("record too large")
	ErrSignatureCountMismatch      = InvalidError("signature count mismatch")
	ErrTransactionCountMismatch    = InvalidError("transaction count mismatch")
	ErrTransactionIDMismatch       = InvalidError("transaction id mismatch")
	ErrTransactionInUse            = ProcessError("transaction already in use")
	ErrTransactionNotFound         = NotFoundError("transaction not found")
	ErrTransactionNotStarted       = ProcessError("transaction not started")
	ErrWrongDigestLength           = LengthError("wrong digest length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IOError - a failed file operation, keeps the operating system error
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError - wrap an operating system error, nil stays nil
func NewIOError(op string, path string, err error) error {
	if nil == err {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return "io: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap - expose the operating system error to errors.Is/As
func (e *IOError) Unwrap() error { return e.Err }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
func IsErrIO(e error) bool       { var x *IOError; return errors.As(e, &x) }
