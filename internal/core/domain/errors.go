// Copyright 2025.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure class independently of its message.
type ErrorCode string

const (
	CodeSourceNotFound     ErrorCode = "SOURCE_NOT_FOUND"
	CodeSourceUnreadable   ErrorCode = "SOURCE_UNREADABLE"
	CodeUnsupportedSource  ErrorCode = "UNSUPPORTED_SOURCE"
	CodeColumnNotFound     ErrorCode = "COLUMN_NOT_FOUND"
	CodeWriteFailure       ErrorCode = "WRITE_FAILURE"
	CodeEmptyRequiredInput ErrorCode = "EMPTY_REQUIRED_INPUT"
	CodeOutputDirInvalid   ErrorCode = "OUTPUT_DIR_INVALID"
	CodeInvalidOverride    ErrorCode = "INVALID_OVERRIDE"
	CodeConfigLoad         ErrorCode = "CONFIG_LOAD"
)

// Sentinels for errors.Is; any *Error with the same code matches.
var (
	ErrSourceNotFound     = &Error{Code: CodeSourceNotFound}
	ErrSourceUnreadable   = &Error{Code: CodeSourceUnreadable}
	ErrUnsupportedSource  = &Error{Code: CodeUnsupportedSource}
	ErrColumnNotFound     = &Error{Code: CodeColumnNotFound}
	ErrWriteFailure       = &Error{Code: CodeWriteFailure}
	ErrEmptyRequiredInput = &Error{Code: CodeEmptyRequiredInput}
	ErrOutputDirInvalid   = &Error{Code: CodeOutputDirInvalid}
	ErrInvalidOverride    = &Error{Code: CodeInvalidOverride}
	ErrConfigLoad         = &Error{Code: CodeConfigLoad}
)

// Error is a coded failure, optionally wrapping the underlying cause.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// NewError builds a coded error.
func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err == nil:
		return string(e.Code)
	case e.Err == nil:
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	default:
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
