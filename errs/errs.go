// Copyright 2011 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs provides the error type and the process-wide error log
// shared by the loaders, the key handler and the host integration.
package errs

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// ErrInvalidData reports a configuration source whose top-level structure
// is not what the loader expects.
var ErrInvalidData = errors.New("invalid data")

var (
	logErrors    = true
	panicOnError bool
	debugLog     atomic.Bool
	logger       atomic.Pointer[log.Logger]
)

func init() {
	logger.Store(log.New(os.Stderr, "mmaccel: ", log.LstdFlags))
}

type Error struct {
	inner   error
	message string
	stack   []byte
}

func LogErrors() bool {
	return logErrors
}

func SetLogErrors(v bool) {
	logErrors = v
}

func PanicOnError() bool {
	return panicOnError
}

func SetPanicOnError(v bool) {
	panicOnError = v
}

// SetDebug enables the Debugf trace.
func SetDebug(v bool) {
	debugLog.Store(v)
}

func Debug() bool {
	return debugLog.Load()
}

// SetOutput redirects the error log. A nil writer discards it.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logger.Store(log.New(w, "mmaccel: ", log.LstdFlags))
}

func Logger() *log.Logger {
	return logger.Load()
}

// Logf writes an error or warning line regardless of the debug switch.
func Logf(format string, args ...interface{}) {
	logger.Load().Printf(format, args...)
}

func Debugf(format string, args ...interface{}) {
	if debugLog.Load() {
		logger.Load().Printf("debug: "+format, args...)
	}
}

func (err *Error) Inner() error {
	return err.inner
}

func (err *Error) Unwrap() error {
	return err.inner
}

func (err *Error) Message() string {
	if err.message != "" {
		if err.inner != nil {
			return fmt.Sprintf("%s: %s", err.message, innerMessage(err.inner))
		}
		return err.message
	}

	if err.inner != nil {
		return innerMessage(err.inner)
	}

	return ""
}

func innerMessage(inner error) string {
	var e *Error
	if errors.As(inner, &e) {
		return e.Message()
	}
	return inner.Error()
}

func (err *Error) Stack() []byte {
	return err.stack
}

func (err *Error) Error() string {
	return err.Message()
}

func processErrorNoPanic(err error) error {
	if logErrors {
		if e, ok := err.(*Error); ok {
			Logf("%s\n\nStack:\n%s", e.Message(), e.stack)
		} else {
			Logf("%s\n\nStack:\n%s", err, debug.Stack())
		}
	}

	return err
}

func processError(err error) error {
	processErrorNoPanic(err)

	if panicOnError {
		panic(err)
	}

	return err
}

func newErr(message string) error {
	return &Error{message: message, stack: debug.Stack()}
}

func NewError(message string) error {
	return processError(newErr(message))
}

func NewErrorf(format string, args ...interface{}) error {
	return processError(newErr(fmt.Sprintf(format, args...)))
}

func NewErrorNoPanic(message string) error {
	return processErrorNoPanic(newErr(message))
}

func wrapErr(err error, message string) error {
	if e, ok := err.(*Error); ok && message == "" {
		return e
	}

	return &Error{inner: err, message: message, stack: debug.Stack()}
}

func WrapErrorNoPanic(err error) error {
	return processErrorNoPanic(wrapErr(err, ""))
}

func WrapError(err error) error {
	return processError(wrapErr(err, ""))
}

// Wrap annotates err with message. It returns nil for a nil err and does
// not log; loaders hand the result to their caller.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return wrapErr(err, message)
}

func toErrorNoPanic(x interface{}) error {
	switch x := x.(type) {
	case *Error:
		return x

	case error:
		return WrapErrorNoPanic(x)

	case string:
		return NewErrorNoPanic(x)
	}

	return NewErrorNoPanic(fmt.Sprintf("Error: %v", x))
}

// Recovered converts a recovered panic value into a logged error. It never
// panics, whatever SetPanicOnError says.
func Recovered(x interface{}) error {
	if x == nil {
		return nil
	}
	return toErrorNoPanic(x)
}
