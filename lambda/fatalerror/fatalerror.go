// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fatalerror

import "errors"

// This package defines the error types reported to the Lambda runtime
// when the shim fails to start or an invocation fails.
// Separate package for namespacing

// ErrorType is reported to the runtime as the errorType of a failure
type ErrorType string

const (
	LibraryLoadError  ErrorType = "Runtime.NativeLibraryLoadError" // shared library could not be opened
	SymbolBindError   ErrorType = "Runtime.NativeSymbolBindError"  // exported entry point missing from the library
	InvalidEntrypoint ErrorType = "Runtime.InvalidEntrypoint"      // _HANDLER does not name a generated handler
	CredentialsError  ErrorType = "Runtime.CredentialsError"       // ambient credentials could not be resolved
	NativeCallError   ErrorType = "Function.NativeCallError"       // native entry point returned a non-zero exit code
	Unknown           ErrorType = "Unknown"
)

// Typed is implemented by errors that know their runtime error type.
type Typed interface {
	error
	ErrorType() ErrorType
}

// ErrorTypeOf returns the error type of the first Typed error in err's
// chain, or Unknown.
func ErrorTypeOf(err error) ErrorType {
	var typed Typed
	if errors.As(err, &typed) {
		return typed.ErrorType()
	}
	return Unknown
}

