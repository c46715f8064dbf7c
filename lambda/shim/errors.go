// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shim

import (
	"fmt"

	"lambda-native-shim/lambda/fatalerror"
)

// NativeCallError is returned when the native entry point reports a
// non-zero exit code. Message is the content type buffer verbatim, which
// the native side fills with its error text on failure.
type NativeCallError struct {
	FunctionName string
	ExitCode     int32
	Message      string
}

func (e *NativeCallError) Error() string {
	return e.Message
}

func (e *NativeCallError) ErrorType() fatalerror.ErrorType {
	return fatalerror.NativeCallError
}

// UnknownHandlerError is returned when _HANDLER does not name an entry of
// the handler table.
type UnknownHandlerError struct {
	Handler string
}

func (e *UnknownHandlerError) Error() string {
	return fmt.Sprintf("no native function registered for handler %q", e.Handler)
}

func (e *UnknownHandlerError) ErrorType() fatalerror.ErrorType {
	return fatalerror.InvalidEntrypoint
}
