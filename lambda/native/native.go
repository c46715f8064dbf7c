// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package native binds the single entry point exported by a native
// shared library built for the shim.
//
// The exported function has the C signature
//
//	GoInt Lambda(char* functionName, char* logLevel, char* requestJSON,
//	             char* accessKeyID, char* secretKey, char* token,
//	             int* exitCode,
//	             char* contentTypeBuffer, GoInt contentTypeCap,
//	             char* payloadBuffer, GoInt payloadCap)
//
// On success (exitCode == 0) the content type buffer holds the response
// content type. On failure it holds the error message instead, and the
// payload buffer is undefined. The library copies at most cap bytes into
// each buffer and never writes a terminator, so callers must zero the
// buffers and pass a capacity one less than the buffer length.
package native

import (
	"fmt"

	"lambda-native-shim/lambda/fatalerror"
)

// SymbolName is the exported entry point looked up in the library.
const SymbolName = "Lambda"

// Input holds the string arguments of one native call.
type Input struct {
	FunctionName string
	LogLevel     string
	RequestJSON  []byte
	AccessKey    string
	SecretKey    string
	SessionToken string
}

// Entrypoint is the bound native function. Call blocks until the native
// side returns and reports the number of payload bytes written.
type Entrypoint interface {
	Call(in *Input, exitCode *int32, contentType []byte, contentTypeCap int, payload []byte, payloadCap int) int
}

// LoadError is returned when the shared library cannot be opened.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load native library %s: %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) ErrorType() fatalerror.ErrorType { return fatalerror.LibraryLoadError }

// BindError is returned when the library does not export SymbolName.
type BindError struct {
	Path   string
	Symbol string
	Err    error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s in native library %s: %s", e.Symbol, e.Path, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

func (e *BindError) ErrorType() fatalerror.ErrorType { return fatalerror.SymbolBindError }
