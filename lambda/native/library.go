// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || freebsd || linux

package native

import (
	"github.com/ebitengine/purego"
	log "github.com/sirupsen/logrus"
)

type lambdaFunc func(functionName, logLevel, requestJSON, accessKey, secretKey, sessionToken string,
	exitCode *int32, contentType *byte, contentTypeCap int, payload *byte, payloadCap int) int

// Library is an Entrypoint backed by a dynamically loaded shared library.
type Library struct {
	handle uintptr
	lambda lambdaFunc
}

// Open loads the shared library at path and binds SymbolName. The library
// stays loaded for the life of the process.
func Open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	sym, err := purego.Dlsym(handle, SymbolName)
	if err != nil {
		return nil, &BindError{Path: path, Symbol: SymbolName, Err: err}
	}

	lib := &Library{handle: handle}
	purego.RegisterFunc(&lib.lambda, sym)

	log.WithField("path", path).Debug("Bound native entry point")
	return lib, nil
}

func (l *Library) Call(in *Input, exitCode *int32, contentType []byte, contentTypeCap int, payload []byte, payloadCap int) int {
	return l.lambda(in.FunctionName,
		in.LogLevel,
		string(in.RequestJSON),
		in.AccessKey,
		in.SecretKey,
		in.SessionToken,
		exitCode,
		&contentType[0],
		contentTypeCap,
		&payload[0],
		payloadCap)
}
