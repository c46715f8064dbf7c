// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"lambda-native-shim/lambda/fatalerror"
	"lambda-native-shim/lambda/native"
	"lambda-native-shim/lambda/shim"
)

func TestStartupFailureCarriesErrorType(t *testing.T) {
	tests := []struct {
		err      error
		expected fatalerror.ErrorType
	}{
		{&native.LoadError{Path: "./bin/libnative.so", Err: errors.New("no such file")}, fatalerror.LibraryLoadError},
		{&native.BindError{Path: "./bin/libnative.so", Symbol: native.SymbolName, Err: errors.New("undefined symbol")}, fatalerror.SymbolBindError},
		{&shim.UnknownHandlerError{Handler: "index.main_other"}, fatalerror.InvalidEntrypoint},
		{errors.New("no config"), fatalerror.Unknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			entry := startupFailure(tt.err)
			assert.Equal(t, tt.expected, entry.Data["errorType"])
			assert.Equal(t, tt.err, entry.Data["error"])
		})
	}
}
