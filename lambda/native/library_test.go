// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package native

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lambda-native-shim/lambda/fatalerror"
)

func TestOpenMissingLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.so")

	lib, err := Open(path)
	require.Error(t, err)
	assert.Nil(t, lib)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, fatalerror.LibraryLoadError, fatalerror.ErrorTypeOf(err))
}

func TestBindErrorMessage(t *testing.T) {
	err := &BindError{Path: "./bin/lib.so", Symbol: SymbolName, Err: errors.New("undefined symbol")}
	assert.Equal(t, "failed to bind Lambda in native library ./bin/lib.so: undefined symbol", err.Error())
	assert.Equal(t, fatalerror.SymbolBindError, fatalerror.ErrorTypeOf(err))
}
