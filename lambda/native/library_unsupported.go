// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build !darwin && !freebsd && !linux

package native

import (
	"fmt"
	"runtime"
)

// Library is unavailable on this platform.
type Library struct{}

// Open always fails on platforms without dlopen.
func Open(path string) (*Library, error) {
	return nil, &LoadError{Path: path, Err: fmt.Errorf("dynamic loading is not supported on %s", runtime.GOOS)}
}

func (l *Library) Call(in *Input, exitCode *int32, contentType []byte, contentTypeCap int, payload []byte, payloadCap int) int {
	panic("native library calls are not supported on " + runtime.GOOS)
}
