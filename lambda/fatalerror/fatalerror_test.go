// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fatalerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type typedError struct{ t ErrorType }

func (e *typedError) Error() string        { return string(e.t) }
func (e *typedError) ErrorType() ErrorType { return e.t }

func TestErrorTypeOf(t *testing.T) {
	type test struct {
		input    error
		expected ErrorType
	}

	var tests = []test{
		{nil, Unknown},
		{errors.New("plain"), Unknown},
		{&typedError{NativeCallError}, NativeCallError},
		{fmt.Errorf("wrapped: %w", &typedError{LibraryLoadError}), LibraryLoadError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorTypeOf(tt.input))
		})
	}
}
