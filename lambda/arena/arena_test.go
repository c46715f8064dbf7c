// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapsReserveTerminator(t *testing.T) {
	a := New(1024, 6*1024*1024)
	assert.Equal(t, 1023, a.ContentTypeCap())
	assert.Equal(t, 6*1024*1024-1, a.PayloadCap())
	assert.Len(t, a.ContentTypeBuffer(), 1024)
	assert.Len(t, a.PayloadBuffer(), 6*1024*1024)
}

func TestReadStopsAtTerminator(t *testing.T) {
	a := New(16, 16)
	copy(a.ContentTypeBuffer(), "text/plain")
	copy(a.PayloadBuffer(), "hello")

	assert.Equal(t, "text/plain", a.ContentType())
	assert.Equal(t, []byte("hello"), a.Payload())
}

func TestFullBufferKeepsTerminator(t *testing.T) {
	a := New(4, 4)
	copy(a.PayloadBuffer()[:a.PayloadCap()], "abcdef")
	assert.Equal(t, []byte("abc"), a.Payload())
}

func TestResetClearsPreviousWrite(t *testing.T) {
	a := New(32, 32)
	copy(a.ContentTypeBuffer(), "application/json")
	copy(a.PayloadBuffer(), `{"previous":"invocation"}`)

	a.Reset()
	copy(a.ContentTypeBuffer(), "text")
	copy(a.PayloadBuffer(), "hi")

	assert.Equal(t, "text", a.ContentType())
	assert.Equal(t, []byte("hi"), a.Payload())
	for _, b := range a.PayloadBuffer()[2:] {
		require.Zero(t, b)
	}
}

func TestPayloadIsCopied(t *testing.T) {
	a := New(8, 8)
	copy(a.PayloadBuffer(), "abc")
	payload := a.Payload()
	a.Reset()
	assert.Equal(t, []byte("abc"), payload)
}

func TestNewRejectsEmptyBuffers(t *testing.T) {
	assert.Panics(t, func() { New(0, 10) })
	assert.Panics(t, func() { New(10, 0) })
}
