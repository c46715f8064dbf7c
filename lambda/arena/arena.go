// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package arena holds the preallocated output buffers a native call
// writes into. They are allocated once and reused for every invocation.
package arena

import "bytes"

// Arena owns the content type and payload buffers of a native call.
//
// On success the content type buffer carries the payload's content type;
// on failure it carries the error message. Reset must be called before
// every native call so a short write cannot expose bytes from a previous
// invocation.
type Arena struct {
	contentType []byte
	payload     []byte
}

// New allocates an arena with buffers of the given sizes in bytes.
// Both sizes must be at least 1 to leave room for the terminator.
func New(contentTypeSize, payloadSize int) *Arena {
	if contentTypeSize < 1 || payloadSize < 1 {
		panic("arena buffers must hold at least the terminating byte")
	}
	return &Arena{
		contentType: make([]byte, contentTypeSize),
		payload:     make([]byte, payloadSize),
	}
}

// Reset zeroes both buffers.
func (a *Arena) Reset() {
	clear(a.contentType)
	clear(a.payload)
}

// ContentTypeBuffer returns the raw buffer handed to the native side.
func (a *Arena) ContentTypeBuffer() []byte { return a.contentType }

// PayloadBuffer returns the raw buffer handed to the native side.
func (a *Arena) PayloadBuffer() []byte { return a.payload }

// ContentTypeCap is the number of bytes the native side may write,
// keeping the last byte as terminator.
func (a *Arena) ContentTypeCap() int { return len(a.contentType) - 1 }

// PayloadCap is the number of bytes the native side may write,
// keeping the last byte as terminator.
func (a *Arena) PayloadCap() int { return len(a.payload) - 1 }

// ContentType returns the content type buffer up to the first NUL byte.
func (a *Arena) ContentType() string {
	return string(terminated(a.contentType))
}

// Payload returns a copy of the payload buffer up to the first NUL byte.
func (a *Arena) Payload() []byte {
	return bytes.Clone(terminated(a.payload))
}

func terminated(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
