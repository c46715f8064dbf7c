// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package nativetest provides an in-memory native.Entrypoint for tests.
package nativetest

import (
	"sync"

	"lambda-native-shim/lambda/native"
)

// Response is what the fake entry point writes for one call.
type Response struct {
	ExitCode    int32
	ContentType string
	Payload     []byte
}

// Fake behaves like a native library built for the shim: it copies at most
// cap bytes into each buffer, does not write a terminator and does not
// touch bytes past what it writes.
type Fake struct {
	mu sync.Mutex

	// Responses are consumed in order; the last one is repeated.
	Responses []Response
	// Respond, when set, takes precedence over Responses.
	Respond func(in *native.Input) Response

	calls []native.Input
}

// New returns a fake that answers every call with the given responses.
func New(responses ...Response) *Fake {
	return &Fake{Responses: responses}
}

func (f *Fake) Call(in *native.Input, exitCode *int32, contentType []byte, contentTypeCap int, payload []byte, payloadCap int) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	recorded := *in
	recorded.RequestJSON = append([]byte(nil), in.RequestJSON...)
	f.calls = append(f.calls, recorded)

	resp := f.next(in)
	copy(contentType[:contentTypeCap], resp.ContentType)
	written := copy(payload[:payloadCap], resp.Payload)
	*exitCode = resp.ExitCode
	return written
}

func (f *Fake) next(in *native.Input) Response {
	if f.Respond != nil {
		return f.Respond(in)
	}
	if len(f.Responses) == 0 {
		return Response{ContentType: "application/json", Payload: []byte("null")}
	}
	idx := len(f.calls) - 1
	if idx >= len(f.Responses) {
		idx = len(f.Responses) - 1
	}
	return f.Responses[idx]
}

// Calls returns the inputs of every call made so far.
func (f *Fake) Calls() []native.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]native.Input(nil), f.calls...)
}

// LastCall returns the input of the most recent call.
func (f *Fake) LastCall() *native.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	last := f.calls[len(f.calls)-1]
	return &last
}
