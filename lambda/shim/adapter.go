// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package shim marshals Lambda invocations across the boundary to a
// native shared library.
package shim

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime/debug"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"lambda-native-shim/lambda/arena"
	"lambda-native-shim/lambda/credentials"
	"lambda-native-shim/lambda/interop"
	"lambda-native-shim/lambda/native"
)

// Adapter turns one invocation into one native call. Handle calls are
// serialized: the output buffers are shared and no call may start before
// the previous result has been read out of them.
type Adapter struct {
	mu sync.Mutex

	entrypoint  native.Entrypoint
	credentials credentials.Provider
	logLevel    string
	buffers     *arena.Arena
}

// NewAdapter returns an adapter calling entrypoint with buffers sized to
// the Lambda response limits.
func NewAdapter(entrypoint native.Entrypoint, provider credentials.Provider, logLevel string) *Adapter {
	return NewAdapterWithBuffers(entrypoint, provider, logLevel, arena.New(interop.MaxContentTypeSize, interop.MaxResponseSize))
}

// NewAdapterWithBuffers returns an adapter writing into buffers.
func NewAdapterWithBuffers(entrypoint native.Entrypoint, provider credentials.Provider, logLevel string, buffers *arena.Arena) *Adapter {
	return &Adapter{
		entrypoint:  entrypoint,
		credentials: provider,
		logLevel:    logLevel,
		buffers:     buffers,
	}
}

// Handle invokes the native function functionName with event and the
// invocation context. It returns the decoded JSON value when the native
// side reports a JSON content type and a string otherwise.
func (a *Adapter) Handle(ctx context.Context, functionName string, event interface{}, invocationContext *interop.InvocationContext) (result interface{}, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"function": functionName,
				"panic":    r,
				"stack":    string(debug.Stack()),
			}).Error("Native invocation panicked")
			panic(r)
		}
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"function": functionName,
				"stack":    string(debug.Stack()),
			}).Error("Native invocation failed")
		}
	}()

	request, err := interop.NewInvocationRequest(event, invocationContext)
	if err != nil {
		return nil, err
	}
	requestJSON, err := request.Marshal()
	if err != nil {
		return nil, err
	}

	a.buffers.Reset()
	var exitCode int32

	creds, err := a.credentials.Retrieve(ctx)
	if err != nil {
		return nil, err
	}

	log.WithField("function", functionName).Debugf("Sending event: %s", requestJSON)
	written := a.entrypoint.Call(&native.Input{
		FunctionName: functionName,
		LogLevel:     a.logLevel,
		RequestJSON:  requestJSON,
		AccessKey:    creds.AwsKey,
		SecretKey:    creds.AwsSecret,
		SessionToken: creds.AwsSession,
	},
		&exitCode,
		a.buffers.ContentTypeBuffer(),
		a.buffers.ContentTypeCap(),
		a.buffers.PayloadBuffer(),
		a.buffers.PayloadCap())

	log.WithFields(log.Fields{
		"function": functionName,
		"exitCode": exitCode,
		"written":  written,
	}).Debug("Native call returned")

	if exitCode != 0 {
		return nil, &NativeCallError{
			FunctionName: functionName,
			ExitCode:     exitCode,
			Message:      a.buffers.ContentType(),
		}
	}

	return decodeResponse(a.buffers.ContentType(), a.buffers.Payload()), nil
}

// decodeResponse never fails: a payload that claims to be JSON but does
// not parse is returned as a string.
func decodeResponse(contentType string, payload []byte) interface{} {
	if !strings.Contains(strings.ToLower(contentType), "json") {
		return string(payload)
	}

	if !json.Valid(payload) {
		log.WithField("contentType", contentType).Debug("Response is not valid JSON, returning it as text")
		return string(payload)
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return string(payload)
	}
	return value
}
