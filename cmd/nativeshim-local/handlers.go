// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"lambda-native-shim/lambda/fatalerror"
	"lambda-native-shim/lambda/interop"
	"lambda-native-shim/lambda/logging"
)

const (
	clientContextHeader = "X-Amz-Client-Context"
	functionErrorHeader = "X-Amz-Function-Error"
	requestIDHeader     = "X-Amzn-RequestId"

	errorTypeInvalidRequest = "InvalidRequestContentException"
	errorTypeTooLarge       = "RequestTooLargeException"
)

type invoker interface {
	Handle(ctx context.Context, functionName string, event interface{}, invocationContext *interop.InvocationContext) (interface{}, error)
}

// functionConfig is the function metadata reported in every invocation
// context.
type functionConfig struct {
	Name          string
	Version       string
	MemorySize    string
	LogGroupName  string
	LogStreamName string
	Region        string
}

// errorResponse matches the body Lambda returns for a failed invocation.
type errorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

type invokeServer struct {
	adapter  invoker
	function functionConfig
	platform *logging.PlatformLogger

	initOnce     sync.Once
	initDuration time.Duration
	started      time.Time
}

func newInvokeServer(adapter invoker, function functionConfig, platformOutput io.Writer) *invokeServer {
	return &invokeServer{
		adapter:  adapter,
		function: function,
		platform: logging.NewPlatformLogger(platformOutput),
		started:  time.Now(),
	}
}

func (s *invokeServer) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Post("/2015-03-31/functions/{function}/invocations", s.InvokeHandler)
	r.Get("/test/ping", PingHandler)
	return r
}

// PingHandler reports liveness.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

// InvokeHandler calls the native function named in the URL with the
// request body as event.
func (s *invokeServer) InvokeHandler(w http.ResponseWriter, r *http.Request) {
	log.Debugf("invoke: -> %s %s %v", r.Method, r.URL, r.Header)
	functionName := chi.URLParam(r, "function")

	bodyBytes, err := ioutil.ReadAll(io.LimitReader(r.Body, interop.MaxResponseSize+1))
	if err != nil {
		log.Errorf("Failed to read invoke body: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(bodyBytes) > interop.MaxResponseSize {
		renderError(w, r, http.StatusRequestEntityTooLarge, errorTypeTooLarge,
			fmt.Sprintf("Request must be smaller than %d bytes for the InvokeFunction operation", interop.MaxResponseSize))
		return
	}

	var event json.RawMessage
	if len(bodyBytes) == 0 {
		event = json.RawMessage("{}")
	} else if !json.Valid(bodyBytes) {
		renderError(w, r, http.StatusBadRequest, errorTypeInvalidRequest, "Could not parse request body into json")
		return
	} else {
		event = json.RawMessage(bodyBytes)
	}

	clientContext, err := interop.ParseClientContext(r.Header.Get(clientContextHeader))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, errorTypeInvalidRequest, err.Error())
		return
	}

	var initDuration time.Duration
	s.initOnce.Do(func() {
		initDuration = time.Since(s.started)
	})

	invocationContext := s.invocationContext(uuid.New().String(), clientContext)
	w.Header().Set(requestIDHeader, invocationContext.AwsRequestID)

	s.platform.LogStart(invocationContext.AwsRequestID, s.function.Version)
	invokeStart := time.Now()
	result, err := s.adapter.Handle(r.Context(), functionName, event, invocationContext)
	s.platform.LogEnd(invocationContext.AwsRequestID, s.function.MemorySize, initDuration, time.Since(invokeStart))

	if err != nil {
		w.Header().Set(functionErrorHeader, "Unhandled")
		renderError(w, r, http.StatusOK, string(fatalerror.ErrorTypeOf(err)), err.Error())
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

func (s *invokeServer) invocationContext(requestID string, clientContext *interop.ClientContext) *interop.InvocationContext {
	return &interop.InvocationContext{
		FunctionName:       s.function.Name,
		FunctionVersion:    s.function.Version,
		InvokedFunctionArn: fmt.Sprintf("arn:aws:lambda:%s:012345678912:function:%s", s.function.Region, s.function.Name),
		MemoryLimitInMb:    s.function.MemorySize,
		AwsRequestID:       requestID,
		LogGroupName:       s.function.LogGroupName,
		LogStreamName:      s.function.LogStreamName,
		ClientContext:      clientContext,
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, errorType string, message string) {
	render.Status(r, status)
	render.JSON(w, r, &errorResponse{
		ErrorType:    errorType,
		ErrorMessage: message,
	})
}
