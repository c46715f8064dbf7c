// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aws/aws-lambda-go/lambda/messages"

	"lambda-native-shim/lambda/interop"
	"lambda-native-shim/lambda/shim"
)

type invoker interface {
	Handle(ctx context.Context, functionName string, event interface{}, invocationContext *interop.InvocationContext) (interface{}, error)
}

type handlerFunc func(ctx context.Context, event json.RawMessage) (interface{}, error)

// newHandler binds functionName to the Lambda handler. Native failures are
// reported with the native message verbatim.
func newHandler(adapter invoker, functionName string) handlerFunc {
	return func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		invocationContext, _ := interop.ContextFromLambda(ctx)

		result, err := adapter.Handle(ctx, functionName, event, invocationContext)
		if err != nil {
			var callErr *shim.NativeCallError
			if errors.As(err, &callErr) {
				return nil, messages.InvokeResponse_Error{
					Message: callErr.Message,
					Type:    string(callErr.ErrorType()),
				}
			}
			return nil, err
		}
		return result, nil
	}
}
