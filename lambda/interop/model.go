// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package interop

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// MaxResponseSize is the largest synchronous response Lambda accepts,
// and the size of the payload buffer handed to the native library.
const MaxResponseSize = 6 * 1024 * 1024 // 6 MiB

// MaxContentTypeSize is the size of the content type buffer.
const MaxContentTypeSize = 1024

// InvocationRequest is the document passed to the native library as
// requestJSON.
type InvocationRequest struct {
	// Event is the base64 (std encoding) of the JSON encoded event.
	Event   string             `json:"event"`
	Context *InvocationContext `json:"context"`
}

// InvocationContext is the execution context of one invocation. Field
// names match what the native library decodes.
type InvocationContext struct {
	FunctionName       string `json:"functionName"`
	FunctionVersion    string `json:"functionVersion"`
	InvokedFunctionArn string `json:"invokedFunctionArn"`
	MemoryLimitInMb    string `json:"memoryLimitInMb"`
	AwsRequestID       string `json:"awsRequestId"`
	LogGroupName       string `json:"logGroupName"`
	LogStreamName      string `json:"logStreamName"`

	// Optional, omitted when the invocation carries none.
	Identity      *Identity      `json:"identity,omitempty"`
	ClientContext *ClientContext `json:"client_context,omitempty"`
}

// Identity is the Cognito identity of a mobile SDK caller.
type Identity struct {
	CognitoIdentityID     string `json:"cognitoIdentityId,omitempty"`
	CognitoIdentityPoolID string `json:"cognitoIdentityPoolId,omitempty"`
}

// ClientContext is the client application context of a mobile SDK caller.
type ClientContext struct {
	InstallationID string            `json:"installation_id"`
	AppTitle       string            `json:"app_title"`
	AppVersionName string            `json:"app_version_name"`
	AppVersionCode string            `json:"app_version_code"`
	Custom         map[string]string `json:"Custom"`
	Env            map[string]string `json:"env"`
}

// NewIdentity returns nil unless at least one Cognito field is set.
func NewIdentity(identityID, poolID string) *Identity {
	if identityID == "" && poolID == "" {
		return nil
	}
	return &Identity{CognitoIdentityID: identityID, CognitoIdentityPoolID: poolID}
}

// IsEmpty reports whether no field of the client context is set.
func (c *ClientContext) IsEmpty() bool {
	return c == nil || (c.InstallationID == "" &&
		c.AppTitle == "" &&
		c.AppVersionName == "" &&
		c.AppVersionCode == "" &&
		len(c.Custom) == 0 &&
		len(c.Env) == 0)
}

// NewInvocationRequest encodes event and wraps it with the invocation
// context.
func NewInvocationRequest(event interface{}, invocationContext *InvocationContext) (*InvocationRequest, error) {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return &InvocationRequest{
		Event:   base64.StdEncoding.EncodeToString(eventJSON),
		Context: invocationContext,
	}, nil
}

// Marshal returns the requestJSON bytes for the native call.
func (r *InvocationRequest) Marshal() ([]byte, error) {
	requestJSON, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invocation request: %w", err)
	}
	return requestJSON, nil
}

// DecodeEvent returns the JSON encoded event carried by the request.
func (r *InvocationRequest) DecodeEvent() (json.RawMessage, error) {
	eventJSON, err := base64.StdEncoding.DecodeString(r.Event)
	if err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}
	return json.RawMessage(eventJSON), nil
}

// ContextFromLambda builds the invocation context from the context passed
// to a Lambda handler. The second return value is false when ctx carries no
// Lambda invocation, in which case only function metadata is populated.
func ContextFromLambda(ctx context.Context) (*InvocationContext, bool) {
	invocationContext := &InvocationContext{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		MemoryLimitInMb: strconv.Itoa(lambdacontext.MemoryLimitInMB),
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
	}

	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return invocationContext, false
	}

	invocationContext.AwsRequestID = lc.AwsRequestID
	invocationContext.InvokedFunctionArn = lc.InvokedFunctionArn
	invocationContext.Identity = NewIdentity(lc.Identity.CognitoIdentityID, lc.Identity.CognitoIdentityPoolID)

	// aws-lambda-go does not expose app_version_name
	clientContext := &ClientContext{
		InstallationID: lc.ClientContext.Client.InstallationID,
		AppTitle:       lc.ClientContext.Client.AppTitle,
		AppVersionCode: lc.ClientContext.Client.AppVersionCode,
		Custom:         lc.ClientContext.Custom,
		Env:            lc.ClientContext.Env,
	}
	if !clientContext.IsEmpty() {
		invocationContext.ClientContext = clientContext
	}

	return invocationContext, true
}
