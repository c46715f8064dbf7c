// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package credentials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	sdkcredentials "github.com/aws/aws-sdk-go-v2/credentials"

	"lambda-native-shim/lambda/fatalerror"
)

var ErrCredentialsNotFound = errors.New("no credentials resolved from the ambient provider")

// Credentials are the temporary security credentials passed to the
// native library on each call.
type Credentials struct {
	AwsKey     string    `json:"AccessKeyId"`
	AwsSecret  string    `json:"SecretAccessKey"`
	AwsSession string    `json:"Token"`
	Expiration time.Time `json:"Expiration"`
}

// Provider resolves ambient credentials. Implementations must not hand
// out credentials cached from a previous call.
type Provider interface {
	Retrieve(ctx context.Context) (*Credentials, error)
}

// RetrieveError wraps a failure of the ambient provider.
type RetrieveError struct {
	Err error
}

func (e *RetrieveError) Error() string {
	return fmt.Sprintf("failed to retrieve credentials: %s", e.Err)
}

func (e *RetrieveError) Unwrap() error { return e.Err }

func (e *RetrieveError) ErrorType() fatalerror.ErrorType { return fatalerror.CredentialsError }

// SDKProvider adapts an aws-sdk-go-v2 credentials provider.
type SDKProvider struct {
	provider aws.CredentialsProvider
}

// NewSDKProvider wraps provider. A provider wrapped in aws.CredentialsCache
// is invalidated before every Retrieve.
func NewSDKProvider(provider aws.CredentialsProvider) *SDKProvider {
	return &SDKProvider{provider: provider}
}

// NewDefaultProvider resolves the SDK default credential chain: the
// environment variables the Lambda runtime sets, then shared config and
// container or instance roles.
func NewDefaultProvider(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*SDKProvider, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Credentials == nil {
		return nil, ErrCredentialsNotFound
	}
	return NewSDKProvider(cfg.Credentials), nil
}

// NewStaticProvider returns a provider that always resolves the given
// values.
func NewStaticProvider(awsKey, awsSecret, awsSession string) *SDKProvider {
	return NewSDKProvider(sdkcredentials.NewStaticCredentialsProvider(awsKey, awsSecret, awsSession))
}

func (p *SDKProvider) Retrieve(ctx context.Context) (*Credentials, error) {
	if cache, ok := p.provider.(*aws.CredentialsCache); ok {
		cache.Invalidate()
	}

	creds, err := p.provider.Retrieve(ctx)
	if err != nil {
		return nil, &RetrieveError{Err: err}
	}
	if !creds.HasKeys() {
		return nil, &RetrieveError{Err: ErrCredentialsNotFound}
	}

	return &Credentials{
		AwsKey:     creds.AccessKeyID,
		AwsSecret:  creds.SecretAccessKey,
		AwsSession: creds.SessionToken,
		Expiration: creds.Expires,
	}, nil
}
