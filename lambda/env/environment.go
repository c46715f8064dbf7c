// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"path/filepath"
)

const (
	HandlerKey         = "_HANDLER"
	TaskRootKey        = "LAMBDA_TASK_ROOT"
	FunctionNameKey    = "AWS_LAMBDA_FUNCTION_NAME"
	FunctionVersionKey = "AWS_LAMBDA_FUNCTION_VERSION"
	MemorySizeKey      = "AWS_LAMBDA_FUNCTION_MEMORY_SIZE"
	LogGroupNameKey    = "AWS_LAMBDA_LOG_GROUP_NAME"
	LogStreamNameKey   = "AWS_LAMBDA_LOG_STREAM_NAME"
	RegionKey          = "AWS_REGION"
)

// Defaults used when running outside Lambda.
const (
	DefaultFunctionName    = "test_function"
	DefaultFunctionVersion = "$LATEST"
	DefaultMemorySize      = "3008"
	DefaultLogGroupName    = "/aws/lambda/Functions"
	DefaultLogStreamName   = "$LATEST"
	DefaultRegion          = "us-east-1"
)

// libraryDir is the directory, relative to the task root, the native
// library is deployed into.
const libraryDir = "bin"

func GetenvWithDefault(key string, defaultValue string) string {
	envValue := os.Getenv(key)

	if envValue == "" {
		return defaultValue
	}

	return envValue
}

// TaskRoot returns LAMBDA_TASK_ROOT, or the working directory when unset.
func TaskRoot() string {
	if root := os.Getenv(TaskRootKey); root != "" {
		return root
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// LibraryPath returns the deployed location of the named native library.
// Absolute names are returned unchanged.
func LibraryPath(libraryName string) string {
	if filepath.IsAbs(libraryName) {
		return libraryName
	}
	return filepath.Join(TaskRoot(), libraryDir, libraryName)
}
