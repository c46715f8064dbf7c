// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"lambda-native-shim/lambda/credentials"
	"lambda-native-shim/lambda/env"
	"lambda-native-shim/lambda/fatalerror"
	"lambda-native-shim/lambda/logging"
	"lambda-native-shim/lambda/shim"
)

// Set at build time with -ldflags "-X main.libraryName=... -X main.logLevel=... -X main.handlers=...".
var (
	libraryName = "libnative.so"
	logLevel    = "info"
	handlers    = ""
)

func main() {
	logging.SetOutput(os.Stderr)
	if err := logging.SetLogLevel(logLevel); err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	table, err := shim.ParseHandlerTable(handlers)
	if err != nil {
		log.WithError(err).Fatal("Invalid handler table")
	}

	functionName, err := table.Resolve(os.Getenv(env.HandlerKey))
	if err != nil {
		startupFailure(err).Fatal("Failed to resolve handler")
	}

	provider, err := credentials.NewDefaultProvider(context.Background())
	if err != nil {
		startupFailure(err).Fatal("Failed to resolve credential provider")
	}

	adapter, err := shim.Load(shim.Config{
		LibraryPath: env.LibraryPath(libraryName),
		LogLevel:    logLevel,
		Credentials: provider,
	})
	if err != nil {
		startupFailure(err).Fatal("Failed to initialize native library")
	}

	lambda.Start(newHandler(adapter, functionName))
}

func startupFailure(err error) *log.Entry {
	return log.WithError(err).WithField("errorType", fatalerror.ErrorTypeOf(err))
}
