// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"lambda-native-shim/lambda/credentials"
	"lambda-native-shim/lambda/env"
	"lambda-native-shim/lambda/logging"
	"lambda-native-shim/lambda/shim"
)

type options struct {
	Library         string `long:"library" required:"true" description:"path to the native shared library"`
	LogLevel        string `long:"log-level" default:"info" description:"log level, also passed to the native library"`
	Address         string `long:"address" default:"0.0.0.0:8080" description:"address to serve the invoke API on"`
	FunctionName    string `long:"function-name" description:"function name reported in the invocation context, defaults to AWS_LAMBDA_FUNCTION_NAME"`
	FunctionVersion string `long:"function-version" description:"function version reported in the invocation context, defaults to AWS_LAMBDA_FUNCTION_VERSION"`
	MemorySize      string `long:"memory-size" description:"memory size in MB reported in the invocation context, defaults to AWS_LAMBDA_FUNCTION_MEMORY_SIZE"`
}

func main() {
	opts := getCLIArgs()
	logging.SetOutput(os.Stderr)
	if err := logging.SetLogLevel(opts.LogLevel); err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := credentials.NewDefaultProvider(ctx)
	if err != nil {
		log.WithError(err).Fatal("Failed to resolve credential provider")
	}

	adapter, err := shim.Load(shim.Config{
		LibraryPath: env.LibraryPath(opts.Library),
		LogLevel:    opts.LogLevel,
		Credentials: provider,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize native library")
	}

	server := newInvokeServer(adapter, functionConfig{
		Name:          opts.FunctionName,
		Version:       opts.FunctionVersion,
		MemorySize:    opts.MemorySize,
		LogGroupName:  env.GetenvWithDefault(env.LogGroupNameKey, env.DefaultLogGroupName),
		LogStreamName: env.GetenvWithDefault(env.LogStreamNameKey, env.DefaultLogStreamName),
		Region:        env.GetenvWithDefault(env.RegionKey, env.DefaultRegion),
	}, os.Stdout)

	if err := serve(ctx, opts.Address, server.Router()); err != nil {
		log.WithError(err).Fatal("Invoke server failed")
	}
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}
	applyEnvDefaults(&opts)
	return opts
}

// applyEnvDefaults fills function metadata the command line left unset
// from the Lambda environment variables.
func applyEnvDefaults(opts *options) {
	if opts.FunctionName == "" {
		opts.FunctionName = env.GetenvWithDefault(env.FunctionNameKey, env.DefaultFunctionName)
	}
	if opts.FunctionVersion == "" {
		opts.FunctionVersion = env.GetenvWithDefault(env.FunctionVersionKey, env.DefaultFunctionVersion)
	}
	if opts.MemorySize == "" {
		opts.MemorySize = env.GetenvWithDefault(env.MemorySizeKey, env.DefaultMemorySize)
	}
}
