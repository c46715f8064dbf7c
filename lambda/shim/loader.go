// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shim

import (
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"

	"lambda-native-shim/lambda/credentials"
	"lambda-native-shim/lambda/native"
)

// OpenFunc loads a native library and binds its entry point.
type OpenFunc func(path string) (native.Entrypoint, error)

// Config describes the process-wide adapter.
type Config struct {
	LibraryPath string
	LogLevel    string
	Credentials credentials.Provider
	// Open defaults to native.Open.
	Open OpenFunc
}

func openLibrary(path string) (native.Entrypoint, error) {
	lib, err := native.Open(path)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// Loader builds an adapter at most once. A failed load is not retried:
// every later call returns the first error.
type Loader struct {
	once    sync.Once
	adapter *Adapter
	err     error
}

// Load returns the adapter for cfg, loading the native library on the
// first call.
func (l *Loader) Load(cfg Config) (*Adapter, error) {
	l.once.Do(func() {
		open := cfg.Open
		if open == nil {
			open = openLibrary
		}

		log.WithFields(log.Fields{
			"goVersion": runtime.Version(),
			"library":   cfg.LibraryPath,
			"logLevel":  cfg.LogLevel,
		}).Info("Loading native library")

		entrypoint, err := open(cfg.LibraryPath)
		if err != nil {
			l.err = err
			return
		}
		l.adapter = NewAdapter(entrypoint, cfg.Credentials, cfg.LogLevel)
	})
	return l.adapter, l.err
}

var defaultLoader Loader

// Load builds the process-wide adapter. The caller must treat an error as
// fatal; the library is never loaded twice.
func Load(cfg Config) (*Adapter, error) {
	return defaultLoader.Load(cfg)
}
