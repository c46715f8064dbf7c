// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log"

	"github.com/sirupsen/logrus"
)

// SetOutput configures logging output for standard loggers.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// SetLogLevel parses level and applies it to logrus. Lambda timestamps
// every line on ingestion, so the formatter leaves them out.
func SetLogLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return nil
}
