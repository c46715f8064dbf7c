// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"log"
	"math"
	"time"
)

// PlatformLogger prints the per-invocation platform lines Lambda writes
// to a function's log stream.
type PlatformLogger struct {
	logger *log.Logger
}

// NewPlatformLogger returns a logger writing platform lines to output.
func NewPlatformLogger(output io.Writer) *PlatformLogger {
	prefix, flags := "", 0
	return &PlatformLogger{
		logger: log.New(output, prefix, flags),
	}
}

// LogStart prints the START line of an invocation.
func (l *PlatformLogger) LogStart(requestID, functionVersion string) {
	l.logger.Printf("START RequestId: %s Version: %s", requestID, functionVersion)
}

// LogEnd prints the END and REPORT lines of an invocation. initDuration is
// zero for warm invocations.
func (l *PlatformLogger) LogEnd(requestID string, memorySize string, initDuration, invokeDuration time.Duration) {
	l.logger.Printf("END RequestId: %s", requestID)

	durationMs := float64(invokeDuration.Nanoseconds()) / float64(time.Millisecond)
	line := fmt.Sprintf("REPORT RequestId: %s\t", requestID)
	if initDuration > 0 {
		line += fmt.Sprintf("Init Duration: %.2f ms\t", float64(initDuration.Nanoseconds())/float64(time.Millisecond))
	}
	// Max Memory Used is reported as the memory size, the shim does not sample it
	line += fmt.Sprintf("Duration: %.2f ms\tBilled Duration: %.f ms\tMemory Size: %s MB\tMax Memory Used: %s MB\t",
		durationMs, math.Ceil(durationMs), memorySize, memorySize)
	l.logger.Println(line)
}
