// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogStart(t *testing.T) {
	buf := new(bytes.Buffer)
	NewPlatformLogger(buf).LogStart("request-1", "$LATEST")
	assert.Equal(t, "START RequestId: request-1 Version: $LATEST\n", buf.String())
}

func TestLogEndWarm(t *testing.T) {
	buf := new(bytes.Buffer)
	NewPlatformLogger(buf).LogEnd("request-1", "128", 0, 1500*time.Microsecond)

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "END RequestId: request-1", lines[0])
	assert.Equal(t, "REPORT RequestId: request-1\tDuration: 1.50 ms\tBilled Duration: 2 ms\tMemory Size: 128 MB\tMax Memory Used: 128 MB\t", lines[1])
	assert.Empty(t, lines[2])
}

func TestLogEndCold(t *testing.T) {
	buf := new(bytes.Buffer)
	NewPlatformLogger(buf).LogEnd("request-1", "3008", 20*time.Millisecond, time.Millisecond)
	assert.Contains(t, buf.String(), "Init Duration: 20.00 ms\t")
}
