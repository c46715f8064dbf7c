// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"io/ioutil"
	"log"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPrint(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	log.Print("hello log")
	assert.Contains(t, buf.String(), "hello log")
}

func TestLogrusPrint(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	logrus.Print("hello logrus")
	assert.Contains(t, buf.String(), "hello logrus")
}

func TestSetLogLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	buf := new(bytes.Buffer)
	SetOutput(buf)

	require.NoError(t, SetLogLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	logrus.Info("dropped")
	logrus.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "time=")
}

func TestSetLogLevelInvalid(t *testing.T) {
	level := logrus.GetLevel()
	assert.Error(t, SetLogLevel("loud"))
	assert.Equal(t, level, logrus.GetLevel())
}

func BenchmarkLogrusDebugLogLevelDisabled(b *testing.B) {
	SetOutput(ioutil.Discard)
	logrus.SetLevel(logrus.InfoLevel)
	for n := 0; n < b.N; n++ {
		logrus.Debug(1, "two", true)
	}
}

func BenchmarkLogrusDebugWithFieldLogLevelDisabled(b *testing.B) {
	SetOutput(ioutil.Discard)
	logrus.SetLevel(logrus.InfoLevel)
	for n := 0; n < b.N; n++ {
		logrus.WithField("field", "value").Debug(1, "two", true)
	}
}
