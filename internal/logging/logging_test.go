package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"DEBUG":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"Warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for in, expected := range tests {
		assert.Equal(t, expected, ParseLevel(in), "level %q", in)
	}
}

func TestConfigure(t *testing.T) {
	log := logrus.New()
	configure(log, "warn")

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
	assert.Equal(t, os.Stderr, log.Out)
}

func TestFromContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFormatter := Log.Out, Log.Formatter
	Log.SetOutput(&buf)
	Log.SetFormatter(&logrus.JSONFormatter{})
	defer func() {
		Log.SetOutput(prevOut)
		Log.SetFormatter(prevFormatter)
	}()

	ctx := WithRequestID(context.Background(), "01HZY")
	assert.Equal(t, "01HZY", RequestID(ctx))
	FromContext(ctx).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "01HZY", line["request_id"])
	assert.Equal(t, "hello", line["msg"])
}

func TestFromContext_WithoutRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	_, ok := FromContext(context.Background()).Data["request_id"]
	assert.False(t, ok)
}
