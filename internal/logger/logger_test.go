package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("bogus"))
}

func TestInit_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithFileConfig("warn", FileConfig{}, &buf))
	t.Cleanup(func() { Log = zap.NewNop(); Sugar = Log.Sugar() })

	Info("hidden")
	Warn("shown", zap.Int("cells", 3))
	Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `{"cells": 3}`)
}

func TestInit_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roompath.log")
	require.NoError(t, InitWithFileConfig("debug", DefaultFileConfig(path), nil))
	t.Cleanup(func() { Log = zap.NewNop(); Sugar = Log.Sugar() })

	Debug("path found", zap.Int("cost", 28))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"path found"`)
	assert.Contains(t, line, `"cost":28`)
}
