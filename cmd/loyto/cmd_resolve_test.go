package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResult_Plain(t *testing.T) {
	var buf bytes.Buffer

	err := printResult(&buf, "webserver01", "i-0abc123", "plain")

	require.NoError(t, err)
	assert.Equal(t, "i-0abc123\n", buf.String())
}

func TestPrintResult_PlainNoMatch(t *testing.T) {
	var buf bytes.Buffer

	err := printResult(&buf, "webserver01", "", "plain")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no running instance found")
	assert.Empty(t, buf.String())
}

func TestPrintResult_JSON(t *testing.T) {
	var buf bytes.Buffer

	err := printResult(&buf, "env:prod", "i-0abc123", "json")
	require.NoError(t, err)

	var result resolveResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "env:prod", result.Identifier)
	assert.Equal(t, "i-0abc123", result.InstanceID)
	assert.True(t, result.Found)
}

func TestPrintResult_JSONNoMatch(t *testing.T) {
	var buf bytes.Buffer

	err := printResult(&buf, "webserver01", "", "json")
	require.NoError(t, err, "JSON consumers get found=false, not an error")

	var result resolveResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.False(t, result.Found)
	assert.Empty(t, result.InstanceID)
}

func TestLoadConfig_NoPath(t *testing.T) {
	cfg, err := loadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
}
