package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalMatch(t *testing.T) {
	stdout, _, err := executeCommand(t, nil, "eval", "excluding(staging)", "production")
	require.NoError(t, err)
	assert.Contains(t, stdout, "match: excluding(staging)")
}

func TestEvalNoMatchExitsFailure(t *testing.T) {
	stdout, _, err := executeCommand(t, nil, "eval", "excluding(staging)", "staging")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "no match")
}

func TestEvalVariants(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		value string
		match bool
	}{
		{"all admits anything", "all", "whatever", true},
		{"none rejects everything", "none", "whatever", false},
		{"some admits its payload", "some(x)", "x", true},
		{"some rejects others", "some(x)", "y", false},
		{"excluding rejects its payload", "excluding(x)", "x", false},
		{"excluding admits others", "excluding(x)", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, nil, "eval", tt.expr, tt.value)
			if tt.match {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, ExitFailure, GetExitCode(err))
			}
		})
	}
}

func TestEvalNormalizesCandidate(t *testing.T) {
	// Composed vs decomposed "é" are one value after NFC.
	_, _, err := executeCommand(t, nil, "eval", "some(é)", "é")
	assert.NoError(t, err)
}

func TestEvalMalformedExpression(t *testing.T) {
	stdout, _, err := executeCommand(t, nil, "eval", "most(5)", "5")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, ErrCodeParse)
}

func TestEvalJSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, nil, "eval", "some(5)", "5", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "some(5)", data["expr"])
	assert.Equal(t, true, data["match"])
}
