package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRules writes a rules file with the given name and content into a
// temp directory and returns its path.
func writeRules(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const passingYAMLRules = `rules:
  - name: deploy-target
    quantifier: excluding(staging)
    accept: [production, dev]
    reject: [staging]
  - name: open-door
    quantifier: all
    accept: [anything]
`

func TestCheckYAMLPass(t *testing.T) {
	path := writeRules(t, "rules.yaml", passingYAMLRules)

	stdout, _, err := executeCommand(t, nil, "check", "--rules", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS deploy-target")
	assert.Contains(t, stdout, "PASS open-door")
	assert.Contains(t, stdout, "2 passed, 0 failed, 2 total")
}

func TestCheckYAMLFailure(t *testing.T) {
	path := writeRules(t, "rules.yaml", `rules:
  - name: broken
    quantifier: some(alpha)
    accept: [beta]
`)

	stdout, _, err := executeCommand(t, nil, "check", "--rules", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "FAIL broken")
	assert.Contains(t, stdout, `accept probe "beta" rejected by some(alpha)`)
}

func TestCheckCUERules(t *testing.T) {
	path := writeRules(t, "rules.cue", `rules: [
	{
		name:       "deploy-target"
		quantifier: "excluding(staging)"
		accept: ["production"]
		reject: ["staging"]
	},
]
`)

	stdout, _, err := executeCommand(t, nil, "check", "--rules", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS deploy-target")
}

func TestCheckInvalidQuantifierFailsRule(t *testing.T) {
	path := writeRules(t, "rules.yaml", `rules:
  - name: bad-expr
    quantifier: most(5)
`)

	stdout, _, err := executeCommand(t, nil, "check", "--rules", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "invalid quantifier")
}

func TestCheckMissingRulesFile(t *testing.T) {
	stdout, _, err := executeCommand(t, nil, "check", "--rules", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, ErrCodeNotFound)
}

func TestCheckUnsupportedExtension(t *testing.T) {
	path := writeRules(t, "rules.toml", "rules = []\n")

	_, _, err := executeCommand(t, nil, "check", "--rules", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckEmptyRules(t *testing.T) {
	path := writeRules(t, "rules.yaml", "rules: []\n")

	stdout, _, err := executeCommand(t, nil, "check", "--rules", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, ErrCodeNoRules)
}

func TestCheckJSONOutput(t *testing.T) {
	path := writeRules(t, "rules.yaml", passingYAMLRules)

	stdout, _, err := executeCommand(t, nil, "check", "--rules", path, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["passed"])
	assert.Equal(t, float64(0), data["failed"])
}

func TestLoadRulesValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing name", "rules:\n  - quantifier: all\n", "missing name"},
		{"missing quantifier", "rules:\n  - name: x\n", "missing quantifier"},
		{"malformed yaml", "rules: [\n", "decoding YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRules(t, "rules.yaml", tt.content)
			_, err := LoadRules(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
