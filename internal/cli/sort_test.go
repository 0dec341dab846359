package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortFromStdin(t *testing.T) {
	in := strings.NewReader("all\nexcluding(b)\nsome(z)\n\nnone\nsome(a)\n")

	stdout, _, err := executeCommand(t, in, "sort")
	require.NoError(t, err)

	want := "none\nsome(a)\nsome(z)\nexcluding(b)\nall\n"
	assert.Equal(t, want, stdout)
}

func TestSortFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("some(b)\nnone\nsome(a)\n"), 0644))

	stdout, _, err := executeCommand(t, nil, "sort", path)
	require.NoError(t, err)
	assert.Equal(t, "none\nsome(a)\nsome(b)\n", stdout)
}

func TestSortMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, nil, "sort", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSortMalformedLineReportsLineNumber(t *testing.T) {
	in := strings.NewReader("all\nnope(5)\n")

	stdout, _, err := executeCommand(t, in, "sort")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "line 2")
}

func TestSortEmptyInput(t *testing.T) {
	stdout, _, err := executeCommand(t, strings.NewReader(""), "sort")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestSortJSONOutput(t *testing.T) {
	in := strings.NewReader("all\nnone\n")

	stdout, _, err := executeCommand(t, in, "sort", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"none", "all"}, data["exprs"])
}
