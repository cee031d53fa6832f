package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintgrade/lintgrade/internal/adapters/inbound/cli"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	path := writeFixture(t, "sample.py", "x = 1\n")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", path, "--json", "--no-ai"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"total_score"`)
	assert.Contains(t, buf.String(), `"category_scores"`)
	assert.Contains(t, buf.String(), `"naming_conventions"`)
}

func TestAnalyzeCommand_DefaultTUI(t *testing.T) {
	path := writeFixture(t, "sample.py", "x = 1\n")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", path, "--no-ai"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "lintgrade")
	assert.Contains(t, buf.String(), "100")
}

func TestAnalyzeCommand_CIPasses(t *testing.T) {
	path := writeFixture(t, "sample.py", "x = 1\n")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", path, "--no-ai", "--ci", "--min", "0"})
	assert.NoError(t, cmd.Execute())
}

func TestAnalyzeCommand_RejectsUnsupportedExtension(t *testing.T) {
	path := writeFixture(t, "main.go", "package main\n")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", path, "--no-ai"})
	assert.Error(t, cmd.Execute())
}

func TestAnalyzeCommand_MissingFile(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", filepath.Join(t.TempDir(), "absent.py"), "--no-ai"})
	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "lintgrade")
}
