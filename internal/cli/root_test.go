package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in an empty working directory.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(append([]string{}, args...)) // nil would make cobra read os.Args

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRoot_Demo(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "::INFO::This is an info message")
	assert.Contains(t, lines[1], "::ERROR::Something went wrong")
	assert.Contains(t, lines[2], "::WARN::This is a warning")
	assert.Contains(t, lines[3], "::INIT::System initialized")
	assert.NoFileExists(t, "log.txt")
}

func TestRoot_MessageToFile(t *testing.T) {
	stdout, _, err := execute(t, "--file", "--prefix", "APP", "--level", "error", "disk", "full")
	require.NoError(t, err)

	assert.Contains(t, stdout, "::[APP]::ERROR::disk full\n")

	content, err := os.ReadFile("log.txt")
	require.NoError(t, err)
	assert.Contains(t, string(content), "::[APP]::ERROR::disk full\n")
}

func TestRoot_CustomLevel(t *testing.T) {
	stdout, _, err := execute(t, "-l", "trace", "hello")
	require.NoError(t, err)

	assert.Contains(t, stdout, "::TRACE::hello\n")
}

func TestRoot_Flush(t *testing.T) {
	_, stderr, err := execute(t, "--file", "--dir", "--flush")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stderr, "flushed 4 line(s)\n"), stderr)
	assert.Contains(t, stderr, "::INIT::System initialized\n")
	assert.DirExists(t, "logs")
}

func TestRoot_FlushWithoutFileIsEmpty(t *testing.T) {
	_, stderr, err := execute(t, "--flush", "hi")
	require.NoError(t, err)

	assert.Equal(t, "flushed 0 line(s)\n", stderr)
}

func TestRoot_EnvironmentOverrides(t *testing.T) {
	t.Setenv("OPENLOG_PREFIX", "ENV")
	t.Setenv("OPENLOG_SHORT", "true")

	stdout, _, err := execute(t, "from env")
	require.NoError(t, err)

	assert.Regexp(t, `^\[\d{2}:\d{2}\]::\[ENV\]::INFO::from env\n$`, stdout)
}

func TestRoot_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("OPENLOG_PREFIX", "ENV")

	stdout, _, err := execute(t, "--prefix", "FLAG", "msg")
	require.NoError(t, err)

	assert.Contains(t, stdout, "::[FLAG]::INFO::msg")
	assert.NotContains(t, stdout, "[ENV]")
}

func TestRoot_DirectoryError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("logs", []byte("file in the way"), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--file", "--dir", "msg"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create logger")
}

func TestRoot_PlainStripsForcedColor(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "1")
	t.Setenv("NO_COLOR", "")

	colored, _, err := execute(t, "--prefix", "APP", "hello")
	require.NoError(t, err)
	assert.Contains(t, colored, "\x1b[", "forced color reaches a non-terminal writer")

	plain, _, err := execute(t, "--plain", "--prefix", "APP", "hello")
	require.NoError(t, err)
	assert.NotContains(t, plain, "\x1b[")
	assert.Regexp(t, `^\[[^\]]+\]::\[APP\]::INFO::hello\n$`, plain)
}

func TestPlainWriter_StripsAnsi(t *testing.T) {
	var buf bytes.Buffer
	w := &plainWriter{w: &buf}

	in := "\x1b[1;31m::\x1b[0m\x1b[34mINFO\x1b[0m::hello\n"
	n, err := w.Write([]byte(in))

	require.NoError(t, err)
	assert.Equal(t, len(in), n)
	assert.Equal(t, "::INFO::hello\n", buf.String())
}
