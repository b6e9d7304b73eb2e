package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for argument file expansion:
// - Plain arguments pass through untouched
// - @path is replaced by the file's lines, one argument per line
// - Expansion preserves surrounding argument order
// - Argument files may reference further argument files (recursion)
// - Bare "@" passes through
// - Missing argument file is an error

// writeArgFile writes lines to a file under dir and returns its @-token.
func writeArgFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return "@" + path
}

func TestExpandArgumentFiles_Passthrough(t *testing.T) {
	t.Parallel()

	args, err := ExpandArgumentFiles([]string{"--source_files=A.java", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--source_files=A.java", "--quiet"}, args)
}

func TestExpandArgumentFiles_OneArgumentPerLine(t *testing.T) {
	t.Parallel()

	token := writeArgFile(t, t.TempDir(), "flags.params",
		"--source_files=A.java,B.java\n--output_mapping_file=headers.mapping\n")

	args, err := ExpandArgumentFiles([]string{token})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--source_files=A.java,B.java",
		"--output_mapping_file=headers.mapping",
	}, args)
}

func TestExpandArgumentFiles_PreservesOrder(t *testing.T) {
	t.Parallel()

	token := writeArgFile(t, t.TempDir(), "flags.params", "--quiet\n")

	args, err := ExpandArgumentFiles([]string{"--source_files=A.java", token, "--verbose"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--source_files=A.java", "--quiet", "--verbose"}, args)
}

func TestExpandArgumentFiles_Recursive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inner := writeArgFile(t, dir, "inner.params", "--quiet\n")
	outer := writeArgFile(t, dir, "outer.params", "--source_files=A.java\n"+inner+"\n")

	args, err := ExpandArgumentFiles([]string{outer})
	require.NoError(t, err)
	assert.Equal(t, []string{"--source_files=A.java", "--quiet"}, args)
}

func TestExpandArgumentFiles_BareAtPassthrough(t *testing.T) {
	t.Parallel()

	args, err := ExpandArgumentFiles([]string{"@"})
	require.NoError(t, err)
	assert.Equal(t, []string{"@"}, args)
}

func TestExpandArgumentFiles_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ExpandArgumentFiles([]string{"@" + filepath.Join(t.TempDir(), "nope.params")})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to open argument file")
}
