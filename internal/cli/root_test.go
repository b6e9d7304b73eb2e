package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the root command:
// - Flags drive a full generation run and write the mapping file
// - Unknown flags are ignored rather than rejected
// - Extra positional arguments are ignored
// - No --output_mapping_file: run succeeds, nothing written
// - Missing source file makes the command fail

// executeRoot resets the package-level flag state and runs the root
// command with args. Tests share rootCmd, so none of them may run in
// parallel.
func executeRoot(t *testing.T, args ...string) error {
	t.Helper()

	sourceFiles = ""
	sourceJars = ""
	sourceDirs = ""
	outputMappingFile = ""
	quietFlag = false
	verboseFlag = false

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// setupProject creates a temp dir with Java sources and chdirs into it.
func setupProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.java"), []byte("package p1;\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "B.java"), []byte("class B {}\n"), 0644))

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(originalWd)
	})

	return dir
}

func TestRoot_WritesMapping(t *testing.T) {
	setupProject(t)

	err := executeRoot(t,
		"--source_files=A.java,B.java",
		"--output_mapping_file=headers.mapping",
		"--quiet")
	require.NoError(t, err)

	data, err := os.ReadFile("headers.mapping")
	require.NoError(t, err)
	assert.Equal(t, "p1.A=A.h\n", string(data))
}

func TestRoot_IgnoresUnknownFlags(t *testing.T) {
	setupProject(t)

	err := executeRoot(t,
		"--source_files=A.java",
		"--output_mapping_file=headers.mapping",
		"--quiet",
		"--some_future_flag=on")
	require.NoError(t, err)

	_, err = os.Stat("headers.mapping")
	assert.NoError(t, err)
}

func TestRoot_IgnoresExtraPositionalArgs(t *testing.T) {
	setupProject(t)

	err := executeRoot(t,
		"--source_files=A.java",
		"--output_mapping_file=headers.mapping",
		"--quiet",
		"leftover-token")
	require.NoError(t, err)
}

func TestRoot_NoOutputFileIsNoop(t *testing.T) {
	dir := setupProject(t)

	err := executeRoot(t, "--source_files=A.java", "--quiet")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, "headers.mapping", entry.Name())
	}
}

func TestRoot_MissingSourceFileFails(t *testing.T) {
	setupProject(t)

	err := executeRoot(t,
		"--source_files=Missing.java",
		"--output_mapping_file=headers.mapping",
		"--quiet")
	require.Error(t, err)
}
