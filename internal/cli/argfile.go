package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ExpandArgumentFiles replaces every @path token in args with the
// referenced file's lines, one argument per line (the params-file
// convention build systems use to sidestep command-line length limits).
// Referenced files may themselves contain @path tokens; expansion
// recurses. A bare "@" is passed through untouched.
func ExpandArgumentFiles(args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))

	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || arg == "@" {
			expanded = append(expanded, arg)
			continue
		}

		fileArgs, err := readArgumentFile(arg[1:])
		if err != nil {
			return nil, err
		}
		fileArgs, err = ExpandArgumentFiles(fileArgs)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, fileArgs...)
	}

	return expanded, nil
}

func readArgumentFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open argument file: %w", err)
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		args = append(args, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read argument file %s: %w", path, err)
	}
	return args, nil
}
