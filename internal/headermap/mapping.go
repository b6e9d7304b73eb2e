package headermap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Table accumulates class-to-header entries keyed by qualified class name.
// A later Put for an existing key silently replaces the earlier value;
// callers control precedence through processing order.
type Table struct {
	entries map[string]string
}

// NewTable creates an empty mapping table.
func NewTable() *Table {
	return &Table{entries: make(map[string]string)}
}

// Put records an entry, replacing any previous value for the same
// qualified name.
func (t *Table) Put(e Entry) {
	t.entries[e.QualifiedName] = e.HeaderPath
}

// Len returns the number of distinct qualified names recorded.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the header path recorded for a qualified name.
func (t *Table) Lookup(qualifiedName string) (string, bool) {
	headerPath, ok := t.entries[qualifiedName]
	return headerPath, ok
}

// Serialize renders the table as newline-terminated "name=path" lines,
// sorted ascending by qualified name in byte order. The rendering is
// byte-stable for a given set of entries; downstream actions diff and
// cache on these bytes.
func (t *Table) Serialize() []byte {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(t.entries[name])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteFile writes the serialized table to path atomically via a temp file
// in the destination directory followed by a rename, so a concurrently
// running downstream action never observes a half-written mapping.
func (t *Table) WriteFile(path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".headermap-*")
	if err != nil {
		return fmt.Errorf("failed to create temp mapping file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(t.Serialize()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write mapping file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close mapping file: %w", err)
	}

	// CreateTemp files are 0600; the mapping is a normal build artifact.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod mapping file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename mapping file: %w", err)
	}
	return nil
}
