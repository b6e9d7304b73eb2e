package headermap

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// visitFunc receives one source unit: its identifier (the string header
// paths are derived from) and a read-once content stream. The stream is
// only valid for the duration of the call.
type visitFunc func(identifier string, r io.Reader) error

// scanFiles opens each loose source file in listed order and visits it
// with the path as given. Every file is closed before the next one opens.
func scanFiles(paths []string, visit visitFunc) error {
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open source file: %w", err)
		}
		err = visit(p, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// scanJars opens each source jar in listed order and visits every entry
// whose name ends with sourceExt (case-sensitive), in archive-internal
// order. Entry identifiers are the archive-internal paths, so derived
// header paths stay relative to the jar's internal layout. One jar handle
// is open at a time, and each entry stream is closed before the next
// entry is read.
func scanJars(paths []string, sourceExt string, visit visitFunc) error {
	for _, p := range paths {
		jar, err := zip.OpenReader(p)
		if err != nil {
			return fmt.Errorf("failed to open source jar %s: %w", p, err)
		}
		err = scanJarEntries(&jar.Reader, sourceExt, visit)
		jar.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func scanJarEntries(jar *zip.Reader, sourceExt string, visit visitFunc) error {
	for _, entry := range jar.File {
		if !strings.HasSuffix(entry.Name, sourceExt) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("failed to open jar entry %s: %w", entry.Name, err)
		}
		err = visit(entry.Name, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// scanDirs discovers matching files under each root in listed order and
// visits them with root-relative, slash-separated identifiers, mirroring
// jar-member semantics so header paths stay layout-relative.
func scanDirs(roots []string, discovery *Discovery, visit visitFunc) error {
	for _, root := range roots {
		relPaths, err := discovery.Discover(root)
		if err != nil {
			return fmt.Errorf("failed to discover sources under %s: %w", root, err)
		}
		for _, rel := range relPaths {
			f, err := os.Open(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("failed to open discovered source: %w", err)
			}
			err = visit(rel, f)
			f.Close()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
