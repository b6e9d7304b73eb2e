package headermap

import (
	"bufio"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// packageRe matches a Java package statement: the keyword, a dotted
// identifier sequence, and the terminating semicolon. Submatch 1 is the
// keyword (its offset drives the preceding-character check), submatch 2
// the package name.
var packageRe = regexp.MustCompile(`(package)\s+([\w.]+);`)

// maxLineBytes bounds a single scanned source line. Lines beyond this are
// surfaced as a read error, consistent with treating I/O problems as fatal.
const maxLineBytes = 4 * 1024 * 1024

// Entry maps one top-level Java class to the header path the transpiler
// will generate for it.
type Entry struct {
	QualifiedName string
	HeaderPath    string
}

// Extractor locates package statements in Java sources and derives
// class-to-header entries from them.
//
// Matching is regex-based on purpose. A full lexer would reject a handful
// of inputs this heuristic accepts (most notably a /* comment spanning
// multiple lines into the statement line), but downstream actions depend
// on the current behavior, so the heuristic is kept as-is rather than
// upgraded to a real parser.
type Extractor struct {
	headerExt string
}

// NewExtractor creates an extractor that derives header paths with the
// given extension (e.g. ".h").
func NewExtractor(headerExt string) *Extractor {
	return &Extractor{headerExt: headerExt}
}

// Extract scans a source stream line by line for its package statement and
// returns the entry for the unit. ok is false when no statement could be
// confidently located; that is a normal outcome, not an error. The first
// accepted line wins and scanning stops there.
func (e *Extractor) Extract(identifier string, r io.Reader) (entry Entry, ok bool, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		m := packageRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}

		// Characters on the trimmed line before the package keyword decide
		// whether this is a real statement or part of something else.
		preceding := line[:m[2]]
		if preceding != "" {
			// Commented-out statement: skip the line, keep scanning.
			if strings.HasPrefix(preceding, "//") {
				continue
			}

			// The statement may follow whitespace, a completed statement,
			// or a closed block comment. Anything else (an identifier-like
			// prefix, an unclosed comment) rejects the line.
			last, _ := utf8.DecodeLastRuneInString(preceding)
			if !unicode.IsSpace(last) &&
				!strings.HasSuffix(preceding, ";") &&
				!strings.HasSuffix(preceding, "*/") {
				continue
			}
		}

		pkg := line[m[4]:m[5]]
		return Entry{
			QualifiedName: pkg + "." + baseClassName(identifier),
			HeaderPath:    stripExtension(identifier) + e.headerExt,
		}, true, nil
	}

	if err := scanner.Err(); err != nil {
		return Entry{}, false, err
	}
	return Entry{}, false, nil
}

// baseClassName returns the top-level class name for a source identifier:
// the final path element with its extension removed.
func baseClassName(identifier string) string {
	base := path.Base(filepath.ToSlash(identifier))
	return strings.TrimSuffix(base, path.Ext(base))
}

// stripExtension removes the extension from the final element of the
// identifier, leaving any directory prefix untouched.
func stripExtension(identifier string) string {
	if ext := path.Ext(filepath.ToSlash(identifier)); ext != "" {
		return identifier[:len(identifier)-len(ext)]
	}
	return identifier
}
