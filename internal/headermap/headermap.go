// Package headermap builds a mapping from fully-qualified Java class names
// to the header paths a transpiler will generate for them. The mapping is
// consumed by downstream transpilation actions to resolve cross-file header
// imports without re-parsing sources.
package headermap

import (
	"fmt"
	"io"
	"time"
)

// Config controls extraction and discovery behavior.
type Config struct {
	// SourceExtension selects jar entries and discovered files, matched
	// case-sensitively (default ".java").
	SourceExtension string

	// HeaderExtension replaces the source extension when deriving header
	// paths (default ".h").
	HeaderExtension string

	// IncludePatterns and IgnorePatterns drive directory discovery.
	IncludePatterns []string
	IgnorePatterns  []string
}

// Options names the inputs and output of one generation run. All fields
// are optional; with no inputs the mapping is empty, and with no output
// path nothing is written.
type Options struct {
	SourceFiles       []string
	SourceJars        []string
	SourceDirs        []string
	OutputMappingFile string
}

// Stats summarizes one generation run.
type Stats struct {
	UnitsScanned          int
	EntriesFound          int
	ProcessingTimeSeconds float64
}

// ProgressReporter receives scan lifecycle callbacks.
type ProgressReporter interface {
	OnScanStart()
	OnUnitScanned(identifier string, matched bool)
	OnScanComplete(stats Stats)
}

// NoopProgressReporter ignores all callbacks.
type NoopProgressReporter struct{}

func (NoopProgressReporter) OnScanStart()               {}
func (NoopProgressReporter) OnUnitScanned(string, bool) {}
func (NoopProgressReporter) OnScanComplete(Stats)       {}

// Generator runs the collect → extract → accumulate → write pipeline.
type Generator struct {
	cfg       Config
	extractor *Extractor
	discovery *Discovery
	progress  ProgressReporter
}

// New creates a generator. progress may be nil.
func New(cfg Config, progress ProgressReporter) (*Generator, error) {
	discovery, err := NewDiscovery(cfg.IncludePatterns, cfg.IgnorePatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid discovery pattern: %w", err)
	}
	if progress == nil {
		progress = NoopProgressReporter{}
	}
	return &Generator{
		cfg:       cfg,
		extractor: NewExtractor(cfg.HeaderExtension),
		discovery: discovery,
		progress:  progress,
	}, nil
}

// Generate performs one batch pass: loose files first, then jar members,
// then discovered directory files, each in listed order. Duplicate
// qualified names resolve last-write-wins in that processing order. If an
// output path is configured the sorted mapping is written there; any I/O
// failure aborts the run.
func (g *Generator) Generate(opts Options) (*Stats, error) {
	start := time.Now()
	table := NewTable()
	stats := &Stats{}

	g.progress.OnScanStart()

	visit := func(identifier string, r io.Reader) error {
		entry, ok, err := g.extractor.Extract(identifier, r)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", identifier, err)
		}
		if ok {
			table.Put(entry)
		}
		stats.UnitsScanned++
		g.progress.OnUnitScanned(identifier, ok)
		return nil
	}

	if err := scanFiles(opts.SourceFiles, visit); err != nil {
		return nil, err
	}
	if err := scanJars(opts.SourceJars, g.cfg.SourceExtension, visit); err != nil {
		return nil, err
	}
	if err := scanDirs(opts.SourceDirs, g.discovery, visit); err != nil {
		return nil, err
	}

	if opts.OutputMappingFile != "" {
		if err := table.WriteFile(opts.OutputMappingFile); err != nil {
			return nil, err
		}
	}

	stats.EntriesFound = table.Len()
	stats.ProcessingTimeSeconds = time.Since(start).Seconds()
	g.progress.OnScanComplete(*stats)
	return stats, nil
}
