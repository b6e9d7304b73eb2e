package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/headermap/internal/headermap"
)

// CLIProgressReporter implements progress reporting with a progress bar.
// The total unit count is unknown until jars are opened, so the bar runs
// in indeterminate mode and tracks throughput.
type CLIProgressReporter struct {
	quiet        bool
	scanBar      *progressbar.ProgressBar
	startTime    time.Time
	scannedUnits int
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnScanStart() {
	if c.quiet {
		return
	}
	log.Println("Scanning source units...")

	c.scanBar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Scanning sources"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnUnitScanned(identifier string, matched bool) {
	if c.quiet {
		return
	}
	if c.scanBar != nil {
		c.scannedUnits++
		c.scanBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnScanComplete(stats headermap.Stats) {
	if c.quiet {
		return
	}
	if c.scanBar != nil {
		c.scanBar.Finish()
		c.scanBar = nil
	}

	fmt.Printf("✓ Scan complete: %d entries from %d source units in %.1fs\n",
		stats.EntriesFound, stats.UnitsScanned, stats.ProcessingTimeSeconds)
}
