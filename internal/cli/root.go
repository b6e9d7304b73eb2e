package cli

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/headermap/internal/config"
	"github.com/mvp-joe/headermap/internal/headermap"
)

var (
	sourceFiles       string
	sourceJars        string
	sourceDirs        string
	outputMappingFile string
	quietFlag         bool
	verboseFlag       bool
)

// rootCmd carries the generation flags directly; build actions invoke the
// tool without a subcommand. Unknown flags are ignored rather than
// rejected so callers can pass a superset of arguments.
var rootCmd = &cobra.Command{
	Use:   "headermap",
	Short: "Generate a Java class to generated-header mapping",
	Long: `headermap scans Java sources (loose files, source jars, or source
directories) for their package statements and writes a sorted
"qualifiedName=headerPath" text mapping. Downstream transpilation actions
use the mapping to resolve cross-file header imports without re-parsing
sources.

Package statements are located with a lightweight heuristic, not a full
Java parser; files without a recognizable statement are skipped.

Examples:
  # Map two loose files
  headermap --source_files=src/Foo.java,src/Bar.java --output_mapping_file=foo.mapping

  # Map every .java entry in a source jar
  headermap --source_jars=libfoo-src.jar --output_mapping_file=foo.mapping

  # Arguments may come from a params file, one token per line
  headermap @foo.params
`,
	Args: cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		UnknownFlags: true,
	},
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute parses the (already argfile-expanded) arguments and runs the
// root command. This is called by main.main().
func Execute(args []string) {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&sourceFiles, "source_files", "", "Comma-separated list of loose source file paths to scan")
	rootCmd.Flags().StringVar(&sourceJars, "source_jars", "", "Comma-separated list of source jar paths to scan")
	rootCmd.Flags().StringVar(&sourceDirs, "source_dirs", "", "Comma-separated list of directories to scan for sources")
	rootCmd.Flags().StringVar(&outputMappingFile, "output_mapping_file", "", "Destination path for the generated mapping (omit for a dry run)")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := headermap.Options{
		SourceFiles:       splitList(sourceFiles),
		SourceJars:        splitList(sourceJars),
		SourceDirs:        splitList(sourceDirs),
		OutputMappingFile: outputMappingFile,
	}

	if verboseFlag && !quietFlag {
		log.Printf("Scanning %d source files, %d source jars, %d source dirs\n",
			len(opts.SourceFiles), len(opts.SourceJars), len(opts.SourceDirs))
	}

	progress := NewCLIProgressReporter(quietFlag)

	gen, err := headermap.New(cfg.ToGeneratorConfig(), progress)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	stats, err := gen.Generate(opts)
	if err != nil {
		return fmt.Errorf("mapping generation failed: %w", err)
	}

	if verboseFlag && !quietFlag {
		if outputMappingFile != "" {
			log.Printf("Wrote %d entries to %s\n", stats.EntriesFound, outputMappingFile)
		} else {
			log.Println("No output mapping file configured; nothing written")
		}
	}

	return nil
}

// splitList splits a comma-separated flag value. An empty value means the
// flag is absent; an empty element between commas is kept and fails at
// open time, matching the fatal-I/O policy.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}
