// Package cmd wires the lsx command line: flag parsing, config and logger
// setup, terminal detection, and handing the resolved options to the lister.
package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/lsx/internal/collate"
	"github.com/oakwood-commons/lsx/internal/config"
	"github.com/oakwood-commons/lsx/internal/filter"
	"github.com/oakwood-commons/lsx/internal/lister"
	"github.com/oakwood-commons/lsx/internal/style"
	"github.com/oakwood-commons/lsx/pkg/logger"
	"github.com/oakwood-commons/lsx/pkg/settings"
	"github.com/oakwood-commons/lsx/pkg/tabulate"
)

var (
	allFiles   bool
	byLines    bool
	longFormat bool
	directory  bool
	onePerLine bool
	noColor    bool
	debug      bool
	lineWidth  int
	filterExpr string
	sortOrder  string
	configFile string

	rootCtx   = context.Background()
	runParams = settings.NewCliParams()
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [FILE...]",
	Short: "list directory contents in width-fitted columns",
	Long: `lsx lists files the way ls does: it measures every name, searches for the
densest column layout that fits the terminal width, and prints the grid.
Entries are sorted with the locale's collation rules, colored by file type,
and can be filtered with a CEL expression over name, size, and type.`,
	Example:       "\n  lsx\n  lsx -la /etc\n  lsx -x --width 100\n  lsx --filter 'name.endsWith(\".go\") && !dir'\n",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		runParams = settings.NewCliParams()
		if debug {
			// --debug maps to zap's debug level; the default is info (0).
			runParams.MinLogLevel = -1
		}
		runParams.NoColor = noColor || !stdoutIsTerminal()

		lgr := logger.Get(runParams.MinLogLevel)
		lgr = logger.WithValues(lgr, logger.CommandKey, settings.CliBinaryName)
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	lgr := logger.FromContext(rootCtx)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		lgr.V(1).Info("flag set", "name", f.Name, "value", f.Value.String())
	})

	cfg, err := config.Load(config.Resolve(configFile))
	if err != nil {
		return err
	}

	if lineWidth < 0 {
		return fmt.Errorf("invalid width %d (must be >= 0)", lineWidth)
	}
	width := lineWidth
	if width == 0 {
		width = cfg.Width
	}
	if width == 0 {
		width = detectTerminalWidth()
	}

	order := sortOrder
	if order == "" {
		order = cfg.Sort
	}
	if err := validateSortOrder(order); err != nil {
		return err
	}

	theme := style.FromColors(style.Colors{
		Directory:  cfg.Colors.Directory,
		Symlink:    cfg.Colors.Symlink,
		Broken:     cfg.Colors.Broken,
		Executable: cfg.Colors.Executable,
	})
	if runParams.NoColor {
		theme = style.NoColor()
	}

	var flt *filter.Filter
	if filterExpr != "" {
		flt, err = filter.Compile(filterExpr)
		if err != nil {
			return err
		}
	}

	opts := lister.Options{
		Paths:      args,
		All:        allFiles,
		ByLines:    byLines,
		Long:       longFormat,
		Directory:  directory,
		OnePerLine: onePerLine,
		Width:      width,
		Sort:       order,
		Filter:     flt,
		Theme:      theme,
		Compare:    collate.New(),
	}

	orientation := tabulate.Columns
	if byLines {
		orientation = tabulate.Rows
	}
	lgr.V(1).Info("listing", logger.OrientationKey, orientation.String(), "width", width, "paths", len(args))

	return lister.New(opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), lgr).Run()
}

func validateSortOrder(order string) error {
	switch order {
	case "", config.SortAscending, config.SortDescending, config.SortNone:
		return nil
	default:
		return fmt.Errorf("invalid sort order %q (want %s, %s, or %s)",
			order, config.SortAscending, config.SortDescending, config.SortNone)
	}
}

// cliVersionString builds the human-readable string behind --version.
func cliVersionString() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)",
		settings.CliBinaryName,
		settings.VersionInformation.BuildVersion,
		settings.VersionInformation.Commit,
		settings.VersionInformation.BuildTime,
		runtime.Version(),
	)
}

func init() {
	rootCmd.Flags().BoolVarP(&allFiles, "all", "a", false, "do not ignore entries starting with .")
	rootCmd.Flags().BoolVarP(&byLines, "by-lines", "x", false, "fill entries across rows instead of down columns")
	rootCmd.Flags().BoolVarP(&longFormat, "long", "l", false, "use a long listing format")
	rootCmd.Flags().BoolVarP(&directory, "directory", "d", false, "list directories themselves, not their contents")
	rootCmd.Flags().BoolVarP(&onePerLine, "one-per-line", "1", false, "list one entry per line")
	rootCmd.Flags().IntVarP(&lineWidth, "width", "w", 0, "maximum line width (0 = detect terminal)")
	rootCmd.Flags().StringVar(&filterExpr, "filter", "", "CEL expression over name, size, dir, hidden, link, modified")
	rootCmd.Flags().StringVar(&sortOrder, "sort", "", "sort order: ascending|descending|none (default from config)")
	rootCmd.Flags().StringVar(&configFile, "config-file", "", "path to a YAML config file (colors, defaults)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Version = cliVersionString()
}

// Execute runs the root command. Returned errors have already been logged
// to the degree they can be; main prints them and exits non-zero.
func Execute() error {
	return rootCmd.Execute()
}
