package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"treecheck/internal/checkspec"
	"treecheck/internal/config"
	"treecheck/internal/matcher"
	"treecheck/internal/probe"
	"treecheck/internal/report"
	"treecheck/internal/validator"
)

var (
	rootCmd = &cobra.Command{
		Use:           "treecheck",
		Short:         "Static completeness checker for an implementation tree",
		Long:          "treecheck probes a directory tree for expected source, test, example and\ndocumentation artifacts and verifies the named constructs inside them,\nwithout executing or parsing the inspected code.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(cmd)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	flagRoot     string
	flagManifest string
	flagConfig   string
	verbose      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagRoot, "root", "r", "", "Directory tree to validate (overrides config)")
	rootCmd.Flags().StringVarP(&flagManifest, "manifest", "m", "", "YAML check manifest (default: builtin rooted hypershell manifest)")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "treecheck.yaml", "Path to the config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// newLogger builds the diagnostic logger. The report itself always goes to
// stdout via plain writes; zap only carries debug detail, on stderr, when
// asked for.
func newLogger() *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func run(cmd *cobra.Command) (int, error) {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return 0, err
	}

	root := cfg.Project.Root
	if flagRoot != "" {
		root = flagRoot
	}
	manifestPath := cfg.Project.Manifest
	if flagManifest != "" {
		manifestPath = flagManifest
	}

	manifest := checkspec.Default()
	if manifestPath != "" {
		manifest, err = checkspec.Load(manifestPath)
		if err != nil {
			return 0, err
		}
	}

	p := probe.New(root, log)
	log.Debugw("starting validation", "root", root, "components", len(manifest.Components))
	if verbose {
		log.Debugw("tree inventory", "files", p.Inventory())
	}

	out := cmd.OutOrStdout()
	printer := report.NewPrinter(out, manifest.Capabilities)
	printer.Banner(manifest.Title)

	v := validator.New(p, matcher.NewPatternMatcher(), out, log)
	rep := report.NewAggregator(v, log).RunAll(manifest)

	return printer.Render(rep), nil
}
