package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/bilingual"
	"github.com/tsawler/bilingual/config"
	"github.com/tsawler/bilingual/logger"
)

// app carries state shared by all subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	log     logger.Logger
	out     io.Writer
}

// Execute runs the root command
func Execute() error {
	return newRootCommand(os.Stdout).ExecuteContext(context.Background())
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: logger.NewNop(),
		out: out,
	}

	rootCmd := &cobra.Command{
		Use:           "epubextract",
		Short:         "Extract the readable text of EPUB books",
		Long:          `Extract headings and paragraphs from EPUB books in reading order, ready for bilingual alignment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./bilingual.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("exclude-non-linear", false, "skip spine items marked linear=\"no\"")
	rootCmd.PersistentFlags().Bool("fallback-order", false, "ignore the spine and order documents by file name")

	rootCmd.AddCommand(a.extractCommand())
	rootCmd.AddCommand(a.chaptersCommand())
	rootCmd.AddCommand(a.bilingualCommand())

	return rootCmd
}

// init loads .env and configuration, then builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	if err := a.bindFlags(cmd.Root()); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	a.cfg = cfg

	log, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = log

	return nil
}

// bindFlags binds persistent flags to their configuration keys.
func (a *app) bindFlags(root *cobra.Command) error {
	bindings := []struct{ key, flag string }{
		{"log.level", "log-level"},
		{"extract.exclude_non_linear", "exclude-non-linear"},
		{"extract.fallback_order", "fallback-order"},
	}
	for _, b := range bindings {
		if err := a.v.BindPFlag(b.key, root.PersistentFlags().Lookup(b.flag)); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", b.flag, err)
		}
	}
	return nil
}

// extractor builds an Extractor for path from the loaded configuration.
func (a *app) extractor(path string) *bilingual.Extractor {
	ext := bilingual.Open(path).Logger(a.log.With(logger.String("file", path)))
	if a.cfg.Extract.ExcludeNonLinear {
		ext = ext.ExcludeNonLinear()
	}
	if a.cfg.Extract.FallbackOrder {
		ext = ext.FallbackOrder()
	}
	return ext
}

// logWarnings reports extraction warnings without failing the command.
func (a *app) logWarnings(warnings []bilingual.Warning) {
	for _, w := range warnings {
		a.log.Warn("Extraction warning", logger.String("source", w.Source), logger.String("message", w.Message))
	}
}
