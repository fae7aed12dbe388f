package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"simplf/internal"
)

var (
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	noColor    bool
)

// Set up by the root command before any subcommand runs
var (
	cfg     internal.Config
	logger  *logrus.Logger
	printer stdPrinter
)

var rootCmd = &cobra.Command{
	Use:   "simplf",
	Short: "simplf runs programs written in the simplf language",
	Long: `simplf is a tree-walking interpreter for a small dynamically typed
language with closures, lexical scoping and for/while loops.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a yaml config file (default .simplf.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a dotenv file (default .env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")
}

func setup(cmd *cobra.Command, args []string) error {
	if envFile != "" {
		if err := internal.LoadEnvFile(envFile, true); err != nil {
			return err
		}
	} else if err := internal.LoadEnvFile(".env", false); err != nil {
		return err
	}

	var err error
	if configPath != "" {
		cfg, err = internal.LoadConfig(configPath, true)
	} else {
		cfg, err = internal.LoadConfig(".simplf.yaml", false)
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if noColor {
		cfg.Color = false
	}

	logger, err = cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	printer = newStdPrinter(os.Stdout, cfg.Color)

	logger.WithField("config", cfg).Debug("configured")
	return nil
}

func newInterpreter() *internal.Interpreter {
	return internal.NewInterpreter(printer, internal.WithLogger(logger))
}
