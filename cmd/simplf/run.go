package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Runs a simplf source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timed, _ := cmd.Flags().GetBool("time")

		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		start := time.Now()
		ok := newInterpreter().Run(source)
		if timed {
			fmt.Fprintln(os.Stderr, "Time elapsed is:", time.Since(start))
		}
		if !ok {
			return errFailed
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("time", false, "Print the elapsed execution time")
	rootCmd.AddCommand(runCmd)
}

func readSource(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	logger.WithField("path", absPath).Debug("loaded source")
	return string(b), nil
}
