package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	promptMain = "> "
	promptCont = ". "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts an interactive session",
	Long: `Starts an interactive session. Declarations persist between inputs.
Input continues on the next line while parentheses or braces are open.
Ctrl+C discards the current input, Ctrl+D exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func repl() error {
	fmt.Println("simplf", version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(cfg.HistoryFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			logger.WithError(err).Warn("could not save history")
		}
	}()

	interp := newInterpreter()
	for {
		source, ok := readInput(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(source) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))
		interp.Run(source)
	}
}

// readInput reads lines until every bracket is closed.
// It returns false once the input stream is over.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			logger.WithError(err).Error("reading input")
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if openBrackets(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

// openBrackets counts unclosed '(' and '{' outside strings and comments
func openBrackets(source string) int {
	depth := 0
	inString := false
	for i := 0; i < len(source); i++ {
		c := source[i]
		if inString {
			if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '/':
			if i+1 < len(source) && source[i+1] == '/' {
				for i < len(source) && source[i] != '\n' {
					i++
				}
			}
		case '(', '{':
			depth++
		case ')', '}':
			depth--
		}
	}
	if inString {
		depth++
	}
	return depth
}

func historyPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
