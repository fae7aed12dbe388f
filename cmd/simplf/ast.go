package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Prints the syntax tree of a simplf source file",
	Long: `Prints the program as s-expressions after for loops have been
rewritten into blocks and while loops. Use --raw to see the tree as parsed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		tree, ok := newInterpreter().Tree(source, raw)
		if !ok {
			return errFailed
		}
		fmt.Print(tree)
		return nil
	},
}

func init() {
	astCmd.Flags().Bool("raw", false, "Print the tree before desugaring")
	rootCmd.AddCommand(astCmd)
}
