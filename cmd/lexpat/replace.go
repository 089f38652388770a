package main

import (
	"fmt"

	"github.com/coregx/lexpat"
	"github.com/spf13/cobra"
)

func init() {
	replaceCmd.Run = runReplace
	replaceCmd.Flags().BoolVarP(&replaceCmd.first, "first", "1", false,
		"Replace only the first match")
	rootCmd.AddCommand(&replaceCmd.Command)
}

var replaceCmd = struct {
	cobra.Command
	first bool
}{
	Command: cobra.Command{
		Use:   "replace PATTERN REPLACEMENT [FILE]",
		Short: "Print the input with matches of PATTERN replaced",
		Args:  cobra.RangeArgs(2, 3),
	},
}

func runReplace(cmd *cobra.Command, args []string) {
	pat := compilePattern(args[0])
	text := readInput(args, 2)
	repl := func(*lexpat.Match) string { return args[1] }
	if replaceCmd.first {
		fmt.Print(pat.Replace(text, 0, len(text), repl))
		return
	}
	fmt.Print(pat.ReplaceAll(text, 0, len(text), repl))
}
