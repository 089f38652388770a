package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	splitCmd.Run = runSplit
	splitCmd.Flags().BoolVarP(&splitCmd.coalesce, "coalesce", "c", false,
		"Suppress empty fragments between adjacent matches")
	rootCmd.AddCommand(&splitCmd.Command)
}

var splitCmd = struct {
	cobra.Command
	coalesce bool
}{
	Command: cobra.Command{
		Use:   "split PATTERN [FILE]",
		Short: "Print the fragments between matches of PATTERN, one per line",
		Args:  cobra.RangeArgs(1, 2),
	},
}

func runSplit(cmd *cobra.Command, args []string) {
	pat := compilePattern(args[0])
	text := readInput(args, 1)
	for _, frag := range pat.SplitAll(text, 0, len(text), splitCmd.coalesce) {
		fmt.Println(frag)
	}
}
