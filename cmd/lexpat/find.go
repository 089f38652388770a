package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	findCmd.Run = runFind
	rootCmd.AddCommand(&findCmd.Command)
}

var findCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "find PATTERN [FILE]",
		Short: "Print every match of PATTERN, one per line with its offset",
		Args:  cobra.RangeArgs(1, 2),
	},
}

func runFind(cmd *cobra.Command, args []string) {
	pat := compilePattern(args[0])
	text := readInput(args, 1)
	for _, m := range pat.FindAll(text, 0, len(text)) {
		fmt.Printf("%d\t%s\n", m.Start, m.Text)
		for i, c := range m.Captures {
			fmt.Printf("\tcapture %d: %s\n", i+1, c)
		}
	}
}
