// A command line tool to match, split, replace and tokenize text with
// lexpat patterns.
package main

import (
	"io"
	"log"
	"os"

	"github.com/coregx/lexpat"
	"github.com/spf13/cobra"
)

var rootCmd = struct {
	cobra.Command
	fold  bool
	multi bool
}{
	Command: cobra.Command{
		Use:   "lexpat",
		Short: "Match, split, replace and tokenize text with lexpat patterns",
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootCmd.fold, "fold", "f", false,
		"Match ASCII letters case-insensitively")
	rootCmd.PersistentFlags().BoolVarP(&rootCmd.multi, "multiline", "m", false,
		"Treat embedded line terminators as line boundaries")
}

func options() lexpat.Options {
	return lexpat.Options{CaseFold: rootCmd.fold, MultiLine: rootCmd.multi}
}

func compilePattern(pattern string) *lexpat.Pattern {
	pat, err := lexpat.CompileWithOptions(pattern, options())
	if err != nil {
		log.Fatal(err)
	}
	return pat
}

// readInput returns the contents of args[i], or stdin when the argument is
// absent.
func readInput(args []string, i int) string {
	if i >= len(args) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		return string(data)
	}
	data, err := os.ReadFile(args[i])
	if err != nil {
		log.Fatal(err)
	}
	return string(data)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
