package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/coregx/lexpat"
	"github.com/coregx/lexpat/lexer"
	"github.com/spf13/cobra"
)

func init() {
	tokensCmd.Run = runTokens
	rootCmd.AddCommand(&tokensCmd.Command)
}

var tokensCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "tokens RULEFILE [FILE]",
		Short: "Tokenize the input with a rule file, printing line, name and text",
		Long: `Tokenize the input with a rule file, printing line, name and text.

The rule file holds one rule per line, tried in order:

   NAME PATTERN        emit a token for every match
   skip NAME PATTERN   discard matches (whitespace, comments)
   # ...               comment

Example:

   skip ws %s+
   skip nl %n+
   number %d+
   ident %a%w*
   op %p
`,
		Args: cobra.RangeArgs(1, 2),
	},
}

type token struct {
	name string
	text string
}

func runTokens(cmd *cobra.Command, args []string) {
	lx, err := loadRules(args[0])
	if err != nil {
		log.Fatal(err)
	}
	text := readInput(args, 1)

	ts := lx.Tokenize(text)
	for {
		tok, err := ts.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d\t%s\t%s\n", ts.Line(), tok.name, tok.text)
	}
}

func loadRules(path string) (*lexer.Lexer[token], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rules []lexer.Rule[token]
	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		skip := false
		if rest, ok := strings.CutPrefix(line, "skip "); ok {
			skip = true
			line = strings.TrimSpace(rest)
		}
		name, pattern, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%s:%d: want NAME PATTERN", path, lineno)
		}
		pattern = strings.TrimSpace(pattern)
		if skip {
			rules = append(rules, lexer.Skip[token](name, pattern))
			continue
		}
		rules = append(rules, lexer.Emit(name, pattern, func(m *lexpat.Match) token {
			return token{name: name, text: m.Text}
		}))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lexer.New(rules, options())
}
