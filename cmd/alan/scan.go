package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	alanlang "github.com/rjacobs31/alanlang"
)

var (
	flagJSON      bool
	flagNoLexeme  bool
	flagNoLiteral bool
)

func init() {
	scanCmd.Flags().BoolVar(&flagJSON, "json", false, "emit NDJSON: one JSON object per token")
	scanCmd.Flags().BoolVar(&flagNoLexeme, "no-lexeme", false, "hide raw lexeme in output")
	scanCmd.Flags().BoolVar(&flagNoLiteral, "no-literal", false, "hide parsed literal in output")
}

var scanCmd = &cobra.Command{
	Use:   "scan [file ...]",
	Short: "Tokenize Alan source and print the token stream",
	Long:  `Tokenize the given files (or stdin when none are given) and print one token per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			if err := scanReader(cmd.OutOrStdout(), os.Stdin, "stdin"); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}

		exit := 0
		for _, path := range args {
			src, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
				exit = 1
				continue
			}
			if err := scanSource(cmd.OutOrStdout(), string(src), path); err != nil {
				fmt.Fprintln(os.Stderr, err)
				exit = 1
			}
		}
		os.Exit(exit)
	},
}

func scanReader(w io.Writer, r io.Reader, name string) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return scanSource(w, string(src), name)
}

func scanSource(w io.Writer, src, name string) error {
	toks, err := alanlang.NewLexer(src).Scan()
	if err != nil {
		return alanlang.WrapErrorWithName(err, name, src)
	}

	if flagJSON {
		enc := json.NewEncoder(w)
		for _, t := range toks {
			out := toOutToken(name, t)
			if flagNoLexeme {
				out.Lexeme = ""
			}
			if flagNoLiteral {
				out.Literal = nil
			}
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
		}
		return nil
	}

	if name != "" {
		fmt.Fprintf(w, "== %s ==\n", name)
	}
	for _, t := range toks {
		fmt.Fprintln(w, formatToken(t))
	}
	return nil
}

func formatToken(t alanlang.Token) string {
	parts := []string{
		fmt.Sprintf("%4d:%-3d", t.Line, t.Col),
		fmt.Sprintf("%-13s", t.Type),
	}
	if !flagNoLexeme {
		parts = append(parts, fmt.Sprintf("lexeme=%q", t.Lexeme))
	}
	if !flagNoLiteral && t.Literal != nil {
		parts = append(parts, fmt.Sprintf("literal=%#v", t.Literal))
	}
	return strings.Join(parts, "  ")
}

type outToken struct {
	File    string      `json:"file,omitempty"`
	Type    string      `json:"type"`
	Lexeme  string      `json:"lexeme,omitempty"`
	Literal interface{} `json:"literal,omitempty"`
	Line    int         `json:"line"`
	Col     int         `json:"col"`
}

func toOutToken(file string, t alanlang.Token) outToken {
	return outToken{
		File:    file,
		Type:    t.Type.String(),
		Lexeme:  t.Lexeme,
		Literal: t.Literal,
		Line:    t.Line,
		Col:     t.Col,
	}
}
