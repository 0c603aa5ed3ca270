package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	alanlang "github.com/rjacobs31/alanlang"
)

const (
	historyFile = ".alan_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("Alan %s token REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", alanlang.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively tokenize lines of Alan source",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runRepl())
	},
}

func runRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(strings.ToLower(line)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		toks, err := alanlang.NewLexer(line).Scan()
		if err != nil {
			fmt.Fprintln(os.Stderr, red(alanlang.WrapErrorWithSource(err, line).Error()))
			continue
		}
		for _, t := range toks {
			fmt.Println(colorizeToken(t))
		}
		ln.AppendHistory(line)
	}
}

func colorizeToken(t alanlang.Token) string {
	line := formatToken(t)
	if t.Type == alanlang.INVALID {
		return red(line)
	}
	return blue(line)
}
