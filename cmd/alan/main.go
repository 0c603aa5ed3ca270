package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	alanlang "github.com/rjacobs31/alanlang"
)

const appName = "alan"

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Tokenizer tooling for the Alan language",
	Long: `Scans Alan source files into their token stream.

The scanner is the whole story here: there is no parser or interpreter
behind these commands, only the token stream they print.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(alanlang.Version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
