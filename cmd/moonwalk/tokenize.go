package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moonwalk/internal/diagfmt"
	"moonwalk/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lua",
	Short: "Tokenize a Lua source file",
	Long:  `Tokenize breaks a Lua source file into its lossless token stream, trivia included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("trivia", false, "include whitespace and comment tokens")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached token streams for unchanged files")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	trivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	limit, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("moonwalk")
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
	}

	result, err := driver.TokenizeFile(filePath, limit, cache)
	if err != nil {
		return err
	}

	if result.Bag.Len() > 0 {
		opts, optErr := stderrPrettyOpts(cmd)
		if optErr != nil {
			return optErr
		}
		diagfmt.Pretty(os.Stderr, result.Bag.Items(), result.LineMap, result.Path, opts)
	}

	useColor, err := resolveColor(cmd, os.Stdout)
	if err != nil {
		return err
	}
	tokOpts := diagfmt.TokenOpts{Color: useColor, IncludeTrivia: trivia}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.LineMap, tokOpts)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, tokOpts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
