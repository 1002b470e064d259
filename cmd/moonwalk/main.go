package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"moonwalk/internal/diagfmt"
	"moonwalk/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "moonwalk",
	Short: "Lossless Lua 5.1 tokenizer and syntax tool",
	Long:  `Moonwalk parses Lua 5.1 source into a full-fidelity syntax tree and prints it back byte for byte`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor reads the persistent color flag and syncs the global
// color switch so "on" survives piped output.
func resolveColor(cmd *cobra.Command, out *os.File) (bool, error) {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	var use bool
	switch strings.TrimSpace(strings.ToLower(flag)) {
	case "", "auto":
		use = isTerminal(out)
	case "on":
		use = true
		color.NoColor = false
	case "off":
		use = false
		color.NoColor = true
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", flag)
	}
	return use, nil
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid --max-diagnostics value %d (must be non-negative)", n)
	}
	return n, nil
}

// stderrPrettyOpts builds the diagnostic rendering options shared by
// every subcommand that reports to stderr.
func stderrPrettyOpts(cmd *cobra.Command) (diagfmt.PrettyOpts, error) {
	useColor, err := resolveColor(cmd, os.Stderr)
	if err != nil {
		return diagfmt.PrettyOpts{}, err
	}
	return diagfmt.PrettyOpts{Color: useColor, Context: 2, ShowNotes: true}, nil
}
