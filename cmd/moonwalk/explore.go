package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"moonwalk/internal/diagfmt"
	"moonwalk/internal/driver"
	"moonwalk/internal/explore"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [flags] file.lua",
	Short: "Browse the statement outline of a Lua file",
	Long:  `Explore opens a scrollable outline of every statement in the file. Without a terminal it prints the outline instead`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExplore,
}

func init() {
	exploreCmd.Flags().String("ui", "auto", "interactive viewer (auto|on|off)")
}

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func runExplore(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	limit, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.ParseFile(filePath, limit)
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

	if !shouldUseTUI(mode) {
		return renderOutline(result, "pretty")
	}
	return explore.Run(result.Path, result.Tree, result.LineMap)
}
