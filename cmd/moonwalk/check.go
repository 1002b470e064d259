package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"moonwalk/internal/diagfmt"
	"moonwalk/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.lua|directory>...",
	Short: "Parse Lua files and verify they print back byte-identical",
	Long:  `Check parses every given file, reports diagnostics, and confirms the tree renders back to the exact input bytes`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("cache", false, "reuse cached token streams for unchanged files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	limit, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	paths, err := driver.ExpandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .lua files found")
	}

	opts := driver.CheckOptions{Jobs: jobs, MaxDiagnostics: limit}
	if useCache {
		opts.Cache, err = driver.OpenDiskCache("moonwalk")
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
	}

	results, err := driver.CheckFiles(cmd.Context(), paths, opts)
	if err != nil {
		return err
	}

	prettyOpts, err := stderrPrettyOpts(cmd)
	if err != nil {
		return err
	}
	useColor, err := resolveColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	okLabel := "ok"
	failLabel := "FAIL"
	if useColor {
		okLabel = color.New(color.FgGreen).Sprint(okLabel)
		failLabel = color.New(color.FgRed, color.Bold).Sprint(failLabel)
	}

	failed := 0
	for i := range results {
		r := &results[i]
		if r.OK() {
			fmt.Fprintf(os.Stdout, "%s %s\n", okLabel, r.Path)
			continue
		}
		failed++
		fmt.Fprintf(os.Stdout, "%s %s%s\n", failLabel, r.Path, failReason(r))
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		if r.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, r.Bag.Items(), r.LineMap, r.Path, prettyOpts)
		}
	}

	fmt.Fprintf(os.Stdout, "checked %d files: %d ok, %d failed\n", len(results), len(results)-failed, failed)
	if failed > 0 {
		// Verdicts are already printed; suppress cobra's usage echo.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func failReason(r *driver.CheckResult) string {
	switch {
	case r.Err != nil:
		return " (unreadable)"
	case r.Bag.HasErrors():
		return fmt.Sprintf(" (%d diagnostics)", r.Bag.Len())
	case !r.RoundTrip:
		return " (print mismatch)"
	default:
		return ""
	}
}
