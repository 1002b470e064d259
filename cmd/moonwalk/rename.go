package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moonwalk"
	"moonwalk/internal/diagfmt"
	"moonwalk/internal/driver"
	"moonwalk/source"
)

var renameCmd = &cobra.Command{
	Use:   "rename [flags] file.lua",
	Short: "Rename identifiers in a Lua source file",
	Long: `Rename rewrites matching identifier tokens while leaving every other
byte of the file untouched. Rules come from --from/--to, a TOML rules
file, or both; a flag rule overrides a file rule with the same from.`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().String("from", "", "identifier to rename")
	renameCmd.Flags().String("to", "", "replacement identifier")
	renameCmd.Flags().String("rules", "", "TOML file with [[rename]] entries")
	renameCmd.Flags().BoolP("write", "w", false, "rewrite the file in place instead of printing to stdout")
}

func runRename(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	from, err := cmd.Flags().GetString("from")
	if err != nil {
		return fmt.Errorf("failed to get from flag: %w", err)
	}
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	rulesPath, err := cmd.Flags().GetString("rules")
	if err != nil {
		return fmt.Errorf("failed to get rules flag: %w", err)
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}

	rules, err := gatherRules(from, to, rulesPath)
	if err != nil {
		return err
	}

	src, err := driver.Load(filePath)
	if err != nil {
		return err
	}

	out, count, err := renameSource(src, rules)
	if err != nil {
		var parseErr *moonwalk.Error
		if errors.As(err, &parseErr) {
			opts, optErr := stderrPrettyOpts(cmd)
			if optErr != nil {
				return optErr
			}
			diagfmt.Pretty(os.Stderr, parseErr.Diagnostics, source.NewLineMap(src), filePath, opts)
			cmd.SilenceUsage = true
			return fmt.Errorf("refusing to rename: %s has syntax errors", filePath)
		}
		return err
	}

	if !write {
		_, err = os.Stdout.WriteString(out)
		return err
	}

	if count == 0 {
		fmt.Fprintf(os.Stderr, "%s: no occurrences renamed\n", filePath)
		return nil
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(filePath); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(filePath, []byte(out), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	fmt.Fprintf(os.Stderr, "%s: renamed %d occurrences\n", filePath, count)
	return nil
}

// gatherRules merges the rules file with the flag pair. File rules load
// first so the flag pair wins when both name the same identifier.
func gatherRules(from, to, rulesPath string) ([]renameRule, error) {
	var rules []renameRule
	if rulesPath != "" {
		loaded, err := loadRenameRules(rulesPath)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	switch {
	case from != "" && to != "":
		rule := renameRule{From: from, To: to}
		if err := validateRule(rule); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	case from != "" || to != "":
		return nil, fmt.Errorf("--from and --to must be given together")
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("no rename rules given (use --from/--to or --rules)")
	}
	return rules, nil
}
