package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"moonwalk/ast"
	"moonwalk/internal/diagfmt"
	"moonwalk/internal/driver"
	"moonwalk/internal/explore"
	"moonwalk/token"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lua",
	Short: "Parse a Lua source file and summarize its tree",
	Long:  `Parse builds the full-fidelity syntax tree for a Lua source file and reports what it found`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("outline", false, "print the statement outline instead of stats")
}

type parseStats struct {
	Path        string `json:"path"`
	Bytes       int    `json:"bytes"`
	Tokens      int    `json:"tokens"`
	Identifiers int    `json:"identifiers"`
	Numbers     int    `json:"numbers"`
	Strings     int    `json:"strings"`
	Comments    int    `json:"comments"`
	Statements  int    `json:"statements"`
	Functions   int    `json:"functions"`
	MaxDepth    int    `json:"max_depth"`
	RoundTrip   bool   `json:"round_trip"`
}

type outlineRow struct {
	Depth int    `json:"depth"`
	Label string `json:"label"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

// treeCounter tallies structure in a single traversal. Token kinds are
// counted off the raw stream instead, which sees each token once.
type treeCounter struct {
	ast.NopVisitor
	statements int
	functions  int
	depth      int
	maxDepth   int
}

func (c *treeCounter) VisitBlock(*ast.Block) {
	c.depth++
	if c.depth > c.maxDepth {
		c.maxDepth = c.depth
	}
}

func (c *treeCounter) VisitBlockEnd(*ast.Block)            { c.depth-- }
func (c *treeCounter) VisitStmt(*ast.Stmt)                 { c.statements++ }
func (c *treeCounter) VisitLastStmt(*ast.LastStmt)         { c.statements++ }
func (c *treeCounter) VisitFunctionBody(*ast.FunctionBody) { c.functions++ }

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	outline, err := cmd.Flags().GetBool("outline")
	if err != nil {
		return fmt.Errorf("failed to get outline flag: %w", err)
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

	if outline {
		return renderOutline(result, format)
	}
	return renderStats(result, format)
}

func renderOutline(result *driver.ParseResult, format string) error {
	lines := explore.Outline(result.Tree)

	switch format {
	case "pretty":
		for _, line := range lines {
			pos := result.LineMap.Resolve(line.Span.Start)
			fmt.Fprintf(os.Stdout, "%8s  %s%s\n", pos.String(), strings.Repeat("  ", line.Depth), line.Label)
		}
		return nil
	case "json":
		rows := make([]outlineRow, 0, len(lines))
		for _, line := range lines {
			pos := result.LineMap.Resolve(line.Span.Start)
			rows = append(rows, outlineRow{Depth: line.Depth, Label: line.Label, Line: pos.Line, Col: pos.Col})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderStats(result *driver.ParseResult, format string) error {
	stats := collectStats(result)

	switch format {
	case "pretty":
		p := message.NewPrinter(language.English)
		p.Fprintf(os.Stdout, "%s: %d bytes, %d tokens\n", stats.Path, stats.Bytes, stats.Tokens)
		p.Fprintf(os.Stdout, "  identifiers %d, numbers %d, strings %d, comments %d\n",
			stats.Identifiers, stats.Numbers, stats.Strings, stats.Comments)
		p.Fprintf(os.Stdout, "  statements %d, functions %d, max depth %d\n",
			stats.Statements, stats.Functions, stats.MaxDepth)
		verdict := "ok"
		if !stats.RoundTrip {
			verdict = "MISMATCH"
		}
		p.Fprintf(os.Stdout, "  round trip: %s\n", verdict)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func collectStats(result *driver.ParseResult) parseStats {
	stats := parseStats{
		Path:      result.Path,
		Bytes:     len(result.Source),
		RoundTrip: driver.RoundTrip(result),
	}

	arena := result.Tree.Tokens()
	stats.Tokens = arena.Len()
	for _, tok := range arena.All() {
		switch tok.Kind {
		case token.Identifier:
			stats.Identifiers++
		case token.Number:
			stats.Numbers++
		case token.StringLiteral:
			stats.Strings++
		case token.SingleLineComment, token.MultiLineComment:
			stats.Comments++
		}
	}

	var counter treeCounter
	counter.depth = -1
	ast.Visit(result.Tree, &counter)
	stats.Statements = counter.statements
	stats.Functions = counter.functions
	stats.MaxDepth = counter.maxDepth
	return stats
}
