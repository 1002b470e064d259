// Package driver loads Lua sources from disk and runs the scan and parse
// pipeline over them, one file at a time or whole trees in parallel.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"moonwalk"
	"moonwalk/ast"
	"moonwalk/diag"
	"moonwalk/lexer"
	"moonwalk/parser"
	"moonwalk/source"
	"moonwalk/token"
)

// TokenizeResult is the outcome of scanning one file.
type TokenizeResult struct {
	Path      string
	Source    string
	Tokens    []token.Token
	Bag       *diag.Bag
	LineMap   *source.LineMap
	FromCache bool
}

// ParseResult is the outcome of parsing one file.
type ParseResult struct {
	Path    string
	Source  string
	Tree    *ast.Ast
	Bag     *diag.Bag
	LineMap *source.LineMap
}

// Load reads one source file into memory.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	return string(data), nil
}

// TokenizeFile scans path into its complete token sequence. A non-nil
// cache is consulted first and fed after a clean scan; scans that raised
// diagnostics are never cached, so a cache hit implies a clean source.
func TokenizeFile(path string, maxDiagnostics int, cache *DiskCache) (*TokenizeResult, error) {
	src, err := Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	res := &TokenizeResult{
		Path:    path,
		Source:  src,
		Bag:     bag,
		LineMap: source.NewLineMap(src),
	}

	key := SourceKey(src)
	if cache != nil {
		if toks, ok, err := cache.Tokens(key); err == nil && ok {
			res.Tokens = toks
			res.FromCache = true
			return res, nil
		}
	}

	res.Tokens = lexer.Tokenize([]byte(src), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if cache != nil && !bag.HasErrors() {
		// A cold cache is not a failure; the scan already succeeded.
		_ = cache.PutTokens(key, res.Tokens)
	}
	return res, nil
}

// ParseFile loads and parses one file.
func ParseFile(path string, maxDiagnostics int) (*ParseResult, error) {
	src, err := Load(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(path, src, maxDiagnostics), nil
}

// ParseSource parses source text that is already in memory. The result
// always carries a tree; the bag says how trustworthy it is.
func ParseSource(path, src string, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.Tokenize([]byte(src), lexer.Options{Reporter: reporter})
	arena := token.NewArena(toks)
	tree := parser.Parse(arena, parser.Options{Reporter: reporter})
	return &ParseResult{
		Path:    path,
		Source:  src,
		Tree:    tree,
		Bag:     bag,
		LineMap: source.NewLineMap(src),
	}
}

// RoundTrip reports whether the parsed tree renders back to the exact
// source text it came from.
func RoundTrip(res *ParseResult) bool {
	return moonwalk.Print(res.Tree) == res.Source
}

// CheckOptions configures CheckFiles.
type CheckOptions struct {
	// Jobs bounds parallelism; zero or negative means GOMAXPROCS.
	Jobs           int
	MaxDiagnostics int
	// Cache, when non-nil, serves clean token streams and absorbs new ones.
	Cache *DiskCache
}

// CheckResult is the verdict for one file.
type CheckResult struct {
	Path      string
	Err       error // I/O failure; the pipeline never ran
	Bag       *diag.Bag
	LineMap   *source.LineMap
	Tokens    int
	RoundTrip bool
	FromCache bool
}

// OK reports whether the file loaded, parsed without errors, and rendered
// back byte-identical.
func (r *CheckResult) OK() bool {
	return r.Err == nil && !r.Bag.HasErrors() && r.RoundTrip
}

// CheckFiles parses every path and verifies the round-trip guarantee over
// a bounded worker pool. Results align with paths by index. The only
// error returned is context cancellation; per-file failures live in the
// results.
func CheckFiles(ctx context.Context, paths []string, opts CheckOptions) ([]CheckResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]CheckResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func checkOne(path string, opts CheckOptions) CheckResult {
	src, err := Load(path)
	if err != nil {
		return CheckResult{Path: path, Err: err, Bag: diag.NewBag(0)}
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	var toks []token.Token
	fromCache := false
	key := SourceKey(src)
	if opts.Cache != nil {
		if cached, ok, err := opts.Cache.Tokens(key); err == nil && ok {
			toks = cached
			fromCache = true
		}
	}
	if toks == nil {
		toks = lexer.Tokenize([]byte(src), lexer.Options{Reporter: reporter})
		if opts.Cache != nil && !bag.HasErrors() {
			_ = opts.Cache.PutTokens(key, toks)
		}
	}

	arena := token.NewArena(toks)
	tree := parser.Parse(arena, parser.Options{Reporter: reporter})

	return CheckResult{
		Path:      path,
		Bag:       bag,
		LineMap:   source.NewLineMap(src),
		Tokens:    len(toks),
		RoundTrip: moonwalk.Print(tree) == src,
		FromCache: fromCache,
	}
}

// ExpandPaths resolves command-line arguments into a flat file list:
// files pass through, directories expand to every .lua file under them
// in sorted order.
func ExpandPaths(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := listLuaFiles(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func listLuaFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".lua") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
