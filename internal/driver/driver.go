// Package driver walks the input paths, parses every source file into
// scopes and dispatches registered scope handlers, files in parallel.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sirkon/sysfirst/internal/config"
	"github.com/sirkon/sysfirst/internal/diag"
	"github.com/sirkon/sysfirst/internal/directive"
	"github.com/sirkon/sysfirst/internal/scopes"
	"github.com/sirkon/sysfirst/internal/source"
)

// sourceExt is the extension of files picked up from directories.
// Explicitly listed files are taken as is.
const sourceExt = ".cs"

// Result is everything one run produced: the registered files, the
// sorted diagnostics and per-file scope indexes for rendering.
type Result struct {
	Files *source.FileSet
	Bag   *diag.Bag

	indexes map[source.FileID]*scopes.Index
}

// ScopeAt returns the innermost scope covering the span start, nil when
// the file is unknown.
func (r *Result) ScopeAt(sp source.Span) *directive.Scope {
	idx, ok := r.indexes[sp.File]
	if !ok {
		return nil
	}

	return idx.ByOffset(sp.Start)
}

// Run checks every source file reachable from paths with the handlers
// of reg.
//
// Files are read up front, then parsed and checked concurrently: a scan
// is a pure function of one file's content, so workers share nothing
// but the collected output.
func Run(ctx context.Context, paths []string, cfg *config.Config, reg Registry) (*Result, error) {
	files, err := collectFiles(paths, cfg)
	if err != nil {
		return nil, fmt.Errorf("collect source files: %w", err)
	}

	fset := source.NewFileSet()
	loaded := make([]*source.File, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read source file: %w", err)
		}

		loaded = append(loaded, fset.AddFile(path, data))
	}

	res := &Result{
		Files:   fset,
		Bag:     diag.NewBag(),
		indexes: make(map[source.FileID]*scopes.Index, len(loaded)),
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.EffectiveJobs())

	for _, f := range loaded {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			bag := diag.NewBag()
			idx := scopes.NewIndex()
			rep := diag.BagReporter{Bag: bag}

			for _, sc := range directive.ParseFile(f) {
				idx.Add(sc)
				reg.dispatch(sc, rep)
			}

			mu.Lock()
			res.Bag.Merge(bag)
			res.indexes[f.ID] = idx
			mu.Unlock()

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("check files: %w", err)
	}

	res.Bag.Sort()

	return res, nil
}

func collectFiles(paths []string, cfg *config.Config) ([]string, error) {
	var out []string
	seen := map[string]bool{}

	add := func(path string) {
		if seen[path] || cfg.Skipped(path) {
			return
		}
		seen[path] = true
		out = append(out, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(sub string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(sub), sourceExt) {
				add(sub)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	sort.Strings(out)

	return out, nil
}
