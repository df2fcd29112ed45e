// Package driver wires the phases together: it enumerates source files,
// runs lex/parse/sema/narrow over each of them in parallel, and caches
// per-file diagnostics on disk keyed by content hash.
package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/narrow"
	"narrowcheck/internal/parser"
	"narrowcheck/internal/sema"
	"narrowcheck/internal/source"
	"narrowcheck/internal/types"
)

// Options управляют обходом, параллелизмом и кэшированием.
type Options struct {
	MaxDiagnostics int
	Jobs           int
	Cache          *DiskCache // nil отключает кэш
}

// FileResult содержит результат проверки одного файла.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// ListSourceFiles expands a path into the sorted list of checkable files.
// A regular file is returned as-is; a directory is walked recursively for
// .c and .cc entries.
func ListSourceFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isSourceFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func isSourceFile(path string) bool {
	return strings.HasSuffix(path, ".c") || strings.HasSuffix(path, ".cc")
}

// CheckPaths checks every file under the given paths in parallel. The
// returned results follow the sorted file order regardless of which
// goroutine finished first; each file carries its own Bag.
func CheckPaths(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	var files []string
	seen := make(map[string]bool)
	for _, p := range paths {
		expanded, err := ListSourceFiles(p)
		if err != nil {
			return nil, nil, err
		}
		for _, f := range expanded {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	sort.Strings(files)

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Загрузка последовательная: FileSet не потокобезопасен на запись.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if replayCached(opts.Cache, file, bag) {
				results[i] = FileResult{Path: path, FileID: fileID, Bag: bag, FromCache: true}
				return nil
			}

			CheckFile(file, bag)
			storeCached(opts.Cache, file, bag)

			results[i] = FileResult{Path: path, FileID: fileID, Bag: bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// CheckFile runs the full pipeline over one loaded file, collecting
// diagnostics of every phase into bag.
func CheckFile(file *source.File, bag *diag.Bag) {
	reporter := diag.BagReporter{Bag: bag}

	builder := ast.NewBuilder(0)
	parser.ParseFile(file, builder, reporter)

	interner := types.NewInterner()
	result := sema.Check(builder, interner, reporter)
	narrow.CheckFile(builder, interner, result, reporter)
}
