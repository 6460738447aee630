// Package parse orchestrates lexing and extraction over files and
// directories. It is the layer CLI commands talk to: it knows about
// configuration, logging and progress reporting, while the actual parsing
// lives in the internal packages.
package parse

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/strucware/strut/internal/extract"
	"github.com/strucware/strut/internal/lexer"
	"github.com/strucware/strut/internal/model"
	"github.com/strucware/strut/internal/types"
	"github.com/strucware/strut/scanner"
)

// FileResult is the outcome of parsing one input file.
type FileResult struct {
	Filename    string
	Structure   *model.Structure
	Diagnostics []types.Diagnostic
	Stats       extract.Result
}

// Engine parses sources according to its configuration. An Engine is safe
// for concurrent use; each parse constructs fresh lexer and extractor
// instances.
type Engine struct {
	config Config
	cache  *Cache
}

// NewEngine builds an Engine from a configuration file path. An empty path
// selects the defaults.
func NewEngine(configPath string) (*Engine, error) {
	if configPath == "" {
		return &Engine{config: DefaultConfig()}, nil
	}
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return &Engine{config: config}, nil
}

// Config exposes the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.config
}

// RunSource parses in-memory content under the given display name.
func (e *Engine) RunSource(name string, src []byte) FileResult {
	var diags []types.Diagnostic
	sink := types.Collect(&diags)

	tokens := lexer.New(string(src), lexer.WithDiagnosticSink(sink)).Tokenize()

	st := model.New()
	stats := extract.New(
		extract.WithDiagnosticSink(sink),
		extract.WithRangeExpansion(*e.config.ExpandSupportRanges),
	).Extract(tokens, st)

	for i := range diags {
		diags[i].Filename = name
	}

	return FileResult{
		Filename:    name,
		Structure:   st,
		Diagnostics: diags,
		Stats:       stats,
	}
}

// EnableCache stores parse results under cacheDir so unchanged files are
// served from disk on repeat runs.
func (e *Engine) EnableCache(cacheDir string) error {
	cache, err := NewCache(cacheDir)
	if err != nil {
		return err
	}
	e.cache = cache
	return nil
}

// RunFile reads and parses a file from disk, consulting the cache when one
// is enabled.
func (e *Engine) RunFile(path string) (FileResult, error) {
	if e.cache != nil {
		if result, ok := e.cache.Get(path); ok {
			return result, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	result := e.RunSource(path, content)

	if e.cache != nil {
		// Caching is best effort; a failed write never fails the parse.
		_ = e.cache.Set(path, result)
	}
	return result, nil
}

// ProcessPaths parses every given path, descending into directories. File
// paths are parsed regardless of extension; inside directories only files
// matching the configured extensions are picked up.
func ProcessPaths(ctx context.Context, logger *zap.Logger, engine *Engine, paths []string) ([]FileResult, error) {
	var results []FileResult
	for _, path := range paths {
		pathResults, err := processPath(ctx, logger, engine, path)
		if err != nil {
			if logger != nil {
				logger.Error("processing path failed", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		results = append(results, pathResults...)
	}
	return results, nil
}

func processPath(ctx context.Context, logger *zap.Logger, engine *Engine, path string) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		result, err := engine.RunFile(path)
		if err != nil {
			return nil, err
		}
		return []FileResult{result}, nil
	}

	found, err := scanner.New(path, engine.config.Extensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	files := make([]string, 0, len(found))
	for _, f := range found {
		files = append(files, f.Path)
	}

	return processFiles(ctx, logger, engine, path, files)
}

// processFiles fans the files out over a bounded worker pool and shows a
// progress bar while they are parsed.
func processFiles(ctx context.Context, logger *zap.Logger, engine *Engine, label string, files []string) ([]FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(label),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	maxWorkers := engine.config.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	sem := make(chan struct{}, maxWorkers)

	var (
		mutex   sync.Mutex
		wg      sync.WaitGroup
		results []FileResult
	)

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := engine.RunFile(fp)
			if err != nil {
				if logger != nil {
					logger.Error("parsing file failed", zap.String("file", fp), zap.Error(err))
				}
			} else {
				mutex.Lock()
				results = append(results, result)
				mutex.Unlock()
			}
			bar.Add(1)
		}(filePath)
	}

	wg.Wait()
	fmt.Println()
	return results, nil
}

func (e *Engine) hasConfiguredExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, configured := range e.config.Extensions {
		if ext == configured {
			return true
		}
	}
	return false
}
