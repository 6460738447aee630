// Package scanner discovers structural input files under a directory tree.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultExtensions are the file extensions treated as structural input.
var DefaultExtensions = []string{".std", ".txt"}

// FileInfo identifies one discovered input file.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a root directory collecting files matching its extensions.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New returns a Scanner over rootDir. Without explicit extensions the
// defaults apply.
func New(rootDir string, extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the tree and returns the matching files. Stat work per file is
// fanned out; ordering of the result is unspecified.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var (
		files []FileInfo
		mutex sync.Mutex
		wg    sync.WaitGroup
	)

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if s.isInputFile(path) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				fileInfo := FileInfo{
					Path: path,
					Size: info.Size(),
				}
				mutex.Lock()
				files = append(files, fileInfo)
				mutex.Unlock()
			}()
		}
		return nil
	})

	wg.Wait()
	return files, err
}

func (s *Scanner) isInputFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
