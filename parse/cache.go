package parse

import (
	"crypto/md5"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const cacheFileName = "parse_cache.gob"

type fileMetadata struct {
	Hash         string
	LastModified time.Time
}

// CacheEntry holds one cached parse result together with the metadata used
// to decide staleness.
type CacheEntry struct {
	Metadata     fileMetadata
	Result       FileResult
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache stores parse results on disk keyed by file path. An entry is invalid
// once the file's content hash or modification time changes, or when the
// entry exceeds the configured maximum age.
type Cache struct {
	cacheDir string
	entries  map[string]CacheEntry
	mutex    sync.RWMutex
	maxAge   time.Duration
}

// NewCache opens or creates a cache under cacheDir.
func NewCache(cacheDir string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	cache := &Cache{
		cacheDir: cacheDir,
		entries:  make(map[string]CacheEntry),
		maxAge:   24 * time.Hour,
	}

	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("loading cache: %w", err)
	}
	return cache, nil
}

func (c *Cache) load() error {
	file, err := os.Open(filepath.Join(c.cacheDir, cacheFileName))
	if os.IsNotExist(err) {
		return nil // no cache yet
	}
	if err != nil {
		return fmt.Errorf("opening cache file: %w", err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&c.entries); err != nil {
		return fmt.Errorf("decoding cache file: %w", err)
	}
	return nil
}

func (c *Cache) save() error {
	file, err := os.Create(filepath.Join(c.cacheDir, cacheFileName))
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(c.entries); err != nil {
		return fmt.Errorf("encoding cache file: %w", err)
	}
	return nil
}

// Set stores the parse result for filename.
func (c *Cache) Set(filename string, result FileResult) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	metadata, err := getFileMetadata(filename)
	if err != nil {
		return fmt.Errorf("getting file metadata: %w", err)
	}

	c.entries[filename] = CacheEntry{
		Metadata:     metadata,
		Result:       result,
		CreatedAt:    time.Now(),
		LastAccessed: time.Now(),
	}
	return c.save()
}

// Get returns the cached result for filename if it is still valid.
func (c *Cache) Get(filename string) (FileResult, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[filename]
	if !exists {
		return FileResult{}, false
	}

	if c.isEntryInvalid(filename, entry) {
		delete(c.entries, filename)
		return FileResult{}, false
	}

	entry.LastAccessed = time.Now()
	c.entries[filename] = entry
	return entry.Result, true
}

// SetMaxAge changes how long entries stay valid.
func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.maxAge = duration
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]CacheEntry)
	_ = c.save() // manual operation, ignore error
}

func (c *Cache) isEntryInvalid(filename string, entry CacheEntry) bool {
	if time.Since(entry.CreatedAt) > c.maxAge {
		return true
	}
	currentMetadata, err := getFileMetadata(filename)
	if err != nil || currentMetadata != entry.Metadata {
		return true
	}
	return false
}

func getFileMetadata(filename string) (fileMetadata, error) {
	file, err := os.Open(filename)
	if err != nil {
		return fileMetadata{}, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return fileMetadata{}, fmt.Errorf("hashing file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return fileMetadata{}, fmt.Errorf("stating file: %w", err)
	}

	return fileMetadata{
		Hash:         fmt.Sprintf("%x", hash.Sum(nil)),
		LastModified: info.ModTime(),
	}, nil
}
