// Package assets resolves mesh asset references for robot descriptions.
package assets

import (
	"os"
	"path/filepath"
	"sync"
)

// Store resolves mesh filenames against the document directory and a set
// of extra search directories. It implements urdf.AssetResolver. The
// store never reads asset contents; it only checks existence.
type Store struct {
	searchPaths []string
	cache       *Cache
	mu          sync.RWMutex
}

// NewStore creates a store with the given extra search directories.
// The document's own directory is always searched first.
func NewStore(searchPaths ...string) *Store {
	return &Store{
		searchPaths: searchPaths,
		cache:       NewCache(),
	}
}

// AddSearchPath appends a directory to the search list.
func (s *Store) AddSearchPath(dir string) {
	s.mu.Lock()
	s.searchPaths = append(s.searchPaths, dir)
	s.mu.Unlock()
}

// Resolve checks whether filename exists relative to baseDir or any
// configured search directory, returning the first resolved path found.
func (s *Store) Resolve(baseDir, filename string) (string, bool) {
	key := baseDir + "\x00" + filename
	if path, ok := s.cache.Get(key); ok {
		return path, path != ""
	}

	s.mu.RLock()
	dirs := make([]string, 0, len(s.searchPaths)+1)
	dirs = append(dirs, baseDir)
	dirs = append(dirs, s.searchPaths...)
	s.mu.RUnlock()

	for _, dir := range dirs {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			s.cache.Set(key, path)
			return path, true
		}
	}

	// Negative result is cached too: parse passes often reference the
	// same missing asset repeatedly.
	s.cache.Set(key, "")
	return "", false
}

// Cache is a simple in-memory cache of resolved asset paths.
type Cache struct {
	data map[string]string
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]string),
	}
}

// Get retrieves a resolved path from cache.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return path, ok
}

// Set stores a resolved path in cache.
func (c *Cache) Set(key, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = path
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]string)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
