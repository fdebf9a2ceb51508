// Package cache provides the in-memory resolution result cache.
package cache

import (
	"path/filepath"
	"strconv"
	"sync"

	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
)

var _ ports.ResultCache = (*Store)(nil)

// Store holds one result map per caching strategy. Entries live until Clear;
// nothing is evicted automatically.
//
// Concurrent callers may race to fill the same key. The last writer wins,
// which is harmless because results are pure functions of the request.
type Store struct {
	mu     sync.RWMutex
	stores map[domain.CacheStrategy]map[string]domain.Result
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		stores: newStores(),
	}
}

func newStores() map[domain.CacheStrategy]map[string]domain.Result {
	return map[domain.CacheStrategy]map[string]domain.Result{
		domain.CacheAlways:    make(map[string]domain.Result),
		domain.CacheDirectory: make(map[string]domain.Result),
	}
}

// keySeparator cannot occur in a path or filename.
const keySeparator = "\x00"

// Key derives the cache key for req. It returns false for CacheNever and for
// unknown strategies.
//
// CacheAlways ignores the working directory; CacheDirectory includes it.
// The explicit file path takes part in both so that two different explicit
// files never share an entry.
func (s *Store) Key(req domain.Request) (string, bool) {
	var base string
	switch req.CacheStrategy {
	case domain.CacheAlways:
		base = req.SearchName
	case domain.CacheDirectory:
		base = filepath.Join(req.Cwd, req.SearchName)
	default:
		return "", false
	}

	key := base + keySeparator + strconv.FormatBool(req.IgnoreExtends)
	if req.FilePath != "" {
		key += keySeparator + req.FilePath
	}
	return key, true
}

// Get returns the result cached for req.
func (s *Store) Get(req domain.Request) (domain.Result, bool) {
	key, ok := s.Key(req)
	if !ok {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.stores[req.CacheStrategy][key]
	return res, ok
}

// Set stores res for req.
func (s *Store) Set(req domain.Request, res domain.Result) {
	key, ok := s.Key(req)
	if !ok || res == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stores[req.CacheStrategy][key] = res
}

// Clear empties every strategy store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stores = newStores()
}

// Len returns the number of cached entries for a strategy.
func (s *Store) Len(strategy domain.CacheStrategy) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.stores[strategy])
}
