package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsconf/internal/adapters/cache"
	"go.trai.ch/tsconf/internal/core/domain"
)

func request(strategy domain.CacheStrategy, cwd string) domain.Request {
	return domain.Request{
		Cwd:           cwd,
		SearchName:    domain.DefaultSearchName,
		CacheStrategy: strategy,
	}
}

func TestStore_Never(t *testing.T) {
	s := cache.NewStore()
	req := request(domain.CacheNever, "/a")

	_, ok := s.Key(req)
	assert.False(t, ok)

	s.Set(req, &domain.NotFound{})
	_, ok = s.Get(req)
	assert.False(t, ok)
}

func TestStore_Always_IgnoresDirectory(t *testing.T) {
	s := cache.NewStore()
	res := &domain.Success{Path: "/a/tsconfig.json"}

	s.Set(request(domain.CacheAlways, "/a"), res)

	got, ok := s.Get(request(domain.CacheAlways, "/somewhere/else"))
	require.True(t, ok)
	assert.Same(t, res, got)
}

func TestStore_Directory_PerDirectory(t *testing.T) {
	s := cache.NewStore()
	res := &domain.Success{Path: "/a/tsconfig.json"}

	s.Set(request(domain.CacheDirectory, "/a"), res)

	got, ok := s.Get(request(domain.CacheDirectory, "/a"))
	require.True(t, ok)
	assert.Same(t, res, got)

	_, ok = s.Get(request(domain.CacheDirectory, "/b"))
	assert.False(t, ok)

	_, ok = s.Get(request(domain.CacheAlways, "/a"))
	assert.False(t, ok, "strategies must not share a store")
}

func TestStore_KeyIncludesIgnoreExtendsAndFilePath(t *testing.T) {
	s := cache.NewStore()

	plain := request(domain.CacheAlways, "/a")
	ignoring := plain
	ignoring.IgnoreExtends = true
	explicit := plain
	explicit.FilePath = "configs/app.json"

	keys := map[string]struct{}{}
	for _, req := range []domain.Request{plain, ignoring, explicit} {
		key, ok := s.Key(req)
		require.True(t, ok)
		keys[key] = struct{}{}
	}
	assert.Len(t, keys, 3)
}

func TestStore_Clear(t *testing.T) {
	s := cache.NewStore()
	s.Set(request(domain.CacheAlways, "/a"), &domain.NotFound{})
	s.Set(request(domain.CacheDirectory, "/a"), &domain.NotFound{})
	require.Equal(t, 1, s.Len(domain.CacheAlways))
	require.Equal(t, 1, s.Len(domain.CacheDirectory))

	s.Clear()

	assert.Equal(t, 0, s.Len(domain.CacheAlways))
	assert.Equal(t, 0, s.Len(domain.CacheDirectory))
	_, ok := s.Get(request(domain.CacheAlways, "/a"))
	assert.False(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := cache.NewStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := request(domain.CacheDirectory, "/dir")
			if i%2 == 0 {
				s.Set(req, &domain.NotFound{})
				return
			}
			s.Get(req)
		}(i)
	}
	wg.Wait()

	_, ok := s.Get(request(domain.CacheDirectory, "/dir"))
	assert.True(t, ok)
}

func TestStore_KeyFieldsDoNotCollide(t *testing.T) {
	s := cache.NewStore()

	a := domain.Request{CacheStrategy: domain.CacheAlways, SearchName: "a", FilePath: "x|true"}
	b := domain.Request{CacheStrategy: domain.CacheAlways, SearchName: "a|false|x", IgnoreExtends: true}

	keyA, ok := s.Key(a)
	require.True(t, ok)
	keyB, ok := s.Key(b)
	require.True(t, ok)
	assert.NotEqual(t, keyA, keyB)

	res := &domain.Success{Path: "/a/tsconfig.json"}
	s.Set(a, res)
	_, ok = s.Get(b)
	assert.False(t, ok)
}
