package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type LRUCacheTestSuite struct {
	suite.Suite
	now   time.Time
	cache *LRUCache[string]
}

func TestLRUCacheSuite(t *testing.T) {
	suite.Run(t, new(LRUCacheTestSuite))
}

func (s *LRUCacheTestSuite) SetupTest() {
	s.now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.cache = NewLRUCache[string](3, time.Minute)
	s.cache.now = func() time.Time { return s.now }
}

func (s *LRUCacheTestSuite) TestSetAndGet() {
	s.cache.Set("a", "alpha")

	value, ok := s.cache.Get("a")
	s.True(ok)
	s.Equal("alpha", value)

	_, ok = s.cache.Get("missing")
	s.False(ok)
}

func (s *LRUCacheTestSuite) TestSetOverwritesExistingKey() {
	s.cache.Set("a", "alpha")
	s.cache.Set("a", "again")

	value, ok := s.cache.Get("a")
	s.True(ok)
	s.Equal("again", value)
	s.Equal(1, s.cache.Size())
}

func (s *LRUCacheTestSuite) TestEvictsLeastRecentlyUsed() {
	s.cache.Set("a", "1")
	s.cache.Set("b", "2")
	s.cache.Set("c", "3")

	// touch a so b becomes the oldest
	_, _ = s.cache.Get("a")
	s.cache.Set("d", "4")

	_, ok := s.cache.Get("b")
	s.False(ok)
	_, ok = s.cache.Get("a")
	s.True(ok)
	s.Equal(3, s.cache.Size())
}

func (s *LRUCacheTestSuite) TestExpiredEntryIsDropped() {
	s.cache.Set("a", "alpha")
	s.now = s.now.Add(2 * time.Minute)

	_, ok := s.cache.Get("a")
	s.False(ok)
	s.Equal(0, s.cache.Size())
}

func (s *LRUCacheTestSuite) TestDeletePrefix() {
	s.cache.Set("analytics:category:1", "x")
	s.cache.Set("analytics:category:2", "y")
	s.cache.Set("analytics:dashboard", "z")

	removed := s.cache.DeletePrefix("analytics:category:")

	s.Equal(2, removed)
	_, ok := s.cache.Get("analytics:dashboard")
	s.True(ok)
}

func (s *LRUCacheTestSuite) TestCleanExpired() {
	s.cache.Set("a", "1")
	s.now = s.now.Add(30 * time.Second)
	s.cache.Set("b", "2")
	s.now = s.now.Add(45 * time.Second)

	s.Equal(1, s.cache.CleanExpired())
	s.Equal(1, s.cache.Size())

	manager := NewManager()
	manager.Register(s.cache)
	s.now = s.now.Add(time.Hour)
	s.Equal(1, manager.Sweep())
}
