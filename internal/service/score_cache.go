package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultScoreTTL is how long a blended score stays memoized per user.
const DefaultScoreTTL = 5 * time.Minute

// ScoreCache memoizes blended cumulative scores per user. It is an
// explicit object owned by the composition root and shared between the
// score service (reads) and the assessment orchestrator (invalidation
// after every successful assessment write). Entries tolerate staleness
// up to the TTL.
type ScoreCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uuid.UUID]scoreEntry
	now     func() time.Time
}

type scoreEntry struct {
	score     int
	expiresAt time.Time
}

// NewScoreCache creates a cache with the given TTL; ttl <= 0 falls back
// to DefaultScoreTTL.
func NewScoreCache(ttl time.Duration) *ScoreCache {
	if ttl <= 0 {
		ttl = DefaultScoreTTL
	}
	return &ScoreCache{
		ttl:     ttl,
		entries: make(map[uuid.UUID]scoreEntry),
		now:     time.Now,
	}
}

// Get returns the memoized score and whether it is still fresh.
func (c *ScoreCache) Get(userID uuid.UUID) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[userID]
	if !ok {
		return 0, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, userID)
		return 0, false
	}
	return entry.score, true
}

// Set memoizes the score for the cache TTL.
func (c *ScoreCache) Set(userID uuid.UUID, score int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = scoreEntry{score: score, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate drops the memoized score for a user. Called after every
// recorded assessment so the next read reflects the new history.
func (c *ScoreCache) Invalidate(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}
