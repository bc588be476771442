package question

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
)

func TestFingerprint(t *testing.T) {
	t.Run("Same inputs yield the same fingerprint", func(t *testing.T) {
		assert.Equal(t,
			Fingerprint(entity.DifficultyEasy, "previous"),
			Fingerprint(entity.DifficultyEasy, "previous"),
		)
	})

	t.Run("Different difficulty or previous question changes the fingerprint", func(t *testing.T) {
		base := Fingerprint(entity.DifficultyEasy, "previous")

		assert.NotEqual(t, base, Fingerprint(entity.DifficultyHard, "previous"))
		assert.NotEqual(t, base, Fingerprint(entity.DifficultyEasy, "other"))
	})
}

func TestCache_SetGet(t *testing.T) {
	t.Run("Store then retrieve returns an equal question", func(t *testing.T) {
		// Given: a cache and a question
		cache := NewCache(DefaultCacheTTL, DefaultCachePruneThreshold)
		question := entity.Question{Text: "What is your favorite food?", Category: "easy"}
		fingerprint := Fingerprint(entity.DifficultyEasy, "")

		// When: storing and immediately retrieving
		cache.Set(fingerprint, question)
		got, ok := cache.Get(fingerprint)

		// Then: the same question comes back
		require.True(t, ok)
		assert.Equal(t, question, got)
	})

	t.Run("Unknown fingerprint misses", func(t *testing.T) {
		cache := NewCache(DefaultCacheTTL, DefaultCachePruneThreshold)

		_, ok := cache.Get("nope")

		assert.False(t, ok)
	})
}

func TestCache_TTLExpiry(t *testing.T) {
	// Given: a cache with a controllable clock
	cache := NewCache(10*time.Minute, DefaultCachePruneThreshold)
	now := time.Now()
	cache.now = func() time.Time { return now }

	fingerprint := Fingerprint(entity.DifficultyEasy, "")
	cache.Set(fingerprint, entity.Question{Text: "q"})

	// When: just under the TTL has passed
	now = now.Add(10*time.Minute - time.Second)
	_, ok := cache.Get(fingerprint)

	// Then: still a hit
	assert.True(t, ok)

	// When: the TTL has fully elapsed
	now = now.Add(2 * time.Second)
	_, ok = cache.Get(fingerprint)

	// Then: the entry is gone
	assert.False(t, ok)
}

func TestCache_PruneRemovesOnlyExpiredEntries(t *testing.T) {
	// Given: a cache with a low prune threshold and a controllable clock
	cache := NewCache(10*time.Minute, 3)
	now := time.Now()
	cache.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		cache.Set(fmt.Sprintf("old-%d", i), entity.Question{Text: "old"})
	}

	// When: the old entries expire and new inserts cross the threshold
	now = now.Add(11 * time.Minute)
	cache.Set("fresh-1", entity.Question{Text: "fresh"})
	cache.Set("fresh-2", entity.Question{Text: "fresh"})

	// Then: expired entries were pruned, live ones kept
	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get("fresh-1")
	assert.True(t, ok)
	_, ok = cache.Get("old-0")
	assert.False(t, ok)
}
