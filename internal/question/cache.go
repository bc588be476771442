package question

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
)

const (
	DefaultCacheTTL            = 10 * time.Minute
	DefaultCachePruneThreshold = 100
)

// Fingerprint - cache key for a generation request.
func Fingerprint(difficulty entity.Difficulty, previousQuestion string) string {
	sum := sha256.Sum256([]byte(string(difficulty) + "\x00" + previousQuestion))
	return hex.EncodeToString(sum[:])
}

type cacheEntry struct {
	question entity.Question
	storedAt time.Time
}

// Cache is an in-memory TTL cache shared by every session using one
// provider instance; reads and writes are safe for concurrent use.
// Pruning removes expired entries only, triggered when the live entry
// count crosses the threshold.
type Cache struct {
	mu             sync.RWMutex
	ttl            time.Duration
	pruneThreshold int
	entries        map[string]cacheEntry

	now func() time.Time
}

func NewCache(ttl time.Duration, pruneThreshold int) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if pruneThreshold <= 0 {
		pruneThreshold = DefaultCachePruneThreshold
	}

	return &Cache{
		ttl:            ttl,
		pruneThreshold: pruneThreshold,
		entries:        make(map[string]cacheEntry),
		now:            time.Now,
	}
}

func (that *Cache) Get(fingerprint string) (entity.Question, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	entry, ok := that.entries[fingerprint]
	if !ok || that.expired(entry) {
		return entity.Question{}, false
	}

	return entry.question, true
}

func (that *Cache) Set(fingerprint string, question entity.Question) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.entries[fingerprint] = cacheEntry{question: question, storedAt: that.now()}

	if len(that.entries) > that.pruneThreshold {
		that.pruneExpired()
	}
}

func (that *Cache) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.entries)
}

func (that *Cache) expired(entry cacheEntry) bool {
	return that.now().Sub(entry.storedAt) >= that.ttl
}

// pruneExpired - caller must hold the write lock.
func (that *Cache) pruneExpired() {
	for fingerprint, entry := range that.entries {
		if that.expired(entry) {
			delete(that.entries, fingerprint)
		}
	}
}
