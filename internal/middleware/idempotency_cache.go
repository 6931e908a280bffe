package middleware

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/guttosm/drone-fulfillment/internal/metrics"
)

const (
	defaultIdempotencyCapacity = 10000
	idempotencyShards          = 16
)

// cachedResponse is a completed response kept for replay.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type beginResult int

const (
	// beginNew means the caller owns the key and must complete or abandon it.
	beginNew beginResult = iota
	beginReplay
	beginInFlight
	beginMismatch
)

// idempotencyRecord is one key in the LRU list of a shard.
type idempotencyRecord struct {
	key         string
	fingerprint string
	response    *cachedResponse
	expiresAt   time.Time
	prev, next  *idempotencyRecord
}

type idempotencyShard struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*idempotencyRecord
	head     *idempotencyRecord
	tail     *idempotencyRecord
}

// IdempotencyStore remembers write requests by Idempotency-Key for a TTL.
// Each shard is a bounded LRU list so a flood of unique keys cannot grow
// memory without limit.
type IdempotencyStore struct {
	shards   []*idempotencyShard
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIdempotencyStore creates a store that keeps responses for ttl and at
// most capacity keys in total. A non-positive capacity uses the default.
func NewIdempotencyStore(ttl time.Duration, capacity int) *IdempotencyStore {
	if capacity <= 0 {
		capacity = defaultIdempotencyCapacity
	}
	perShard := capacity / idempotencyShards
	if perShard < 1 {
		perShard = 1
	}

	s := &IdempotencyStore{
		shards: make([]*idempotencyShard, idempotencyShards),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range s.shards {
		s.shards[i] = &idempotencyShard{
			capacity: perShard,
			items:    make(map[string]*idempotencyRecord, perShard),
		}
	}
	go s.cleanupLoop()
	return s
}

func (s *IdempotencyStore) shard(key string) *idempotencyShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%uint32(len(s.shards))]
}

// begin claims key for a request with the given body fingerprint, or reports
// why it cannot: a stored response to replay, a request still running, or a
// different body under the same key.
func (s *IdempotencyStore) begin(key, fingerprint string) (beginResult, *cachedResponse) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	now := s.now()
	if rec, ok := sh.items[key]; ok {
		if now.After(rec.expiresAt) {
			sh.removeEntry(rec)
		} else {
			sh.moveToFront(rec)
			switch {
			case rec.fingerprint != fingerprint:
				return beginMismatch, nil
			case rec.response == nil:
				return beginInFlight, nil
			default:
				return beginReplay, rec.response
			}
		}
	}

	rec := &idempotencyRecord{key: key, fingerprint: fingerprint, expiresAt: now.Add(s.ttl)}
	sh.items[key] = rec
	sh.addToFront(rec)
	if len(sh.items) > sh.capacity {
		sh.removeEntry(sh.tail)
		metrics.RecordIdempotency("evicted")
	}
	return beginNew, nil
}

// complete stores the response for a key claimed by begin.
func (s *IdempotencyStore) complete(key string, resp *cachedResponse) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if rec, ok := sh.items[key]; ok {
		rec.response = resp
		rec.expiresAt = s.now().Add(s.ttl)
	}
}

// abandon releases a key claimed by begin so the client may retry.
func (s *IdempotencyStore) abandon(key string) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if rec, ok := sh.items[key]; ok && rec.response == nil {
		sh.removeEntry(rec)
	}
}

// Len returns the number of keys held, including expired ones not yet swept.
func (s *IdempotencyStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += len(sh.items)
		sh.mu.Unlock()
	}
	return n
}

// Stop ends the background sweep. It is safe to call twice.
func (s *IdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *IdempotencyStore) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *IdempotencyStore) sweep() {
	now := s.now()
	for _, sh := range s.shards {
		sh.mu.Lock()
		for _, rec := range sh.items {
			if now.After(rec.expiresAt) {
				sh.removeEntry(rec)
			}
		}
		sh.mu.Unlock()
	}
}

func (sh *idempotencyShard) removeEntry(rec *idempotencyRecord) {
	delete(sh.items, rec.key)
	sh.unlink(rec)
}

func (sh *idempotencyShard) moveToFront(rec *idempotencyRecord) {
	if rec == sh.head {
		return
	}
	sh.unlink(rec)
	sh.addToFront(rec)
}

func (sh *idempotencyShard) addToFront(rec *idempotencyRecord) {
	rec.prev = nil
	rec.next = sh.head
	if sh.head != nil {
		sh.head.prev = rec
	}
	sh.head = rec
	if sh.tail == nil {
		sh.tail = rec
	}
}

func (sh *idempotencyShard) unlink(rec *idempotencyRecord) {
	if rec.prev != nil {
		rec.prev.next = rec.next
	} else {
		sh.head = rec.next
	}
	if rec.next != nil {
		rec.next.prev = rec.prev
	} else {
		sh.tail = rec.prev
	}
	rec.prev, rec.next = nil, nil
}
