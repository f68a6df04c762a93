package chtable

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// HashFunc maps a key to an unsigned hash value
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are the same key
type EqualFunc[K any] func(a, b K) bool

type entry[K, V any] struct {
	key   K
	value V
	hash  uint64
}

// Table is a separate-chaining hash table. Each bucket holds the chain of
// entries whose hash maps to it under the current capacity.
//
// A Table is not safe for concurrent use.
type Table[K, V any] struct {
	buckets [][]entry[K, V]
	count   int
	hash    HashFunc[K]
	equal   EqualFunc[K]
	log     logrus.FieldLogger
	growth  func(int) int
}

// New creates a table with capacity empty buckets
func New[K, V any](capacity int, hash HashFunc[K], equal EqualFunc[K], opts ...Option) (*Table[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if hash == nil || equal == nil {
		return nil, ErrNilStrategy
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buckets, err := allocBuckets[K, V](capacity)
	if err != nil {
		cfg.log.WithError(err).Warn("failed to allocate buckets")
		return nil, err
	}

	return &Table[K, V]{
		buckets: buckets,
		hash:    hash,
		equal:   equal,
		log:     cfg.log,
		growth:  cfg.growth,
	}, nil
}

// NewComparable creates a table whose keys are compared with ==
func NewComparable[K comparable, V any](capacity int, hash HashFunc[K], opts ...Option) (*Table[K, V], error) {
	return New[K, V](capacity, hash, Equal[K], opts...)
}

// Insert adds key with value, or replaces the value of an equal key already
// stored. It reports true when a new entry was added and false when an
// existing one was updated.
//
// If the insert would push the count above the capacity, the table grows
// first. A failed growth is returned as an error and leaves the table as it
// was.
func (t *Table[K, V]) Insert(key K, value V) (bool, error) {
	if t.count+1 > len(t.buckets) {
		if err := t.rehash(); err != nil {
			return false, fmt.Errorf("insert: %w", err)
		}
	}

	h := t.hash(key)
	idx := t.index(h)
	chain := t.buckets[idx]
	if i := t.find(chain, key); i >= 0 {
		chain[i].value = value
		return false, nil
	}

	t.buckets[idx] = append(chain, entry[K, V]{key: key, value: value, hash: h})
	t.count++
	return true, nil
}

// Remove deletes the entry for key and reports whether one was present.
// The capacity never shrinks.
func (t *Table[K, V]) Remove(key K) bool {
	idx := t.index(t.hash(key))
	chain := t.buckets[idx]
	i := t.find(chain, key)
	if i < 0 {
		return false
	}

	last := len(chain) - 1
	copy(chain[i:], chain[i+1:])
	chain[last] = entry[K, V]{}
	if last == 0 {
		t.buckets[idx] = nil
	} else {
		t.buckets[idx] = chain[:last]
	}
	t.count--
	return true
}

// Retrieve returns the value stored for key. The second result is false,
// and the value is the zero value, when the key is absent.
func (t *Table[K, V]) Retrieve(key K) (V, bool) {
	chain := t.buckets[t.index(t.hash(key))]
	if i := t.find(chain, key); i >= 0 {
		return chain[i].value, true
	}
	var zero V
	return zero, false
}

// RetrieveInto copies the value stored for key into out. On a miss it
// returns false and does not touch out.
func (t *Table[K, V]) RetrieveInto(key K, out *V) bool {
	v, ok := t.Retrieve(key)
	if ok {
		*out = v
	}
	return ok
}

// IsEmpty reports whether the table holds no entries
func (t *Table[K, V]) IsEmpty() bool {
	return t.count == 0
}

// Count returns the number of stored entries
func (t *Table[K, V]) Count() int {
	return t.count
}

// Capacity returns the current number of buckets
func (t *Table[K, V]) Capacity() int {
	return len(t.buckets)
}

// Clear removes every entry. The capacity is left unchanged.
func (t *Table[K, V]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.count = 0
}

func (t *Table[K, V]) index(h uint64) int {
	return int(h % uint64(len(t.buckets)))
}

func (t *Table[K, V]) find(chain []entry[K, V], key K) int {
	for i := range chain {
		if t.equal(chain[i].key, key) {
			return i
		}
	}
	return -1
}
