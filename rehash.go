package chtable

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// maxCapacity bounds the bucket count a table may grow to.
const maxCapacity = 1 << 30

// DoublePrime is the default growth function: the smallest prime at or
// above twice the capacity.
func DoublePrime(capacity int) int {
	if capacity > maxCapacity/2 {
		return maxCapacity + 1
	}
	return NextPrime(2 * capacity)
}

// NextPrime returns the smallest prime >= n
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// rehash moves every entry into a larger bucket array. Old buckets are
// visited in index order and chains front to back, and each entry is appended
// to its new chain, so entries that collide again keep their relative order.
// The old array is only replaced once the new one is complete.
func (t *Table[K, V]) rehash() error {
	from := len(t.buckets)
	to := t.growth(from)
	fields := logrus.Fields{"from": from, "to": to, "count": t.count}

	if to <= from {
		err := fmt.Errorf("%w: growth from %d to %d", ErrInvalidCapacity, from, to)
		t.log.WithFields(fields).WithError(err).Warn("rehash rejected")
		return err
	}

	buckets, err := allocBuckets[K, V](to)
	if err != nil {
		t.log.WithFields(fields).WithError(err).Warn("rehash failed")
		return fmt.Errorf("rehash: %w", err)
	}

	for _, chain := range t.buckets {
		for _, e := range chain {
			idx := int(e.hash % uint64(to))
			buckets[idx] = append(buckets[idx], e)
		}
	}

	t.buckets = buckets
	t.log.WithFields(fields).Debug("rehash complete")
	return nil
}
