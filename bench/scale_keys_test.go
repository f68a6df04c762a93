// Package chtable_test provides scale benchmarks for the chained hash table.
//
// It measures:
//   - Insertion performance, including the cost of repeated growth
//   - Random and sequential lookup performance
//   - Chain shape (load factor and longest chain) once all keys are in
package chtable_test

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/theflywheel/chtable"
)

// getMemoryUsage returns the current memory stats as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// BenchmarkScaleKeys inserts numeric keys into a table that starts with a
// single bucket, then looks every key up again.
//
// Metrics reported:
//   - insert_keys/s: keys inserted per second
//   - random_lookups/s: lookups per second in a scattered order
//   - sequential_lookups/s: lookups per second in insertion order
//   - longest_chain: length of the longest chain after the last insert
func BenchmarkScaleKeys(b *testing.B) {
	for _, numKeys := range []int{10_000, 1_000_000} {
		b.Run(fmt.Sprintf("Keys_%d", numKeys), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				runScale(b, numKeys)
			}
		})
	}
}

func runScale(b *testing.B, numKeys int) {
	b.Helper()
	runtime.GC()

	tbl, err := chtable.NewComparable[uint64, uint64](1, chtable.Uint64)
	if err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}

	writeStart := time.Now()
	for i := 0; i < numKeys; i++ {
		if _, err := tbl.Insert(uint64(i), uint64(i)); err != nil {
			b.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}
	writeTime := time.Since(writeStart)

	randomReadStart := time.Now()
	for i := 0; i < numKeys; i++ {
		keyID := uint64((i*31 + 17) % numKeys)
		val, found := tbl.Retrieve(keyID)
		if !found {
			b.Fatalf("Random key %d not found", keyID)
		}
		if val != keyID {
			b.Fatalf("Value mismatch for random key %d: got %d", keyID, val)
		}
	}
	randomReadTime := time.Since(randomReadStart)

	seqReadStart := time.Now()
	for i := 0; i < numKeys; i++ {
		if _, found := tbl.Retrieve(uint64(i)); !found {
			b.Fatalf("Key %d not found", i)
		}
	}
	seqReadTime := time.Since(seqReadStart)

	stats := tbl.Stats()
	b.ReportMetric(float64(numKeys)/writeTime.Seconds(), "insert_keys/s")
	b.ReportMetric(float64(numKeys)/randomReadTime.Seconds(), "random_lookups/s")
	b.ReportMetric(float64(numKeys)/seqReadTime.Seconds(), "sequential_lookups/s")
	b.ReportMetric(float64(stats.LongestChain), "longest_chain")
	b.Logf("%d keys in %d buckets (load %.2f). %s",
		stats.Count, stats.Capacity, stats.LoadFactor, getMemoryUsage())
}

func BenchmarkInsert(b *testing.B) {
	tbl, err := chtable.NewComparable[int, int](1024, chtable.Int)
	if err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tbl.Insert(i, i); err != nil {
			b.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}
}

func BenchmarkRetrieve(b *testing.B) {
	const numKeys = 100_000
	tbl, err := chtable.NewComparable[int, int](numKeys, chtable.Int)
	if err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}
	for i := 0; i < numKeys; i++ {
		tbl.Insert(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := tbl.Retrieve(i % numKeys); !found {
			b.Fatalf("Key %d not found", i%numKeys)
		}
	}
}
