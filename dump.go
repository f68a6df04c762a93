package chtable

import (
	"bufio"
	"fmt"
	"io"
)

// Walk calls fn for each entry in bucket order, then chain order. It stops
// early if fn returns false. fn must not modify the table.
func (t *Table[K, V]) Walk(fn func(bucket int, hash uint64, key K, value V) bool) {
	for i, chain := range t.buckets {
		for _, e := range chain {
			if !fn(i, e.hash, e.key, e.value) {
				return
			}
		}
	}
}

// Dump writes one line per bucket listing the hash and value of every entry
// in its chain:
//
//	0 :{ }
//	1 :{ 9138724019 ; 3 }
//	2 :{ 1838710293 ; 1 7473492012 ; 2 }
func (t *Table[K, V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, chain := range t.buckets {
		fmt.Fprintf(bw, "%d :{ ", i)
		for _, e := range chain {
			fmt.Fprintf(bw, "%d ; %v ", e.hash, e.value)
		}
		if _, err := bw.WriteString("}\n"); err != nil {
			return fmt.Errorf("dump bucket %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// Stats summarizes the layout of a table
type Stats struct {
	Capacity     int
	Count        int
	LoadFactor   float64
	UsedBuckets  int
	LongestChain int
}

// Stats reports the current layout
func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Capacity:   len(t.buckets),
		Count:      t.count,
		LoadFactor: float64(t.count) / float64(len(t.buckets)),
	}
	for _, chain := range t.buckets {
		if len(chain) == 0 {
			continue
		}
		s.UsedBuckets++
		if len(chain) > s.LongestChain {
			s.LongestChain = len(chain)
		}
	}
	return s
}
