/*
Package chtable provides a generic hash table that resolves collisions by
separate chaining.

Table is parameterized by its key and value types. The hash function and the
key equality predicate are supplied by the caller, so any key type can be
stored without implementing an interface.

Basic usage:

	import "github.com/theflywheel/chtable"

	// Create a table with 16 buckets, hashing string keys with xxhash
	t, err := chtable.NewComparable[string, int](16, chtable.String)
	if err != nil {
		log.Fatal(err)
	}

	// Insert data; the result reports whether the key was new
	added, err := t.Insert("alice", 42)

	// Retrieve data
	v, ok := t.Retrieve("alice")
	if ok {
		fmt.Println("Value:", v)
	}

Composite keys supply their own strategies:

	type acctKey struct {
		name   string
		number int
	}

	hash := func(k acctKey) uint64 {
		return chtable.Combine(chtable.String(k.name), chtable.Int(k.number))
	}
	t, err := chtable.NewComparable[acctKey, float64](23, hash)

Features:

  - Generic keys and values with injectable hash and equality functions
  - Each bucket holds an insertion-ordered chain of entries
  - Insert updates the value of an existing key in place
  - Automatic growth when an insert would push the load factor above 1.0
  - Deterministic structural dumps for diagnostics
  - Optional logrus tracing of rehashes

Implementation Details:

The table keeps a slice of buckets, each bucket a slice of entries. An entry
stores its key, its value and the full hash of its key. The bucket for a key
is its hash modulo the number of buckets.

Before an insert that would make the entry count exceed the bucket count, the
table grows to the smallest prime at least twice its capacity and every entry
is redistributed against the new capacity. Removal never shrinks the table,
and Clear keeps the current capacity.

Tables are not safe for concurrent use.
*/
package chtable
