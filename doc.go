/*
Package fixedmap provides a fixed-capacity hash map with string keys that uses
separate chaining for collision resolution.

The number of buckets is chosen once, at construction, as the smallest power
of two strictly greater than the requested capacity, plus one. The map never
grows: once it holds capacity live entries, inserting a new key fails, while
overwriting an existing key still succeeds.

Basic usage:

	import "github.com/theflywheel/fixedmap"

	m, err := fixedmap.New[int](10)
	if err != nil {
		log.Fatal(err)
	}

	m.Set("foo", 1)

	if v, ok := m.Get("foo"); ok {
		fmt.Println("Value:", v)
	}

	old, ok := m.Delete("foo")
	fmt.Println(old, ok, m.Load()) // 1 true 0

Features:

  - Fixed bucket array, allocated once
  - Separate chaining; each bucket keeps insertion order
  - xxHash (64-bit) for slot selection
  - Load factor relative to the declared capacity, not the bucket count
  - Deleted entries are removed from their bucket, no tombstones

Implementation Details:

A Map is a slice of buckets, each a slice of key/value entries. Set, Get and
Delete hash the key, pick bucket hash%slots and scan it linearly. Set looks
for an existing key before applying the capacity limit, so replacing a value
never fails.

A Map is not safe for concurrent use. Guard every call with a single
sync.Mutex when sharing one between goroutines.
*/
package fixedmap
