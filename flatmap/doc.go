// Package flatmap provides a generic ordered map stored in contiguous memory.
//
// Keys and values live in two parallel slices kept sorted by key, so lookups
// are binary searches and iteration is always in ascending key order — the
// trade-off against a hash map is O(n) inserts for O(log n) ordered lookups
// and cache-friendly scans. The zero value is ready to use.
package flatmap
