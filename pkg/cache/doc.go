// Package cache provides a small in-process TTL store used by the caching
// client wrapper (sdk.WithCache). Entries expire lazily on read; there is no
// background sweeper. The store is per-process — for a cache shared across
// instances, put a distributed store behind the same usage sites.
package cache
