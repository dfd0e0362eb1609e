// Package ignite provides a high-performance key/value store built on
// off-heap and memory-mapped storage instead of the Go heap and garbage
// collector. It combines an in-memory index (one of four variants, selected
// via pkg/options) with values living in an anonymous mapping (OffHeap
// mode, bounded by a configured maximum) or a memory-mapped file (Mmap
// mode, persisted across restarts). It is designed for applications that
// want predictable latency on large working sets without GC pressure —
// caching layers, session stores, and other in-memory-shaped workloads that
// have outgrown what the Go heap handles comfortably.
package ignite

import (
	"github.com/iamNilotpal/ignite/internal/codec"
	"github.com/iamNilotpal/ignite/internal/engine"
	"github.com/iamNilotpal/ignite/pkg/logger"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// Instance is an open Ignite store, keyed by K and valued by V. It
// encapsulates the core engine responsible for data handling and the
// configuration options for this specific store instance.
//
// Instance is the primary entry point for interacting with an Ignite
// store, providing methods for setting, getting, removing, and counting
// key/value pairs.
type Instance[K comparable, V any] struct {
	engine  *engine.Engine[K, V] // The underlying database engine handling read/write operations.
	options *options.Options     // Configuration options applied to this store instance.
}

// Codecs bundles the key and value codecs a store needs. KeyCodec may be
// left nil for an OffHeap store using IndexHash, IndexLongPrimitive, or
// IndexIntPrimitive; it is required for IndexSegmented and for any Mmap
// store, which persists keys into its index section on Close.
type Codecs[K comparable, V any] struct {
	KeyCodec   codec.KeyCodec[K]
	ValueCodec codec.ValueCodec[V]
}

// Open creates and initializes a new Ignite store instance for the given
// service name, using codecs to size, encode, and decode keys and values.
func Open[K comparable, V any](service string, codecs Codecs[K, V], opts ...options.OptionFunc) (*Instance[K, V], error) {
	// Initialize a logger for the given service.
	log := logger.New(service)

	// Initialize default options.
	defaultOpts := options.NewDefaultOptions()

	// Apply any provided functional options to override defaults.
	if len(opts) > 0 {
		for _, opt := range opts {
			opt(&defaultOpts)
		}
	}

	// Create a new internal engine with the initialized logger.
	eng, err := engine.New(&engine.Config[K, V]{
		Options:    &defaultOpts,
		Logger:     log,
		KeyCodec:   codecs.KeyCodec,
		ValueCodec: codecs.ValueCodec,
	})
	if err != nil {
		return nil, err
	}

	return &Instance[K, V]{engine: eng, options: &defaultOpts}, nil
}

// Put stores a key/value pair, returning the value it previously held if
// the key already existed.
func (i *Instance[K, V]) Put(key K, value V) (V, bool, error) {
	return i.engine.Put(key, value)
}

// Get retrieves the value associated with the given key.
func (i *Instance[K, V]) Get(key K) (V, bool, error) {
	return i.engine.Get(key)
}

// ContainsKey reports whether key currently has a value, without decoding it.
func (i *Instance[K, V]) ContainsKey(key K) (bool, error) {
	return i.engine.ContainsKey(key)
}

// Remove deletes a key/value pair from the store, returning the value it
// held if it existed.
func (i *Instance[K, V]) Remove(key K) (V, bool, error) {
	return i.engine.Remove(key)
}

// Clear removes every key/value pair, leaving the store usable but empty.
func (i *Instance[K, V]) Clear() error {
	return i.engine.Clear()
}

// Size reports the number of keys currently stored.
func (i *Instance[K, V]) Size() (int, error) {
	return i.engine.Size()
}

// IsEmpty reports whether the store currently holds no keys.
func (i *Instance[K, V]) IsEmpty() (bool, error) {
	return i.engine.IsEmpty()
}

// Flush persists pending changes: msync for an Mmap store, a no-op for
// OffHeap.
func (i *Instance[K, V]) Flush() error {
	return i.engine.Flush()
}

// Close gracefully shuts down the Ignite store instance, releasing all
// associated resources. For an Mmap store, it persists the index and
// allocator bookkeeping a later Open needs to resume where this session
// left off.
func (i *Instance[K, V]) Close() error {
	return i.engine.Close()
}
