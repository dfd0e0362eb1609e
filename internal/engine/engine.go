// Package engine provides the core database engine implementation for the
// Ignite storage system.
//
// The engine serves as the central coordinator and entry point for all
// store operations. It orchestrates the interaction between four
// subsystems:
//   - codec: sizes, encodes, and decodes values (and, for variants that need
//     it, keys) at the byte level
//   - allocator: turns a byte-size request into an address inside a region
//   - index: maps keys to (address, size) locators, kept entirely in memory
//   - storage: owns the region (and, for Mmap mode, the backing file and
//     persisted header) the allocator and codecs address into
//
// Engine is generic over the store's key and value types, so the same
// orchestration logic serves every codec/index combination a caller wires
// together. It implements a thread-safe interface with proper lifecycle
// management: Close is idempotent and, in Mmap mode, persists the index and
// allocator bookkeeping a later Open needs to resume where this session left
// off.
package engine

import (
	stdErrors "errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iamNilotpal/ignite/internal/allocator"
	"github.com/iamNilotpal/ignite/internal/codec"
	"github.com/iamNilotpal/ignite/internal/index"
	"github.com/iamNilotpal/ignite/internal/storage"
	"github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// ErrEngineClosed is returned by every Engine method once Close has run.
var ErrEngineClosed = stdErrors.New("operation failed: cannot access closed engine")

// Engine binds a codec pair, an allocator, an index, and the storage they
// all address into, and coordinates the store's operations against them.
type Engine[K comparable, V any] struct {
	options *options.Options
	log     *zap.SugaredLogger

	storage   *storage.Storage
	allocator allocator.Allocator
	index     index.Index[K]

	keyCodec   codec.KeyCodec[K] // nil unless the index variant or Mmap persistence needs it
	valueCodec codec.ValueCodec[V]

	closed atomic.Bool
}

// Config carries everything New needs to build an Engine: the resolved
// options, a logger, and the codecs for this store's key and value types.
//
// KeyCodec is only required when Options.IndexVariant is IndexSegmented
// (which hashes a key's encoded form) or Options.Mode is ModeMmap (which
// needs to serialize keys into the persisted index section on Close). It is
// safe to leave nil for an OffHeap store using IndexHash, IndexLongPrimitive,
// or IndexIntPrimitive.
type Config[K comparable, V any] struct {
	Options    *options.Options
	Logger     *zap.SugaredLogger
	KeyCodec   codec.KeyCodec[K]
	ValueCodec codec.ValueCodec[V]
}

// New builds an Engine from config: it validates the configuration,
// constructs the index variant config.Options.IndexVariant names, and then
// either allocates a fresh OffHeap region or opens (creating if necessary)
// an Mmap-backed file, restoring a previously persisted index and allocator
// offset if the file already held one.
func New[K comparable, V any](config *Config[K, V]) (*Engine[K, V], error) {
	if config == nil || config.Options == nil || config.Logger == nil || config.ValueCodec == nil {
		return nil, errors.NewConfigurationValidationError(
			"config", "options, a logger, and a value codec are required",
		)
	}
	if err := config.Options.Validate(); err != nil {
		return nil, err
	}
	if config.Options.Mode == options.ModeMmap && config.KeyCodec == nil {
		return nil, errors.NewConfigurationValidationError(
			"keyCodec", "mmap mode persists keys into the index section on Close and requires a KeyCodec",
		)
	}

	idx, err := buildIndex(config)
	if err != nil {
		return nil, err
	}

	e := &Engine[K, V]{
		options:    config.Options,
		log:        config.Logger,
		index:      idx,
		keyCodec:   config.KeyCodec,
		valueCodec: config.ValueCodec,
	}

	storageConfig := &storage.Config{Options: config.Options, Logger: config.Logger}

	switch config.Options.Mode {
	case options.ModeOffHeap:
		store, err := storage.NewOffHeap(storageConfig)
		if err != nil {
			return nil, err
		}
		e.storage = store
		e.allocator = allocator.NewSlab(store.Region(), config.Options.MaxMemory)

	case options.ModeMmap:
		store, result, err := storage.OpenMmap(storageConfig)
		if err != nil {
			return nil, err
		}
		e.storage = store

		if result.Fresh {
			e.allocator = allocator.NewMmap(config.Options.AllocateSize)
		} else {
			if result.Header.IndexType != uint32(config.Options.IndexVariant) {
				_ = store.Close()
				return nil, errors.NewIndexError(
					nil, errors.ErrorCodeIncompatibleIndex,
					"persisted index variant does not match the configured one",
				).WithDetail("persistedIndexType", result.Header.IndexType).
					WithDetail("configuredIndexVariant", config.Options.IndexVariant.String())
			}
			if config.Options.IndexVariant == options.IndexSegmented &&
				result.Header.Segments != config.Options.Segments {
				_ = store.Close()
				return nil, errors.NewIndexError(
					nil, errors.ErrorCodeIncompatibleIndex,
					"persisted segment count does not match the configured one",
				).WithDetail("persistedSegments", result.Header.Segments).
					WithDetail("configuredSegments", config.Options.Segments)
			}

			e.allocator = allocator.RestoreMmap(config.Options.AllocateSize, result.Header.CurrentOffset)
			if err := e.restoreIndex(result.Header); err != nil {
				_ = store.Close()
				return nil, err
			}
		}
	}

	config.Logger.Infow(
		"engine ready",
		"mode", config.Options.Mode.String(),
		"indexVariant", config.Options.IndexVariant.String(),
	)
	return e, nil
}

// Flush persists pending changes: msync for Mmap mode, a no-op for OffHeap.
// It does not serialize the index — that only happens on Close, since a
// crash between Flush and the next write would otherwise leave a stale
// index pointing past freshly-overwritten payload bytes.
func (e *Engine[K, V]) Flush() error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	return e.storage.Flush()
}

// Close releases every resource the engine owns. In Mmap mode it first
// serializes the index and the allocator's bump offset into the store's
// header and index section, so a later Open can resume exactly where this
// session left off. Idempotent: a second Close returns ErrEngineClosed.
func (e *Engine[K, V]) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEngineClosed
	}

	if e.options.Mode == options.ModeMmap {
		if err := e.persistIndex(); err != nil {
			return err
		}
	}

	if err := e.index.Close(); err != nil && err != index.ErrIndexClosed {
		e.log.Warnw("index close reported an error", "error", err)
	}
	if err := e.allocator.Close(); err != nil {
		return err
	}
	return e.storage.Close()
}
