package engine

import (
	"github.com/iamNilotpal/ignite/internal/index"
	"github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// buildIndex constructs the index.Index[K] named by config.Options.IndexVariant.
//
// IndexLongPrimitive and IndexIntPrimitive are backed by concrete,
// non-generic types (LongPrimitiveIndex over int64, IntPrimitiveIndex over
// int32) rather than by Index[K] directly, since their open-addressing
// arrays are only meaningful for one concrete key type. Bridging them into
// the Index[K] this Engine[K, V] was instantiated with is a runtime type
// assertion: it succeeds exactly when K is the primitive type the variant
// requires, and fails with a clear configuration error otherwise.
func buildIndex[K comparable, V any](config *Config[K, V]) (index.Index[K], error) {
	opts := config.Options

	switch opts.IndexVariant {
	case options.IndexHash:
		return index.NewHash[K](config.Logger, opts.InitialCapacity), nil

	case options.IndexSegmented:
		if config.KeyCodec == nil {
			return nil, errors.NewConfigurationValidationError(
				"keyCodec", "the segmented index variant hashes a key's encoded form and requires a KeyCodec",
			)
		}
		return index.NewSegmented[K](config.Logger, config.KeyCodec, opts.Segments, opts.InitialCapacity), nil

	case options.IndexLongPrimitive:
		long := index.NewLongPrimitive(config.Logger, opts.InitialCapacity)
		idx, ok := any(long).(index.Index[K])
		if !ok {
			return nil, errors.NewConfigurationValidationError(
				"indexVariant", "the long-primitive index variant only supports int64 keys",
			)
		}
		return idx, nil

	case options.IndexIntPrimitive:
		intIdx := index.NewIntPrimitive(config.Logger, opts.InitialCapacity)
		idx, ok := any(intIdx).(index.Index[K])
		if !ok {
			return nil, errors.NewConfigurationValidationError(
				"indexVariant", "the int-primitive index variant only supports int32 keys",
			)
		}
		return idx, nil

	default:
		return nil, errors.NewConfigurationValidationError("indexVariant", "unrecognized index variant")
	}
}
