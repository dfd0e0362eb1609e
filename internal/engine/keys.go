package engine

import (
	"fmt"
	"math"

	"github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// validateKey rejects the reserved sentinel keys LongPrimitiveIndex and
// IntPrimitiveIndex forbid as user keys: 0 and the type's minimum value,
// for both variants. Neither index checks this itself — Put/PutAndGetOld
// has no error return on that interface — so the engine is the only layer
// that can reject these before they reach the index.
func (e *Engine[K, V]) validateKey(key K) error {
	switch e.options.IndexVariant {
	case options.IndexLongPrimitive:
		if k, ok := any(key).(int64); ok {
			switch k {
			case 0:
				return errors.NewInvalidKeyError(fmt.Sprint(key), "0 is reserved as a sentinel key for the long-primitive index")
			case math.MinInt64:
				return errors.NewInvalidKeyError(fmt.Sprint(key), "math.MinInt64 is reserved as a sentinel key for the long-primitive index")
			}
		}
	case options.IndexIntPrimitive:
		if k, ok := any(key).(int32); ok {
			switch k {
			case 0:
				return errors.NewInvalidKeyError(fmt.Sprint(key), "0 is reserved as a sentinel key for the int-primitive index")
			case math.MinInt32:
				return errors.NewInvalidKeyError(fmt.Sprint(key), "math.MinInt32 is reserved as a sentinel key for the int-primitive index")
			}
		}
	}
	return nil
}
