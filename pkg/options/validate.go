package options

import "github.com/iamNilotpal/ignite/pkg/errors"

// Validate checks that the combination of fields in o is usable and returns
// a ValidationError describing the first problem found, or nil if the
// configuration is sound.
func (o *Options) Validate() error {
	switch o.Mode {
	case ModeOffHeap:
		if o.MaxMemory < MinMaxMemory {
			return errors.NewConfigurationValidationError(
				"maxMemory", "must be at least MinMaxMemory",
			)
		}
	case ModeMmap:
		if o.Path.Kind == PathPersistent && o.Path.Path == "" {
			return errors.NewConfigurationValidationError(
				"path", "persistent mmap mode requires a non-empty path",
			)
		}
		if o.AllocateSize < MinAllocateSize {
			return errors.NewConfigurationValidationError(
				"allocateSize", "must be at least MinAllocateSize",
			)
		}
	default:
		return errors.NewConfigurationValidationError("mode", "unrecognized store mode")
	}

	switch o.IndexVariant {
	case IndexHash, IndexSegmented, IndexLongPrimitive, IndexIntPrimitive:
	default:
		return errors.NewConfigurationValidationError("indexVariant", "unrecognized index variant")
	}

	if o.IndexVariant == IndexSegmented && o.Segments == 0 {
		return errors.NewConfigurationValidationError("segments", "must be greater than zero")
	}

	return nil
}
