package options

const (
	// DefaultDataDir is the base directory used to resolve a relative
	// persistent mmap path when none is supplied.
	DefaultDataDir = "/var/lib/ignitedb"

	// MinMaxMemory is the smallest allowed OffHeap byte ceiling (1 MiB).
	MinMaxMemory uint64 = 1 * 1024 * 1024

	// DefaultMaxMemory is the default OffHeap byte ceiling (1 GiB).
	DefaultMaxMemory uint64 = 1 * 1024 * 1024 * 1024

	// MinAllocateSize is the smallest allowed Mmap backing file size (1 MiB).
	MinAllocateSize uint64 = 1 * 1024 * 1024

	// DefaultAllocateSize is the default Mmap backing file size (10 GiB).
	DefaultAllocateSize uint64 = 10 * 1024 * 1024 * 1024

	// DefaultSegments is the default shard count for IndexSegmented.
	DefaultSegments uint32 = 64

	// DefaultInitialCapacity is the default starting bucket/slot count.
	DefaultInitialCapacity uint32 = 16
)

// defaultOptions holds the baseline configuration every NewDefaultOptions
// call returns a copy of.
var defaultOptions = Options{
	Mode:            ModeOffHeap,
	MaxMemory:       DefaultMaxMemory,
	AllocateSize:    DefaultAllocateSize,
	IndexVariant:    IndexHash,
	Segments:        DefaultSegments,
	InitialCapacity: DefaultInitialCapacity,
	DataDir:         DefaultDataDir,
}

// NewDefaultOptions returns a fresh Options value populated with the
// package's default settings. Callers mutate it via OptionFunc values,
// never the shared defaultOptions.
func NewDefaultOptions() Options {
	return defaultOptions
}
