package storage

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iamNilotpal/ignite/internal/mem"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// Storage binds a mem.Region to the file (if any) backing it, and owns the
// lifecycle of both: Flush persists, Close unmaps and, for a temporary
// mmap store, deletes the backing file.
//
// It deliberately knows nothing about keys, values, or indexes — those
// live one layer up in internal/engine, which is the only caller that
// understands K and V. Storage's job is purely "bytes in a region, plus
// the header bookkeeping an mmap-backed region needs to survive a
// restart."
type Storage struct {
	mode options.Mode

	region *mem.Region
	file   *os.File // nil in OffHeap mode
	path   string   // "" in OffHeap mode

	deleteOnClose bool
	log           *zap.SugaredLogger
	closed        atomic.Bool
}

// Config carries everything New and Open need beyond the mode-specific
// arguments: a logger, and the resolved options the caller validated.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}
