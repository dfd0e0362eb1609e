// Package storage owns the addressable byte space a store's allocator and
// index are carved out of: an anonymous mem.Region for OffHeap mode, or a
// file-backed mem.Region plus a persisted Header for Mmap mode.
//
// For Mmap mode it also implements the bootstrap/recovery flow: on open,
// determine whether the target file already holds a valid ignite store
// (read and validate its Header) or needs to be created fresh, then map
// exactly the bytes the configuration calls for.
package storage

import (
	"os"
	"path/filepath"

	"github.com/iamNilotpal/ignite/internal/mem"
	"github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/iamNilotpal/ignite/pkg/filesys"
	"github.com/iamNilotpal/ignite/pkg/options"
	"github.com/iamNilotpal/ignite/pkg/pathgen"
)

// NewOffHeap creates a Storage backed by an anonymous mapping capped at
// config.Options.MaxMemory. Nothing is persisted; Flush and Close never
// touch a filesystem.
func NewOffHeap(config *Config) (*Storage, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, errors.NewStorageError(nil, errors.ErrorCodeIO, "storage configuration is required")
	}

	config.Logger.Infow("initializing off-heap storage", "maxMemory", config.Options.MaxMemory)

	region, err := mem.NewAnonymous(config.Options.MaxMemory)
	if err != nil {
		return nil, err
	}

	return &Storage{
		mode:   options.ModeOffHeap,
		region: region,
		log:    config.Logger,
	}, nil
}

// OpenResult reports what OpenMmap discovered about the target file.
type OpenResult struct {
	Header *Header
	Fresh  bool // true if the file was just created and has no persisted index
}

// OpenMmap opens (creating if necessary) the backing file for an mmap
// store, maps its header and payload area, and reports whether the file
// was freshly created or already held a valid ignite store.
//
// For PathTemporary mode, opts.Path.Path is ignored and a fresh path is
// generated via pkg/pathgen under the OS temp directory; the file is always
// fresh in that case and is removed on Close. A relative persistent path is
// joined under opts.DataDir.
func OpenMmap(config *Config) (*Storage, *OpenResult, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, nil, errors.NewStorageError(nil, errors.ErrorCodeIO, "storage configuration is required")
	}
	opts := config.Options

	path := opts.Path.Path
	deleteOnClose := false
	if opts.Path.Kind == options.PathTemporary {
		path = pathgen.Generate("")
		deleteOnClose = true
	} else {
		if !filepath.IsAbs(path) {
			path = filepath.Join(opts.DataDir, path)
		}
		if err := filesys.CreateDir(filepath.Dir(path), 0755, true); err != nil {
			return nil, nil, errors.NewStorageIOError("create data directory", err)
		}
	}

	config.Logger.Infow("opening mmap storage", "path", path, "allocateSize", opts.AllocateSize)

	file, fresh, err := openOrCreate(path)
	if err != nil {
		return nil, nil, err
	}

	s := &Storage{
		mode:          options.ModeMmap,
		file:          file,
		path:          path,
		deleteOnClose: deleteOnClose,
		log:           config.Logger,
	}

	result := &OpenResult{Fresh: fresh}

	if !fresh {
		header, herr := s.readHeader()
		if herr != nil {
			_ = file.Close()
			return nil, nil, herr
		}
		result.Header = header
	}

	totalSize := uint64(HeaderSize) + opts.AllocateSize
	if err := filesys.ExtendFile(file, int64(totalSize)); err != nil {
		_ = file.Close()
		return nil, nil, errors.NewStorageIOError("extend mmap file", err)
	}

	region, err := mem.NewFile(file, totalSize)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	s.region = region

	config.Logger.Infow("mmap storage ready", "path", path, "fresh", fresh)
	return s, result, nil
}

func openOrCreate(path string) (*os.File, bool, error) {
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, false, errors.NewStorageIOError("open mmap file", err)
	}
	return file, fresh, nil
}

// Region exposes the backing mem.Region for the allocator and codecs to
// address into.
func (s *Storage) Region() *mem.Region { return s.region }

// PayloadOffset is where the payload area begins in region-relative terms.
// In OffHeap mode this is 0 (no header); in Mmap mode it is HeaderSize
// bytes in, past the persisted Header.
func (s *Storage) PayloadOffset() uint64 {
	if s.mode == options.ModeMmap {
		return HeaderSize
	}
	return 0
}

// Mode reports whether this Storage is OffHeap or Mmap backed.
func (s *Storage) Mode() options.Mode { return s.mode }

// Capacity reports the total addressable bytes in the region, including
// the header in Mmap mode.
func (s *Storage) Capacity() uint64 { return s.region.Length() }

func (s *Storage) readHeader() (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := s.file.ReadAt(buf, 0); err != nil {
		return nil, errors.NewStorageError(
			err, errors.ErrorCodeHeaderReadFailure, "failed to read mmap store header",
		).WithPath(s.path)
	}
	return decodeHeader(buf)
}

// WriteHeader persists h at the start of the file. Only meaningful in Mmap
// mode.
func (s *Storage) WriteHeader(h *Header) error {
	if _, err := s.file.WriteAt(h.encode(), 0); err != nil {
		return errors.NewStorageError(
			err, errors.ErrorCodeIO, "failed to write mmap store header",
		).WithPath(s.path)
	}
	return nil
}

// WriteIndexSection writes data at absolute file offset offset, growing
// the file first if necessary. Used to persist a serialized index past the
// end of the payload area.
func (s *Storage) WriteIndexSection(offset uint64, data []byte) error {
	if err := filesys.ExtendFile(s.file, int64(offset)+int64(len(data))); err != nil {
		return errors.NewStorageIOError("extend mmap file for index section", err)
	}
	if _, err := s.file.WriteAt(data, int64(offset)); err != nil {
		return errors.NewStorageError(
			err, errors.ErrorCodeIO, "failed to write index section",
		).WithPath(s.path)
	}
	return nil
}

// ReadIndexSection reads length bytes starting at absolute file offset
// offset, the inverse of WriteIndexSection.
func (s *Storage) ReadIndexSection(offset, length uint64) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := s.file.ReadAt(buf, int64(offset)); err != nil {
		return nil, errors.NewStorageError(
			err, errors.ErrorCodePayloadReadFailure, "failed to read index section",
		).WithPath(s.path)
	}
	return buf, nil
}

// Flush persists pending changes: msync for Mmap mode, a no-op for
// OffHeap.
func (s *Storage) Flush() error {
	return s.region.Flush()
}

// Close unmaps the region and, for Mmap mode, closes (and for temporary
// paths, deletes) the backing file. Idempotent.
func (s *Storage) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	if err := s.region.Close(); err != nil {
		return err
	}

	if s.file == nil {
		return nil
	}
	if err := s.file.Close(); err != nil {
		return errors.NewStorageIOError("close mmap file", err)
	}
	if s.deleteOnClose {
		if err := filesys.DeleteFile(s.path); err != nil {
			s.log.Warnw("failed to remove temporary mmap file", "path", s.path, "error", err)
		}
	}

	s.log.Infow("storage closed", "mode", s.mode.String())
	return nil
}
