package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/ignite/internal/mem"
	"github.com/iamNilotpal/ignite/pkg/logger"
	"github.com/iamNilotpal/ignite/pkg/options"
)

func testConfig(t *testing.T, opts *options.Options) *Config {
	t.Helper()
	return &Config{Options: opts, Logger: logger.NewNop()}
}

func TestNewOffHeapAllocatesRegion(t *testing.T) {
	opts := options.NewDefaultOptions()
	opts.MaxMemory = 1 << 20
	s, err := NewOffHeap(testConfig(t, &opts))
	if err != nil {
		t.Fatalf("NewOffHeap: %v", err)
	}
	defer s.Close()

	if s.Mode() != options.ModeOffHeap {
		t.Fatalf("expected ModeOffHeap, got %v", s.Mode())
	}
	if s.Capacity() < opts.MaxMemory {
		t.Fatalf("expected capacity >= %d, got %d", opts.MaxMemory, s.Capacity())
	}
	if s.PayloadOffset() != 0 {
		t.Fatalf("expected a zero payload offset for OffHeap, got %d", s.PayloadOffset())
	}
}

func TestOpenMmapFreshThenRestore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.mmap")

	opts := options.NewDefaultOptions()
	opts.Mode = options.ModeMmap
	opts.AllocateSize = options.MinAllocateSize
	opts.Path = options.PathSpec{Kind: options.PathPersistent, Path: path}

	s, result, err := OpenMmap(testConfig(t, &opts))
	if err != nil {
		t.Fatalf("OpenMmap: %v", err)
	}
	if !result.Fresh {
		t.Fatal("expected a fresh file on first open")
	}

	mem.StoreInt64(s.Region().Address(s.PayloadOffset()), 777)

	header := &Header{Magic: Magic, Version: Version, IndexType: 1, EntryCount: 1, CurrentOffset: 8}
	if err := s.WriteHeader(header); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, result2, err := OpenMmap(testConfig(t, &opts))
	if err != nil {
		t.Fatalf("OpenMmap (restore): %v", err)
	}
	defer s2.Close()

	if result2.Fresh {
		t.Fatal("expected the second open to find an existing file")
	}
	if result2.Header == nil || result2.Header.CurrentOffset != 8 {
		t.Fatalf("expected restored header with CurrentOffset 8, got %+v", result2.Header)
	}
	if got := mem.LoadInt64(s2.Region().Address(s2.PayloadOffset())); got != 777 {
		t.Fatalf("expected payload byte to survive reopen, got %d", got)
	}
}

func TestOpenMmapTemporaryDeletesOnClose(t *testing.T) {
	dir := t.TempDir()

	opts := options.NewDefaultOptions()
	opts.Mode = options.ModeMmap
	opts.AllocateSize = options.MinAllocateSize
	opts.DataDir = dir
	opts.Path = options.PathSpec{Kind: options.PathTemporary}

	s, result, err := OpenMmap(testConfig(t, &opts))
	if err != nil {
		t.Fatalf("OpenMmap: %v", err)
	}
	if !result.Fresh {
		t.Fatal("expected a temporary store to always be fresh")
	}
	path := s.path
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected temporary file to exist before Close: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temporary file to be removed after Close, stat err=%v", err)
	}
}
