package ignite

import (
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/ignite/internal/codec"
	"github.com/iamNilotpal/ignite/pkg/options"
)

func TestInstancePutGetRemoveOffHeap(t *testing.T) {
	inst, err := Open[string, string](
		"test-offheap",
		Codecs[string, string]{ValueCodec: codec.String{}},
		options.WithMode(options.ModeOffHeap),
		options.WithMaxMemory(options.MinMaxMemory),
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer inst.Close()

	if _, existed, err := inst.Put("name", "ignite"); err != nil || existed {
		t.Fatalf("Put: existed=%v err=%v", existed, err)
	}

	got, ok, err := inst.Get("name")
	if err != nil || !ok || got != "ignite" {
		t.Fatalf("Get: got=%q ok=%v err=%v", got, ok, err)
	}

	contains, err := inst.ContainsKey("name")
	if err != nil || !contains {
		t.Fatalf("ContainsKey: contains=%v err=%v", contains, err)
	}

	size, err := inst.Size()
	if err != nil || size != 1 {
		t.Fatalf("Size: got %d, err=%v", size, err)
	}

	removed, existed, err := inst.Remove("name")
	if err != nil || !existed || removed != "ignite" {
		t.Fatalf("Remove: removed=%q existed=%v err=%v", removed, existed, err)
	}

	empty, err := inst.IsEmpty()
	if err != nil || !empty {
		t.Fatalf("IsEmpty: empty=%v err=%v", empty, err)
	}
}

func TestInstancePutReturnsPreviousValue(t *testing.T) {
	inst, err := Open[string, string](
		"test-offheap-update",
		Codecs[string, string]{ValueCodec: codec.String{}},
		options.WithMode(options.ModeOffHeap),
		options.WithMaxMemory(options.MinMaxMemory),
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer inst.Close()

	if _, existed, err := inst.Put("k", "v1"); err != nil || existed {
		t.Fatalf("first Put: existed=%v err=%v", existed, err)
	}

	prev, existed, err := inst.Put("k", "v2")
	if err != nil || !existed || prev != "v1" {
		t.Fatalf("second Put: expected prev=%q existed=true, got prev=%q existed=%v err=%v", "v1", prev, existed, err)
	}

	got, ok, err := inst.Get("k")
	if err != nil || !ok || got != "v2" {
		t.Fatalf("Get: got=%q ok=%v err=%v", got, ok, err)
	}
}

func TestInstanceMmapPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.mmap")

	openOpts := []options.OptionFunc{
		options.WithPersistentPath(path),
		options.WithAllocateSize(options.MinAllocateSize),
	}
	codecs := Codecs[string, string]{KeyCodec: codec.String{}, ValueCodec: codec.String{}}

	inst, err := Open("test-mmap", codecs, openOpts...)
	if err != nil {
		t.Fatalf("Open (fresh): %v", err)
	}
	if _, _, err := inst.Put("k1", "v1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := inst.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open("test-mmap", codecs, openOpts...)
	if err != nil {
		t.Fatalf("Open (restore): %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("k1")
	if err != nil || !ok || got != "v1" {
		t.Fatalf("Get after reopen: got=%q ok=%v err=%v", got, ok, err)
	}
}
