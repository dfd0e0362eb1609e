package mem

import "testing"

func TestTypedLoadStoreRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	addr := BufferBase(buf)

	StoreInt32(addr, -7)
	if got := LoadInt32(addr); got != -7 {
		t.Fatalf("expected -7, got %d", got)
	}

	StoreInt64(addr+8, 1<<40)
	if got := LoadInt64(addr + 8); got != 1<<40 {
		t.Fatalf("expected 1<<40, got %d", got)
	}

	StoreFloat64(addr+16, 2.71828)
	if got := LoadFloat64(addr + 16); got != 2.71828 {
		t.Fatalf("expected 2.71828, got %v", got)
	}

	StoreBool(addr+24, true)
	if !LoadBool(addr + 24) {
		t.Fatal("expected true")
	}
}

func TestCASInt64(t *testing.T) {
	buf := make([]byte, 8)
	addr := BufferBase(buf)
	StoreInt64(addr, 10)

	if !CASInt64(addr, 10, 20) {
		t.Fatal("expected CAS from 10 to 20 to succeed")
	}
	if CASInt64(addr, 10, 30) {
		t.Fatal("expected stale CAS to fail")
	}
	if got := LoadInt64(addr); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
}

func TestCopyAndFill(t *testing.T) {
	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 16)

	Copy(BufferBase(dst), BufferBase(src), 16)
	for i := range dst {
		if dst[i] != byte(i) {
			t.Fatalf("byte %d: expected %d, got %d", i, i, dst[i])
		}
	}

	Fill(BufferBase(dst), 16, 0xAB)
	for i, b := range dst {
		if b != 0xAB {
			t.Fatalf("byte %d: expected 0xAB, got %x", i, b)
		}
	}
}

func TestCopyFromAndToBytes(t *testing.T) {
	backing := make([]byte, 32)
	addr := BufferBase(backing)

	payload := []byte("ignite")
	CopyFromBytes(payload, 0, addr, len(payload))

	out := make([]byte, len(payload))
	CopyToBytes(addr, out, 0, len(payload))
	if string(out) != "ignite" {
		t.Fatalf("expected %q, got %q", "ignite", string(out))
	}
}

func TestBufferBaseEmptySlice(t *testing.T) {
	if got := BufferBase(nil); got != 0 {
		t.Fatalf("expected 0 for an empty slice, got %d", got)
	}
}
