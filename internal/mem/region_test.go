package mem

import "testing"

func TestAnonymousRegionAddressRoundTrip(t *testing.T) {
	r, err := NewAnonymous(4096)
	if err != nil {
		t.Fatalf("NewAnonymous: %v", err)
	}
	defer r.Close()

	StoreInt64(r.Address(0), 123456789)
	if got := LoadInt64(r.Address(0)); got != 123456789 {
		t.Fatalf("expected 123456789, got %d", got)
	}

	StoreInt32(r.Address(100), -99)
	if got := LoadInt32(r.Address(100)); got != -99 {
		t.Fatalf("expected -99, got %d", got)
	}
}

func TestAnonymousRegionGrow(t *testing.T) {
	r, err := NewAnonymous(1024)
	if err != nil {
		t.Fatalf("NewAnonymous: %v", err)
	}
	defer r.Close()

	if r.Length() < 1024 {
		t.Fatalf("expected at least 1024 bytes, got %d", r.Length())
	}

	if err := r.Grow(8192); err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if r.Length() < 8192 {
		t.Fatalf("expected at least 8192 bytes after Grow, got %d", r.Length())
	}

	StoreInt64(r.Address(5000), 42)
	if got := LoadInt64(r.Address(5000)); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestRegionSlice(t *testing.T) {
	r, err := NewAnonymous(4096)
	if err != nil {
		t.Fatalf("NewAnonymous: %v", err)
	}
	defer r.Close()

	CopyFromBytes([]byte("hello"), 0, r.Address(10), 5)
	if got := r.Slice(10, 5); string(got) != "hello" {
		t.Fatalf("expected %q, got %q", "hello", string(got))
	}
}

func TestRegionFlushIsNoopForAnonymous(t *testing.T) {
	r, err := NewAnonymous(4096)
	if err != nil {
		t.Fatalf("NewAnonymous: %v", err)
	}
	defer r.Close()
	if err := r.Flush(); err != nil {
		t.Fatalf("expected Flush to be a no-op for anonymous regions, got %v", err)
	}
}
