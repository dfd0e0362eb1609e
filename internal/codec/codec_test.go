package codec

import (
	"testing"
	"unsafe"
)

func scratch(n int) uintptr {
	buf := make([]byte, n)
	return uintptr(unsafe.Pointer(&buf[0]))
}

func TestInt64RoundTrip(t *testing.T) {
	c := Int64{}
	addr := scratch(int(c.SizeOf(0)))
	n, err := c.Encode(addr, -42)
	if err != nil || n != c.SizeOf(0) {
		t.Fatalf("Encode: n=%d err=%v", n, err)
	}
	if got := c.Decode(addr, 8); got != -42 {
		t.Fatalf("expected -42, got %d", got)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	c := Float64{}
	addr := scratch(int(c.SizeOf(0)))
	n, err := c.Encode(addr, 3.14159)
	if err != nil || n != c.SizeOf(0) {
		t.Fatalf("Encode: n=%d err=%v", n, err)
	}
	if got := c.Decode(addr, 8); got != 3.14159 {
		t.Fatalf("expected 3.14159, got %v", got)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	c := Bool{}
	addr := scratch(int(c.SizeOf(false)))
	n, err := c.Encode(addr, true)
	if err != nil || n != 1 {
		t.Fatalf("Encode: n=%d err=%v", n, err)
	}
	if got := c.Decode(addr, 1); !got {
		t.Fatal("expected true")
	}
}

func TestStringRoundTrip(t *testing.T) {
	c := String{}
	v := "hello, ignite"
	size := c.SizeOf(v)
	addr := scratch(int(size))
	n, err := c.Encode(addr, v)
	if err != nil || n != size {
		t.Fatalf("Encode: n=%d want=%d err=%v", n, size, err)
	}
	if got := c.Decode(addr, size); got != v {
		t.Fatalf("expected %q, got %q", v, got)
	}
}

func TestStringEmptyRoundTrip(t *testing.T) {
	c := String{}
	size := c.SizeOf("")
	addr := scratch(int(size))
	n, err := c.Encode(addr, "")
	if err != nil || n != size {
		t.Fatalf("Encode: n=%d want=%d err=%v", n, size, err)
	}
	if got := c.Decode(addr, size); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestNullableStringEncodesNilAsNegativeLength(t *testing.T) {
	c := NullableString{}
	size := c.SizeOf(nil)
	if size != lengthPrefixSize {
		t.Fatalf("expected nil to size to just the length prefix, got %d", size)
	}
	addr := scratch(int(size))
	n, err := c.Encode(addr, nil)
	if err != nil || n != size {
		t.Fatalf("Encode: n=%d want=%d err=%v", n, size, err)
	}
	if got := c.Decode(addr, size); got != nil {
		t.Fatalf("expected nil round trip, got %v", *got)
	}
}

func TestNullableStringRoundTrip(t *testing.T) {
	c := NullableString{}
	v := "present"
	size := c.SizeOf(&v)
	addr := scratch(int(size))
	n, err := c.Encode(addr, &v)
	if err != nil || n != size {
		t.Fatalf("Encode: n=%d want=%d err=%v", n, size, err)
	}
	got := c.Decode(addr, size)
	if got == nil || *got != v {
		t.Fatalf("expected %q, got %v", v, got)
	}
}

func TestInt32KeyEncodingIsDeterministic(t *testing.T) {
	c := Int32{}
	a := c.EncodeKey(12345)
	b := c.EncodeKey(12345)
	if len(a) != 4 || string(a) != string(b) {
		t.Fatalf("expected stable 4-byte key encoding, got %v vs %v", a, b)
	}
}
