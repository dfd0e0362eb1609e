package codec

import "github.com/iamNilotpal/ignite/internal/mem"

// Int8 encodes a single signed byte.
type Int8 struct{}

func (Int8) SizeOf(int8) int32                 { return 1 }
func (Int8) Encode(addr uintptr, v int8) (int32, error) { mem.StoreInt8(addr, v); return 1, nil }
func (Int8) Decode(addr uintptr, _ int32) int8 { return mem.LoadInt8(addr) }
func (Int8) EncodeKey(v int8) []byte           { return []byte{byte(v)} }
func (Int8) DecodeKey(data []byte) int8        { return int8(data[0]) }

// Int16 encodes a 16-bit signed integer in host-native byte order.
type Int16 struct{}

func (Int16) SizeOf(int16) int32 { return 2 }
func (Int16) Encode(addr uintptr, v int16) (int32, error) {
	mem.StoreInt16(addr, v)
	return 2, nil
}
func (Int16) Decode(addr uintptr, _ int32) int16 { return mem.LoadInt16(addr) }

// Int32 encodes a 32-bit signed integer in host-native byte order.
type Int32 struct{}

func (Int32) SizeOf(int32) int32 { return 4 }
func (Int32) Encode(addr uintptr, v int32) (int32, error) {
	mem.StoreInt32(addr, v)
	return 4, nil
}
func (Int32) Decode(addr uintptr, _ int32) int32 { return mem.LoadInt32(addr) }
func (Int32) EncodeKey(v int32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func (Int32) DecodeKey(data []byte) int32 {
	u := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
	return int32(u)
}

// Int64 encodes a 64-bit signed integer in host-native byte order. It also
// implements KeyCodec[int64], for the segmented index and Mmap persistence;
// LongPrimitiveIndex itself uses no codec.
type Int64 struct{}

func (Int64) SizeOf(int64) int32 { return 8 }
func (Int64) Encode(addr uintptr, v int64) (int32, error) {
	mem.StoreInt64(addr, v)
	return 8, nil
}
func (Int64) Decode(addr uintptr, _ int32) int64 { return mem.LoadInt64(addr) }
func (Int64) EncodeKey(v int64) []byte {
	u := uint64(v)
	return []byte{
		byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24),
		byte(u >> 32), byte(u >> 40), byte(u >> 48), byte(u >> 56),
	}
}

func (Int64) DecodeKey(data []byte) int64 {
	u := uint64(data[0]) | uint64(data[1])<<8 | uint64(data[2])<<16 | uint64(data[3])<<24 |
		uint64(data[4])<<32 | uint64(data[5])<<40 | uint64(data[6])<<48 | uint64(data[7])<<56
	return int64(u)
}

// Float32 encodes a 32-bit IEEE-754 float in host-native byte order.
type Float32 struct{}

func (Float32) SizeOf(float32) int32 { return 4 }
func (Float32) Encode(addr uintptr, v float32) (int32, error) {
	mem.StoreFloat32(addr, v)
	return 4, nil
}
func (Float32) Decode(addr uintptr, _ int32) float32 { return mem.LoadFloat32(addr) }

// Float64 encodes a 64-bit IEEE-754 float in host-native byte order.
type Float64 struct{}

func (Float64) SizeOf(float64) int32 { return 8 }
func (Float64) Encode(addr uintptr, v float64) (int32, error) {
	mem.StoreFloat64(addr, v)
	return 8, nil
}
func (Float64) Decode(addr uintptr, _ int32) float64 { return mem.LoadFloat64(addr) }

// Bool encodes a boolean as a single byte.
type Bool struct{}

func (Bool) SizeOf(bool) int32 { return 1 }
func (Bool) Encode(addr uintptr, v bool) (int32, error) {
	mem.StoreBool(addr, v)
	return 1, nil
}
func (Bool) Decode(addr uintptr, _ int32) bool { return mem.LoadBool(addr) }

var (
	_ ValueCodec[int8]    = Int8{}
	_ ValueCodec[int16]   = Int16{}
	_ ValueCodec[int32]   = Int32{}
	_ ValueCodec[int64]   = Int64{}
	_ ValueCodec[float32] = Float32{}
	_ ValueCodec[float64] = Float64{}
	_ ValueCodec[bool]    = Bool{}
	_ KeyCodec[int64]     = Int64{}
	_ KeyCodec[int32]     = Int32{}
	_ KeyCodec[int8]      = Int8{}
)
