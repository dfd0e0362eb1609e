package codec

import "github.com/iamNilotpal/ignite/internal/mem"

// lengthPrefixSize is the width of the int32 length header every
// string-shaped encoding carries ahead of its bytes.
const lengthPrefixSize = 4

// String encodes a non-nullable Go string as a 4-byte native-endian length
// followed by the UTF-8 bytes, the standard [length, bytes] wire shape for
// variable-length values.
type String struct{}

func (String) SizeOf(v string) int32 { return lengthPrefixSize + int32(len(v)) }

func (String) Encode(addr uintptr, v string) (int32, error) {
	mem.StoreInt32(addr, int32(len(v)))
	mem.CopyFromBytes([]byte(v), 0, addr+lengthPrefixSize, len(v))
	return lengthPrefixSize + int32(len(v)), nil
}

func (String) Decode(addr uintptr, size int32) string {
	n := int(size) - lengthPrefixSize
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	mem.CopyToBytes(addr+lengthPrefixSize, buf, 0, n)
	return string(buf)
}

func (String) EncodeKey(v string) []byte    { return []byte(v) }
func (String) DecodeKey(data []byte) string { return string(data) }

// NullableString is String's nullable counterpart: a *string whose pointer
// is nil encodes as a length of -1 and zero payload bytes, recovering as a
// nil pointer on decode. Used where a value slot must be able to represent
// "no value" distinctly from an empty string.
type NullableString struct{}

func (NullableString) SizeOf(v *string) int32 {
	if v == nil {
		return lengthPrefixSize
	}
	return lengthPrefixSize + int32(len(*v))
}

func (NullableString) Encode(addr uintptr, v *string) (int32, error) {
	if v == nil {
		mem.StoreInt32(addr, -1)
		return lengthPrefixSize, nil
	}
	mem.StoreInt32(addr, int32(len(*v)))
	mem.CopyFromBytes([]byte(*v), 0, addr+lengthPrefixSize, len(*v))
	return lengthPrefixSize + int32(len(*v)), nil
}

func (NullableString) Decode(addr uintptr, size int32) *string {
	length := mem.LoadInt32(addr)
	if length < 0 {
		return nil
	}
	n := int(size) - lengthPrefixSize
	if n <= 0 {
		empty := ""
		return &empty
	}
	buf := make([]byte, n)
	mem.CopyToBytes(addr+lengthPrefixSize, buf, 0, n)
	s := string(buf)
	return &s
}

var (
	_ ValueCodec[string]  = String{}
	_ KeyCodec[string]    = String{}
	_ ValueCodec[*string] = NullableString{}
)
