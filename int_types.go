package uavcan

// Signed integer primitive types, two's-complement, same width set as the
// unsigned types ({2,3,4,5,7,8,16,32}; there is no 1-bit signed type). On the wire a two's-complement value's bit pattern *is* its low N
// bits, so SerializeBits/DeserializeBits need no extra work over the
// unsigned path; only Value()/Set() need to sign-extend or truncate.

func signExtend(v uint64, width int) int32 {
	shift := uint(32 - width)
	return int32(uint32(v)<<shift) >> shift
}

// Int2 is a signed 2-bit integer (-2..1).
type Int2 struct{ raw bits }

func NewInt2(v int8) Int2    { return Int2{bits(uint8(v)) & lowMaskBits(2)} }
func (i Int2) Value() int32  { return signExtend(uint64(i.raw), 2) }
func (i *Int2) Set(v int8)   { i.raw = bits(uint8(v)) & lowMaskBits(2) }
func (Int2) BitLength() int  { return 2 }
func (i *Int2) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(i.raw, 2, startBit, buf)
}
func (i *Int2) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&i.raw, 2, startBit, buf)
}

// Int3 is a signed 3-bit integer (-4..3).
type Int3 struct{ raw bits }

func NewInt3(v int8) Int3   { return Int3{bits(uint8(v)) & lowMaskBits(3)} }
func (i Int3) Value() int32 { return signExtend(uint64(i.raw), 3) }
func (i *Int3) Set(v int8)  { i.raw = bits(uint8(v)) & lowMaskBits(3) }
func (Int3) BitLength() int { return 3 }
func (i *Int3) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(i.raw, 3, startBit, buf)
}
func (i *Int3) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&i.raw, 3, startBit, buf)
}

// Int4 is a signed 4-bit integer (-8..7).
type Int4 struct{ raw bits }

func NewInt4(v int8) Int4   { return Int4{bits(uint8(v)) & lowMaskBits(4)} }
func (i Int4) Value() int32 { return signExtend(uint64(i.raw), 4) }
func (i *Int4) Set(v int8)  { i.raw = bits(uint8(v)) & lowMaskBits(4) }
func (Int4) BitLength() int { return 4 }
func (i *Int4) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(i.raw, 4, startBit, buf)
}
func (i *Int4) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&i.raw, 4, startBit, buf)
}

// Int5 is a signed 5-bit integer (-16..15).
type Int5 struct{ raw bits }

func NewInt5(v int8) Int5   { return Int5{bits(uint8(v)) & lowMaskBits(5)} }
func (i Int5) Value() int32 { return signExtend(uint64(i.raw), 5) }
func (i *Int5) Set(v int8)  { i.raw = bits(uint8(v)) & lowMaskBits(5) }
func (Int5) BitLength() int { return 5 }
func (i *Int5) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(i.raw, 5, startBit, buf)
}
func (i *Int5) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&i.raw, 5, startBit, buf)
}

// Int7 is a signed 7-bit integer (-64..63).
type Int7 struct{ raw bits }

func NewInt7(v int8) Int7   { return Int7{bits(uint8(v)) & lowMaskBits(7)} }
func (i Int7) Value() int32 { return signExtend(uint64(i.raw), 7) }
func (i *Int7) Set(v int8)  { i.raw = bits(uint8(v)) & lowMaskBits(7) }
func (Int7) BitLength() int { return 7 }
func (i *Int7) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(i.raw, 7, startBit, buf)
}
func (i *Int7) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&i.raw, 7, startBit, buf)
}

// Int8 is a signed 8-bit integer.
type Int8 struct{ raw bits }

func NewInt8(v int8) Int8   { return Int8{bits(uint8(v))} }
func (i Int8) Value() int32 { return signExtend(uint64(i.raw), 8) }
func (i *Int8) Set(v int8)  { i.raw = bits(uint8(v)) }
func (Int8) BitLength() int { return 8 }
func (i *Int8) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(i.raw, 8, startBit, buf)
}
func (i *Int8) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&i.raw, 8, startBit, buf)
}

// Int16 is a signed 16-bit integer.
type Int16 struct{ raw bits }

func NewInt16(v int16) Int16 { return Int16{bits(uint16(v))} }
func (i Int16) Value() int32 { return signExtend(uint64(i.raw), 16) }
func (i *Int16) Set(v int16) { i.raw = bits(uint16(v)) }
func (Int16) BitLength() int { return 16 }
func (i *Int16) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(i.raw, 16, startBit, buf)
}
func (i *Int16) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&i.raw, 16, startBit, buf)
}

// Int32 is a signed 32-bit integer.
type Int32 struct{ raw bits }

func NewInt32(v int32) Int32 { return Int32{bits(uint32(v))} }
func (i Int32) Value() int32 { return int32(uint32(i.raw)) }
func (i *Int32) Set(v int32) { i.raw = bits(uint32(v)) }
func (Int32) BitLength() int { return 32 }
func (i *Int32) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(i.raw, 32, startBit, buf)
}
func (i *Int32) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&i.raw, 32, startBit, buf)
}
