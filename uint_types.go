package uavcan

// Unsigned integer primitive types, one per permitted width in
// {2,3,4,5,7,8,16,32}. Encoding is little-endian, low bit first. Each type
// is a thin wrapper over `bits` so the driver can treat it uniformly through
// the Primitive interface while user code gets a named, width-checked type
// to declare struct fields with.

// Uint2 is an unsigned 2-bit integer (0..3).
type Uint2 struct{ raw bits }

func NewUint2(v uint8) Uint2  { return Uint2{bits(v) & lowMaskBits(2)} }
func (u Uint2) Value() uint8  { return uint8(u.raw) }
func (u *Uint2) Set(v uint8)  { u.raw = bits(v) & lowMaskBits(2) }
func (Uint2) BitLength() int { return 2 }
func (u *Uint2) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(u.raw, 2, startBit, buf)
}
func (u *Uint2) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&u.raw, 2, startBit, buf)
}

// Uint3 is an unsigned 3-bit integer (0..7).
type Uint3 struct{ raw bits }

func NewUint3(v uint8) Uint3  { return Uint3{bits(v) & lowMaskBits(3)} }
func (u Uint3) Value() uint8  { return uint8(u.raw) }
func (u *Uint3) Set(v uint8)  { u.raw = bits(v) & lowMaskBits(3) }
func (Uint3) BitLength() int { return 3 }
func (u *Uint3) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(u.raw, 3, startBit, buf)
}
func (u *Uint3) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&u.raw, 3, startBit, buf)
}

// Uint4 is an unsigned 4-bit integer (0..15).
type Uint4 struct{ raw bits }

func NewUint4(v uint8) Uint4  { return Uint4{bits(v) & lowMaskBits(4)} }
func (u Uint4) Value() uint8  { return uint8(u.raw) }
func (u *Uint4) Set(v uint8)  { u.raw = bits(v) & lowMaskBits(4) }
func (Uint4) BitLength() int { return 4 }
func (u *Uint4) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(u.raw, 4, startBit, buf)
}
func (u *Uint4) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&u.raw, 4, startBit, buf)
}

// Uint5 is an unsigned 5-bit integer (0..31).
type Uint5 struct{ raw bits }

func NewUint5(v uint8) Uint5  { return Uint5{bits(v) & lowMaskBits(5)} }
func (u Uint5) Value() uint8  { return uint8(u.raw) }
func (u *Uint5) Set(v uint8)  { u.raw = bits(v) & lowMaskBits(5) }
func (Uint5) BitLength() int { return 5 }
func (u *Uint5) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(u.raw, 5, startBit, buf)
}
func (u *Uint5) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&u.raw, 5, startBit, buf)
}

// Uint7 is an unsigned 7-bit integer (0..127), used for UAVCAN node IDs.
type Uint7 struct{ raw bits }

func NewUint7(v uint8) Uint7  { return Uint7{bits(v) & lowMaskBits(7)} }
func (u Uint7) Value() uint8  { return uint8(u.raw) }
func (u *Uint7) Set(v uint8)  { u.raw = bits(v) & lowMaskBits(7) }
func (Uint7) BitLength() int { return 7 }
func (u *Uint7) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(u.raw, 7, startBit, buf)
}
func (u *Uint7) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&u.raw, 7, startBit, buf)
}

// Uint8 is an unsigned 8-bit integer, written at whatever bit position the
// stream has reached (no byte realignment).
type Uint8 struct{ raw bits }

func NewUint8(v uint8) Uint8  { return Uint8{bits(v)} }
func (u Uint8) Value() uint8  { return uint8(u.raw) }
func (u *Uint8) Set(v uint8)  { u.raw = bits(v) }
func (Uint8) BitLength() int { return 8 }
func (u *Uint8) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(u.raw, 8, startBit, buf)
}
func (u *Uint8) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&u.raw, 8, startBit, buf)
}

// Uint16 is an unsigned 16-bit integer.
type Uint16 struct{ raw bits }

func NewUint16(v uint16) Uint16 { return Uint16{bits(v)} }
func (u Uint16) Value() uint16  { return uint16(u.raw) }
func (u *Uint16) Set(v uint16)  { u.raw = bits(v) }
func (Uint16) BitLength() int  { return 16 }
func (u *Uint16) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(u.raw, 16, startBit, buf)
}
func (u *Uint16) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&u.raw, 16, startBit, buf)
}

// Uint32 is an unsigned 32-bit integer.
type Uint32 struct{ raw bits }

func NewUint32(v uint32) Uint32 { return Uint32{bits(v)} }
func (u Uint32) Value() uint32  { return uint32(u.raw) }
func (u *Uint32) Set(v uint32)  { u.raw = bits(v) }
func (Uint32) BitLength() int  { return 32 }
func (u *Uint32) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(u.raw, 32, startBit, buf)
}
func (u *Uint32) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&u.raw, 32, startBit, buf)
}

func lowMaskBits(n int) bits { return bits(lowMask(n)) }
