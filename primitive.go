package uavcan

// Primitive is one flattened field slot: a fixed-width unsigned or signed
// integer, a boolean, or a half-precision float. It is the leaf the
// serializer/deserializer driver operates on; the driver never needs to know
// the concrete type behind the interface, only its bit width and how to
// move bits in and out of it.
type Primitive interface {
	// BitLength is the fixed number of bits this slot occupies on the wire.
	BitLength() int

	// SerializeBits writes bits [startBit, BitLength()) of the slot into
	// buf's tail, writing as many as fit. It returns the number of bits
	// actually written and Finished if the whole range was written, or
	// Paused if buf filled first.
	SerializeBits(startBit int, buf *BitBuffer) (bitsDone int, outcome Outcome)

	// DeserializeBits pops bits from buf's head into the slot's bit range
	// [startBit, BitLength()), popping as many as are available. It returns
	// the number of bits actually consumed and Finished if the whole range
	// was filled, or Paused if buf ran out first.
	DeserializeBits(startBit int, buf *BitBuffer) (bitsDone int, outcome Outcome)
}

// bits holds a primitive's value right-aligned in a native word; bits above
// BitLength are always kept zero. It backs every concrete primitive type in
// this package (uintN, intN, Bool, Float16).
type bits uint64

func (b *bits) setRange(lo, length int, value uint64) {
	mask := lowMask(length)
	*b = bits((uint64(*b) &^ (mask << uint(lo))) | ((value & mask) << uint(lo)))
}

func (b bits) getRange(lo, length int) uint64 {
	return (uint64(b) >> uint(lo)) & lowMask(length)
}

// serializeFixed implements the general partial-progress contract of
// Primitive.SerializeBits for any fixed-width field backed by `bits`.
func serializeFixed(raw bits, bitLength, startBit int, buf *BitBuffer) (int, Outcome) {
	remaining := bitLength - startBit
	take := remaining
	if avail := buf.FreeBits(); take > avail {
		take = avail
	}
	if take <= 0 {
		if remaining <= 0 {
			return 0, Finished
		}
		return 0, Paused
	}
	buf.AppendBits(raw.getRange(startBit, take), take)
	if take == remaining {
		return take, Finished
	}
	return take, Paused
}

// deserializeFixed implements the general partial-progress contract of
// Primitive.DeserializeBits for any fixed-width field backed by `bits`.
func deserializeFixed(raw *bits, bitLength, startBit int, buf *BitBuffer) (int, Outcome) {
	remaining := bitLength - startBit
	take := remaining
	if avail := buf.BitLength(); take > avail {
		take = avail
	}
	if take <= 0 {
		if remaining <= 0 {
			return 0, Finished
		}
		return 0, Paused
	}
	raw.setRange(startBit, take, buf.PopBits(take))
	if take == remaining {
		return take, Finished
	}
	return take, Paused
}
