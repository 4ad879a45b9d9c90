package uavcan

import (
	mathbits "math/bits"

	"github.com/canflux/uavcan/internal/codecerr"
)

// PrimitivePtr constrains a dynamic array's element type T to one whose
// pointer implements Primitive, the standard Go idiom for "methods live on
// *T" generics (grounded on arloliu-mebo's ColumnarEncoder[T comparable]
// generic encoder shape, adapted from a value constraint to a pointer-method
// constraint since element mutation must be visible through the slice).
type PrimitivePtr[T any] interface {
	*T
	Primitive
}

// DynamicArray is a variable-length array of up to Capacity elements of T,
// prefixed on the wire by an unsigned length field of LengthBits() bits.
// Capacity is a constructor argument rather than a type parameter: Go has
// no const generics over integers, so the width is carried as a run-time
// field instead.
type DynamicArray[T any, PT PrimitivePtr[T]] struct {
	capacity int
	length   lengthField
	elements []T
	// overflowed is set by DeserializeBits/DeserializeBitsTail when a
	// wire-supplied length exceeds capacity. A Paused outcome with
	// overflowed true is not "need more bytes" — it is fatal and the driver
	// must not enter the element loop, since elements has only capacity
	// slots.
	overflowed bool
}

// NewDynamicArray creates a zeroed dynamic array: CurrentLength 0, capacity
// elements all zero-valued, matching zero-initialisation rule.
func NewDynamicArray[T any, PT PrimitivePtr[T]](capacity int) *DynamicArray[T, PT] {
	return &DynamicArray[T, PT]{
		capacity: capacity,
		length:   lengthField{widthBits: lengthBitsForCapacity(capacity)},
		elements: make([]T, capacity),
	}
}

// lengthBitsForCapacity computes ceil(log2(capacity+1)): the number of bits
// needed to represent every value in 0..=capacity. mathbits.Len(capacity) gives
// exactly this for capacity>=1 (e.g. capacity=3 -> 2, capacity=7 -> 3,
// capacity=90 -> 7), and 0 for capacity==0.
func lengthBitsForCapacity(capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return mathbits.Len(uint(capacity))
}

// Capacity returns the fixed maximum element count.
func (d *DynamicArray[T, PT]) Capacity() int { return d.capacity }

// LengthBits returns the bit width of the length prefix.
func (d *DynamicArray[T, PT]) LengthBits() int { return d.length.widthBits }

// ElementBitLength returns the fixed bit width of one element.
func (d *DynamicArray[T, PT]) ElementBitLength() int {
	var zero T
	return PT(&zero).BitLength()
}

// CurrentLength returns the number of valid leading elements.
func (d *DynamicArray[T, PT]) CurrentLength() int { return int(d.length.raw) }

// Overflowed reports whether the most recent DeserializeBits or
// DeserializeBitsTail call found a wire-supplied length exceeding Capacity.
// A caller seeing Paused must check this: a Paused overflow is fatal
// (LengthOverflow), not "push more bytes and call again".
func (d *DynamicArray[T, PT]) Overflowed() bool { return d.overflowed }

// SetCurrentLength sets the valid element count. It returns ErrLengthOverflow
// if n exceeds Capacity.
func (d *DynamicArray[T, PT]) SetCurrentLength(n int) error {
	if n < 0 || n > d.capacity {
		return codecerr.ErrLengthOverflow
	}
	d.length.raw = bits(n)
	return nil
}

// Element returns a pointer to element i (0 <= i < Capacity), usable
// regardless of CurrentLength so callers can populate elements before
// calling SetCurrentLength.
func (d *DynamicArray[T, PT]) Element(i int) PT { return PT(&d.elements[i]) }

// Elements returns the first CurrentLength elements.
func (d *DynamicArray[T, PT]) Elements() []T { return d.elements[:d.CurrentLength()] }

// Append adds v as the next element, growing CurrentLength by one. It
// returns ErrLengthOverflow if the array is already at capacity.
func (d *DynamicArray[T, PT]) Append(v T) error {
	n := d.CurrentLength()
	if n >= d.capacity {
		return codecerr.ErrLengthOverflow
	}
	d.elements[n] = v
	d.length.raw = bits(n + 1)
	return nil
}

// BitLength is the array's current total wire length: the length prefix
// plus CurrentLength elements.
func (d *DynamicArray[T, PT]) BitLength() int {
	return d.length.widthBits + d.CurrentLength()*d.ElementBitLength()
}

// SerializeBits implements the non-tail dynamic-array algorithm: length
// field first, then elements in index order, each resuming mid-element if
// the buffer fills partway through.
func (d *DynamicArray[T, PT]) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	var done int
	s := startBit
	if s < d.length.widthBits {
		n, outcome := d.length.SerializeBits(s, buf)
		done += n
		s += n
		if outcome == Paused {
			return done, Paused
		}
	}
	e := d.ElementBitLength()
	rel := s - d.length.widthBits
	elemIdx, elemBit := 0, 0
	if e > 0 {
		elemIdx, elemBit = rel/e, rel%e
	}
	for elemIdx < d.CurrentLength() {
		n, outcome := d.Element(elemIdx).SerializeBits(elemBit, buf)
		done += n
		if outcome == Paused {
			return done, Paused
		}
		elemIdx++
		elemBit = 0
	}
	return done, Finished
}

// DeserializeBits implements the symmetric non-tail read path. Once the
// length field is fully read, the wire-supplied count is checked against
// Capacity before the element loop runs: a corrupted or malicious length
// must not be allowed to index past the backing elements slice.
func (d *DynamicArray[T, PT]) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	var done int
	s := startBit
	if s < d.length.widthBits {
		n, outcome := d.length.DeserializeBits(s, buf)
		done += n
		s += n
		if outcome == Paused {
			return done, Paused
		}
	}
	if d.CurrentLength() > d.capacity {
		d.overflowed = true
		return done, Paused
	}
	e := d.ElementBitLength()
	rel := s - d.length.widthBits
	elemIdx, elemBit := 0, 0
	if e > 0 {
		elemIdx, elemBit = rel/e, rel%e
	}
	for elemIdx < d.CurrentLength() {
		n, outcome := d.Element(elemIdx).DeserializeBits(elemBit, buf)
		done += n
		if outcome == Paused {
			return done, Paused
		}
		elemIdx++
		elemBit = 0
	}
	return done, Finished
}

// SerializeBitsTail implements the root-only tail-array optimization: the
// length prefix is never put on the wire; only CurrentLength elements are
// emitted.
func (d *DynamicArray[T, PT]) SerializeBitsTail(startBit int, buf *BitBuffer) (int, Outcome) {
	e := d.ElementBitLength()
	elemIdx, elemBit := 0, 0
	if e > 0 {
		elemIdx, elemBit = startBit/e, startBit%e
	}
	var done int
	for elemIdx < d.CurrentLength() {
		n, outcome := d.Element(elemIdx).SerializeBits(elemBit, buf)
		done += n
		if outcome == Paused {
			return done, Paused
		}
		elemIdx++
		elemBit = 0
	}
	return done, Finished
}

// DeserializeBitsTail implements the receive side of the tail-array
// optimization: current_length is derived from the transport's remaining
// byte count rather than read off the wire. The transport
// signals "no more bytes are coming" via buf.Final(); until that flag is
// set the tail array cannot know its length and simply consumes whatever
// whole elements are available, pausing for more data.
func (d *DynamicArray[T, PT]) DeserializeBitsTail(startBit int, buf *BitBuffer) (int, Outcome) {
	e := d.ElementBitLength()
	if e <= 0 {
		return 0, Finished
	}
	elemIdx, elemBit := startBit/e, startBit%e

	if !buf.Final() {
		var done int
		for buf.BitLength() >= e-elemBit {
			if elemIdx >= d.capacity {
				d.overflowed = true
				return done, Paused
			}
			n, _ := d.Element(elemIdx).DeserializeBits(elemBit, buf)
			done += n
			elemIdx++
			elemBit = 0
		}
		return done, Paused
	}

	if buf.Final() {
		remaining := buf.BitLength()
		total := elemBit + remaining
		n := elemIdx + total/e
		if n > d.capacity {
			d.overflowed = true
			return 0, Paused
		}
		_ = d.SetCurrentLength(n) // n <= capacity already checked above
	}

	var done int
	for elemIdx < d.CurrentLength() {
		bitsAvail := buf.BitLength()
		need := e - elemBit
		if bitsAvail < need && !(elemIdx == d.CurrentLength()-1 && buf.Final()) {
			return done, Paused
		}
		n, outcome := d.Element(elemIdx).DeserializeBits(elemBit, buf)
		done += n
		if outcome == Paused {
			return done, Paused
		}
		elemIdx++
		elemBit = 0
	}
	return done, Finished
}

// lengthField is an unsigned integer primitive whose bit width is a runtime
// value rather than one of the named Uint2..Uint32 widths, because a
// dynamic array's length prefix width (ceil(log2(capacity+1))) is not
// generally one of the fixed primitive widths.
type lengthField struct {
	raw       bits
	widthBits int
}

func (l lengthField) BitLength() int { return l.widthBits }

func (l *lengthField) SerializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return serializeFixed(l.raw, l.widthBits, startBit, buf)
}

func (l *lengthField) DeserializeBits(startBit int, buf *BitBuffer) (int, Outcome) {
	return deserializeFixed(&l.raw, l.widthBits, startBit, buf)
}
