package uavcan

import "github.com/canflux/uavcan/internal/codecerr"

// Deserializer drives bits out of a BitBuffer into a Struct's flattened
// fields, the receive-side mirror of Serializer. It follows the same
// split between cooperative pause and protocol-fatal error as
// original_source/uavcan/src/deserializer.rs's Deserializer::deserialize /
// into_structure.
type Deserializer struct {
	s        Struct
	fieldIdx int
	bitIdx   int
	done     bool
	tail     TailArray
	tailIdx  int
}

// overflowable is implemented by a field (DynamicArray) whose Paused
// outcome can mean "the wire-supplied length exceeds capacity" instead of
// "ran out of bits". The driver checks this after every Paused outcome to
// tell the two apart.
type overflowable interface{ Overflowed() bool }

// NewDeserializer begins a fresh transfer populating s.
func NewDeserializer(s Struct) *Deserializer {
	d := &Deserializer{s: s, tailIdx: -1}
	if tas, ok := s.(TailArrayStruct); ok {
		if ta, ok2 := tas.HasTailArray(); ok2 {
			d.tail = ta
			d.tailIdx = s.FlattenedFieldsLen() - 1
		}
	}
	return d
}

// Finished reports whether the whole structure has been populated.
func (d *Deserializer) Finished() bool { return d.done }

// DeserializeFrom consumes bits from buf, resuming from wherever the
// previous call left off.
//
//   - Paused, nil: buf ran out of bits before the structure finished
//     (BufferInsufficient); push more bytes and call again.
//   - Paused, ErrLengthOverflow: a dynamic array's wire-supplied length
//     exceeds its capacity — fatal, the transfer must be dropped.
//   - Paused, ErrNotFinished: buf ran out AND the transport has signaled
//     this is the last data for the transfer (buf.Final()) — the transfer
//     is fatal and must be discarded.
//   - Finished, ErrStructureExhausted: the structure populated completely
//     but buf still holds a full unused payload byte — a framing error.
//   - Finished, nil: the structure populated completely and cleanly.
func (d *Deserializer) DeserializeFrom(buf *BitBuffer) (Outcome, error) {
	if d.done {
		return Finished, nil
	}
	n := d.s.FlattenedFieldsLen()
	for d.fieldIdx < n {
		var nb int
		var outcome Outcome
		var field Primitive
		if d.fieldIdx == d.tailIdx && d.tail != nil {
			field = d.tail
			nb, outcome = d.tail.DeserializeBitsTail(d.bitIdx, buf)
		} else {
			field = d.s.FieldMut(d.fieldIdx)
			nb, outcome = field.DeserializeBits(d.bitIdx, buf)
		}
		d.bitIdx += nb
		if outcome == Paused {
			if ov, ok := field.(overflowable); ok && ov.Overflowed() {
				return Paused, codecerr.ErrLengthOverflow
			}
			if buf.Final() {
				return Paused, codecerr.ErrNotFinished
			}
			return Paused, nil
		}
		d.fieldIdx++
		d.bitIdx = 0
	}
	if buf.BitLength() >= 8 {
		return Finished, codecerr.ErrStructureExhausted
	}
	d.done = true
	return Finished, nil
}
