package uavcan

// Serializer drives a Struct's flattened fields onto a BitBuffer one call at
// a time, pausing whenever the buffer fills. It follows the same
// loop-with-partial-progress shape as a chunked frame encoder, generalized
// from whole CAN frames to individual bits, and is safe to call repeatedly
// across multiple transport writes until Finished.
type Serializer struct {
	s        Struct
	fieldIdx int
	bitIdx   int
	done     bool
	tail     TailArray
	tailIdx  int
}

// NewSerializer begins a fresh transfer over s. If s implements
// TailArrayStruct and reports a tail-eligible dynamic array, that field's
// length prefix is suppressed on the wire.
func NewSerializer(s Struct) *Serializer {
	ser := &Serializer{s: s, tailIdx: -1}
	if tas, ok := s.(TailArrayStruct); ok {
		if ta, ok2 := tas.HasTailArray(); ok2 {
			ser.tail = ta
			ser.tailIdx = s.FlattenedFieldsLen() - 1
		}
	}
	return ser
}

// Finished reports whether the whole structure has been serialized.
func (ser *Serializer) Finished() bool { return ser.done }

// SerializeInto writes as many bits as fit into buf, resuming from wherever
// the previous call left off. It returns Paused (BufferFull) when
// buf fills before the structure finishes, Finished otherwise.
func (ser *Serializer) SerializeInto(buf *BitBuffer) Outcome {
	if ser.done {
		return Finished
	}
	n := ser.s.FlattenedFieldsLen()
	for ser.fieldIdx < n {
		var nb int
		var outcome Outcome
		if ser.fieldIdx == ser.tailIdx && ser.tail != nil {
			nb, outcome = ser.tail.SerializeBitsTail(ser.bitIdx, buf)
		} else {
			nb, outcome = ser.s.Field(ser.fieldIdx).SerializeBits(ser.bitIdx, buf)
		}
		ser.bitIdx += nb
		if outcome == Paused {
			return Paused
		}
		ser.fieldIdx++
		ser.bitIdx = 0
	}
	ser.done = true
	return Finished
}
