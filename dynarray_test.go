package uavcan

import "testing"

func TestDynamicArray_LengthBitsForCapacity(t *testing.T) {
	cases := []struct {
		capacity int
		want     int
	}{
		{capacity: 3, want: 2},
		{capacity: 7, want: 3},
		{capacity: 90, want: 7},
		{capacity: 31, want: 5},
	}
	for _, c := range cases {
		arr := NewDynamicArray[Uint8, *Uint8](c.capacity)
		if got := arr.LengthBits(); got != c.want {
			t.Fatalf("capacity %d: LengthBits = %d, want %d", c.capacity, got, c.want)
		}
	}
}

func TestDynamicArray_NonTailRoundTrip(t *testing.T) {
	arr := NewDynamicArray[Uint8, *Uint8](3)
	if err := arr.Append(NewUint8(0x11)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := arr.Append(NewUint8(0x22)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	var buf BitBuffer
	n, outcome := arr.SerializeBits(0, &buf)
	if outcome != Finished {
		t.Fatalf("serialize outcome = %v, want Finished", outcome)
	}
	if want := arr.LengthBits() + 2*8; n != want {
		t.Fatalf("serialize wrote %d bits, want %d", n, want)
	}

	out := NewDynamicArray[Uint8, *Uint8](3)
	n2, outcome2 := out.DeserializeBits(0, &buf)
	if outcome2 != Finished || n2 != n {
		t.Fatalf("deserialize = (%d,%v), want (%d,Finished)", n2, outcome2, n)
	}
	if out.CurrentLength() != 2 {
		t.Fatalf("CurrentLength = %d, want 2", out.CurrentLength())
	}
	if out.Element(0).Value() != 0x11 || out.Element(1).Value() != 0x22 {
		t.Fatalf("elements mismatch: %v %v", out.Element(0).Value(), out.Element(1).Value())
	}
}

func TestDynamicArray_EmptyTailOptimization(t *testing.T) {
	arr := NewDynamicArray[Uint8, *Uint8](3) // length field is 2 bits, sole field, empty
	var buf BitBuffer
	n, outcome := arr.SerializeBitsTail(0, &buf)
	if outcome != Finished || n != 0 {
		t.Fatalf("empty tail array serialize = (%d,%v), want (0,Finished)", n, outcome)
	}
	if buf.BitLength() != 0 {
		t.Fatalf("empty tail array must write zero bits, got %d", buf.BitLength())
	}
}

func TestDynamicArray_EmptyNonTailHasLengthPrefixOnly(t *testing.T) {
	arr := NewDynamicArray[Uint8, *Uint8](3) // length field is 2 bits
	var buf BitBuffer
	n, outcome := arr.SerializeBits(0, &buf)
	if outcome != Finished || n != 2 {
		t.Fatalf("empty non-tail array serialize = (%d,%v), want (2,Finished)", n, outcome)
	}
	if got := buf.PopBits(2); got != 0 {
		t.Fatalf("empty array length prefix = %d, want 0", got)
	}
}

func TestDynamicArray_TailRoundTripViaFinal(t *testing.T) {
	arr := NewDynamicArray[Uint8, *Uint8](90)
	for _, b := range []byte("hello") {
		if err := arr.Append(NewUint8(b)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	var buf BitBuffer
	n, outcome := arr.SerializeBitsTail(0, &buf)
	if outcome != Finished || n != 5*8 {
		t.Fatalf("serialize tail = (%d,%v), want (%d,Finished)", n, outcome, 5*8)
	}

	buf.SetFinal(true)
	out := NewDynamicArray[Uint8, *Uint8](90)
	n2, outcome2 := out.DeserializeBitsTail(0, &buf)
	if outcome2 != Finished || n2 != 5*8 {
		t.Fatalf("deserialize tail = (%d,%v), want (%d,Finished)", n2, outcome2, 5*8)
	}
	if out.CurrentLength() != 5 {
		t.Fatalf("CurrentLength = %d, want 5", out.CurrentLength())
	}
	got := string([]byte{
		out.Element(0).Value(), out.Element(1).Value(), out.Element(2).Value(),
		out.Element(3).Value(), out.Element(4).Value(),
	})
	if got != "hello" {
		t.Fatalf("tail array round trip = %q, want %q", got, "hello")
	}
}

func TestDynamicArray_SetCurrentLengthOverflow(t *testing.T) {
	arr := NewDynamicArray[Uint8, *Uint8](3)
	if err := arr.SetCurrentLength(4); err == nil {
		t.Fatalf("expected ErrLengthOverflow setting length beyond capacity")
	}
}

// TestDynamicArray_DeserializeBits_WireLengthOverflowNoPanic exercises a
// wire-supplied length that exceeds capacity but still fits the length
// field's bit width (capacity 5 and 7 share a 3-bit length prefix, so a
// wire value of 6 is representable but invalid for capacity 5). Before the
// capacity check this indexed past the backing elements slice and panicked
// instead of surfacing LengthOverflow.
func TestDynamicArray_DeserializeBits_WireLengthOverflowNoPanic(t *testing.T) {
	src := NewDynamicArray[Uint8, *Uint8](7)
	for _, b := range []byte{1, 2, 3, 4, 5, 6} {
		if err := src.Append(NewUint8(b)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	var buf BitBuffer
	if _, outcome := src.SerializeBits(0, &buf); outcome != Finished {
		t.Fatalf("setup serialize did not finish")
	}

	dst := NewDynamicArray[Uint8, *Uint8](5)
	_, outcome := dst.DeserializeBits(0, &buf)
	if outcome != Paused {
		t.Fatalf("outcome = %v, want Paused (overflow signal)", outcome)
	}
	if !dst.Overflowed() {
		t.Fatalf("expected Overflowed() true for wire length 6 > capacity 5")
	}
}

// TestDynamicArray_DeserializeBitsTail_OverflowNoPanic mirrors the above for
// the tail-array path, where current_length is derived from the buffer's
// byte count once buf.Final() is set rather than read off the wire.
func TestDynamicArray_DeserializeBitsTail_OverflowNoPanic(t *testing.T) {
	var buf BitBuffer
	if err := buf.PushBytes([]byte{1, 2, 3}); err != nil {
		t.Fatalf("PushBytes: %v", err)
	}
	buf.SetFinal(true)

	dst := NewDynamicArray[Uint8, *Uint8](2)
	_, outcome := dst.DeserializeBitsTail(0, &buf)
	if outcome != Paused {
		t.Fatalf("outcome = %v, want Paused (overflow signal)", outcome)
	}
	if !dst.Overflowed() {
		t.Fatalf("expected Overflowed() true for 3 bytes > capacity 2")
	}
}
