package uavcan

import "testing"

// FuzzUint32RoundTrip checks that a Uint32 round-trips for any raw value.
func FuzzUint32RoundTrip(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xFFFFFFFF))
	f.Add(uint32(0xA5A5A5A5))
	f.Fuzz(func(t *testing.T, v uint32) {
		in := NewUint32(v)
		var buf BitBuffer
		if _, outcome := in.SerializeBits(0, &buf); outcome != Finished {
			t.Fatalf("serialize did not finish for %#x", v)
		}
		var out Uint32
		if _, outcome := out.DeserializeBits(0, &buf); outcome != Finished {
			t.Fatalf("deserialize did not finish for %#x", v)
		}
		if out.Value() != v {
			t.Fatalf("round trip %#x -> %#x", v, out.Value())
		}
	})
}

// FuzzFourFieldStructRoundTrip drives the Serializer/Deserializer pair over
// arbitrary field values, checking the resumability property: splitting the
// wire bytes into two pushes at an arbitrary point yields the same decoded
// structure as one push.
func FuzzFourFieldStructRoundTrip(f *testing.F) {
	f.Add(uint8(17), uint32(19), uint16(21), uint8(23), 3)
	f.Add(uint8(0), uint32(0), uint16(0), uint8(0), 0)
	f.Add(uint8(255), uint32(0xDEADBEEF), uint16(0xFFFF), uint8(1), 7)
	f.Fuzz(func(t *testing.T, v1 uint8, v2 uint32, v3 uint16, v4 uint8, split int) {
		s := &fourFieldStruct{V1: NewUint8(v1), V2: NewUint32(v2), V3: NewUint16(v3), V4: NewUint8(v4)}
		var buf BitBuffer
		ser := NewSerializer(s)
		if outcome := ser.SerializeInto(&buf); outcome != Finished {
			t.Fatalf("serialize did not finish")
		}
		wire := bufferBytesFuzz(&buf)

		if split < 0 {
			split = -split
		}
		if split > len(wire) {
			split = len(wire) % (len(wire) + 1)
		}

		var out fourFieldStruct
		d := NewDeserializer(&out)
		var db BitBuffer
		if split > 0 {
			if err := db.PushBytes(wire[:split]); err != nil {
				t.Fatalf("PushBytes first half: %v", err)
			}
			outcome, err := d.DeserializeFrom(&db)
			if err != nil {
				t.Fatalf("unexpected error on first half: %v", err)
			}
			if outcome == Finished && split < len(wire) {
				t.Fatalf("finished early at split %d of %d", split, len(wire))
			}
		}
		if err := db.PushBytes(wire[split:]); err != nil {
			t.Fatalf("PushBytes second half: %v", err)
		}
		db.SetFinal(true)
		outcome, err := d.DeserializeFrom(&db)
		if err != nil {
			t.Fatalf("unexpected error on second half: %v", err)
		}
		if outcome != Finished {
			t.Fatalf("did not finish after full input")
		}
		if out.V1.Value() != v1 || out.V2.Value() != v2 || out.V3.Value() != v3 || out.V4.Value() != v4 {
			t.Fatalf("round trip mismatch: got %+v", out)
		}
	})
}

func bufferBytesFuzz(buf *BitBuffer) []byte {
	n := buf.BitLength() / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(buf.PopBits(8))
	}
	return out
}
