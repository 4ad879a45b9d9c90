package messages

import (
	"testing"

	"github.com/canflux/uavcan"
)

func TestLogMessage_TailArrayOmitsLengthPrefix(t *testing.T) {
	in := NewLogMessage()
	in.Level.Set(5)
	for _, b := range []byte("ok") {
		if err := in.Source.Append(uavcan.NewUint8(b)); err != nil {
			t.Fatalf("Source.Append: %v", err)
		}
	}
	for _, b := range []byte("boot complete") {
		if err := in.Text.Append(uavcan.NewUint8(b)); err != nil {
			t.Fatalf("Text.Append: %v", err)
		}
	}

	var buf uavcan.BitBuffer
	ser := uavcan.NewSerializer(in)
	if outcome := ser.SerializeInto(&buf); outcome != uavcan.Finished {
		t.Fatalf("serialize outcome = %v, want Finished", outcome)
	}

	// level(3) + source length(5) + 2*8 source + text (13 bytes, no length
	// prefix since it is the tail field).
	wantBits := 3 + in.Source.LengthBits() + 2*8 + 13*8
	if got := buf.BitLength(); got != wantBits {
		t.Fatalf("serialized bit length = %d, want %d", got, wantBits)
	}

	buf.SetFinal(true)
	out := NewLogMessage()
	d := uavcan.NewDeserializer(out)
	outcome, err := d.DeserializeFrom(&buf)
	if err != nil {
		t.Fatalf("deserialize error: %v", err)
	}
	if outcome != uavcan.Finished {
		t.Fatalf("deserialize outcome = %v, want Finished", outcome)
	}

	if out.Level.Value() != 5 {
		t.Fatalf("Level = %d, want 5", out.Level.Value())
	}
	if out.Source.CurrentLength() != 2 {
		t.Fatalf("Source.CurrentLength = %d, want 2", out.Source.CurrentLength())
	}
	if out.Text.CurrentLength() != 13 {
		t.Fatalf("Text.CurrentLength = %d, want 13", out.Text.CurrentLength())
	}
	gotText := make([]byte, out.Text.CurrentLength())
	for i := range gotText {
		gotText[i] = out.Text.Element(i).Value()
	}
	if string(gotText) != "boot complete" {
		t.Fatalf("Text = %q, want %q", gotText, "boot complete")
	}
}
