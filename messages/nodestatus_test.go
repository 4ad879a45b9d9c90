package messages

import (
	"testing"

	"github.com/canflux/uavcan"
)

func TestNodeStatus_RoundTrip(t *testing.T) {
	in := NewNodeStatus()
	in.UptimeSec.Set(1)
	in.Health.Set(2)
	in.Mode.Set(3)
	in.SubMode.Set(4)
	in.VendorCode.Set(5)

	var buf uavcan.BitBuffer
	ser := uavcan.NewSerializer(in)
	if outcome := ser.SerializeInto(&buf); outcome != uavcan.Finished {
		t.Fatalf("serialize outcome = %v, want Finished", outcome)
	}

	out := NewNodeStatus()
	buf.SetFinal(true)
	d := uavcan.NewDeserializer(out)
	outcome, err := d.DeserializeFrom(&buf)
	if err != nil {
		t.Fatalf("deserialize error: %v", err)
	}
	if outcome != uavcan.Finished {
		t.Fatalf("deserialize outcome = %v, want Finished", outcome)
	}
	if out.UptimeSec.Value() != 1 || out.Health.Value() != 2 || out.Mode.Value() != 3 ||
		out.SubMode.Value() != 4 || out.VendorCode.Value() != 5 {
		t.Fatalf("round-tripped NodeStatus mismatch: %+v", out)
	}
}
