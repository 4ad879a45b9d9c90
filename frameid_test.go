package uavcan

import (
	"errors"
	"testing"

	"github.com/canflux/uavcan/internal/codecerr"
)

func TestFrameID_MessageScenario(t *testing.T) {
	id := FromMessage(16, 341, 42)
	if got, want := uint32(id), uint32(0x1001552A); got != want {
		t.Fatalf("FromMessage id = %#x, want %#x", got, want)
	}
	h, err := Parse(KindMessage, id)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mh, ok := h.(MessageHeader)
	if !ok {
		t.Fatalf("Parse returned %T, want MessageHeader", h)
	}
	if mh.Priority != 16 || mh.TypeID != 341 || mh.SourceNode != 42 {
		t.Fatalf("decoded header = %+v, want {16 341 42}", mh)
	}
	if mh.ID() != id {
		t.Fatalf("frame-ID bijection failed: ID()=%#x, want %#x", mh.ID(), id)
	}
}

func TestFrameID_ServiceRequestScenario(t *testing.T) {
	id := FromRequest(0, 1, 1, 2)
	if got, want := uint32(id), uint32(0x018201); got != want {
		t.Fatalf("FromRequest id = %#x, want %#x", got, want)
	}
	h, err := Parse(KindServiceRequest, id)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sh := h.(ServiceHeader)
	if sh.Priority != 0 || sh.TypeID != 1 || sh.SourceNode != 1 || sh.DestinationNode != 2 {
		t.Fatalf("decoded header = %+v", sh)
	}
}

func TestFrameID_AnonymousScenario(t *testing.T) {
	id := FromAnonymousMessage(0, 1, 0x2AAA)
	if got, want := uint32(id), uint32(0x00AAA900); got != want {
		t.Fatalf("FromAnonymousMessage id = %#x, want %#x", got, want)
	}
	h, err := Parse(KindAnonymousMessage, id)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ah := h.(AnonymousHeader)
	if ah.TypeID != 1 || ah.Discriminator != 0x2AAA {
		t.Fatalf("decoded header = %+v", ah)
	}
}

func TestFrameID_WrongTypeId(t *testing.T) {
	id := FromRequest(0, 1, 1, 2) // a service identifier
	if _, err := Parse(KindMessage, id); !errors.Is(err, codecerr.ErrWrongTypeId) {
		t.Fatalf("Parse(KindMessage, service-id) error = %v, want ErrWrongTypeId", err)
	}

	msgID := FromMessage(0, 1, 1)
	if _, err := Parse(KindServiceRequest, msgID); !errors.Is(err, codecerr.ErrWrongTypeId) {
		t.Fatalf("Parse(KindServiceRequest, message-id) error = %v, want ErrWrongTypeId", err)
	}
}
