package uavcan

import "github.com/canflux/uavcan/internal/codecerr"

// CANEFFMask is the 29-bit payload mask of a CAN 2.0B extended identifier
// (the standard CAN_EFF_MASK used for SocketCAN interop); a UAVCAN transfer
// identifier always fits inside it.
const CANEFFMask = 0x1FFFFFFF

// Kind identifies which of the four UAVCAN v0 transfer-identifier layouts a
// 29-bit value follows.
type Kind int

const (
	KindMessage Kind = iota
	KindAnonymousMessage
	KindServiceRequest
	KindServiceResponse
)

func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindAnonymousMessage:
		return "anonymous_message"
	case KindServiceRequest:
		return "service_request"
	case KindServiceResponse:
		return "service_response"
	default:
		return "unknown"
	}
}

// bit layout shared by every kind: priority occupies the top 5 bits.
const (
	priorityShift = 24
	priorityMask  = 0x1F

	serviceFlagBit = 1 << 15
)

// FrameID is a composed 29-bit UAVCAN transfer identifier, always within
// CANEFFMask.
type FrameID uint32

// MessageHeader is the decoded identifier of a regular (non-anonymous)
// message frame: source_node(7b)[0:7) | type_id(16b)[8:24) | priority(5b)[24:29).
type MessageHeader struct {
	Priority   uint8
	TypeID     uint16
	SourceNode uint8
}

// ID composes the 29-bit identifier for this header.
func (h MessageHeader) ID() FrameID {
	return FrameID(uint32(h.Priority&priorityMask)<<priorityShift |
		uint32(h.TypeID)<<8 |
		uint32(h.SourceNode&0x7F))
}

// AnonymousHeader is the decoded identifier of an anonymous message frame:
// type_id(2b)[8:10) | discriminator(14b)[10:24) | priority(5b)[24:29). The
// source-node field is always zero (there is no node identity to carry).
type AnonymousHeader struct {
	Priority      uint8
	TypeID        uint8
	Discriminator uint16
}

func (h AnonymousHeader) ID() FrameID {
	return FrameID(uint32(h.Priority&priorityMask)<<priorityShift |
		uint32(h.Discriminator&0x3FFF)<<10 |
		uint32(h.TypeID&0x3)<<8)
}

// ServiceHeader is the decoded identifier shared by service request and
// response frames: source_node(7b)[0:7) | destination_node(7b)[8:15) |
// serviceFlagBit[15] | type_id(8b)[16:24) | priority(5b)[24:29).
//
// The bit the original wire format labels request_not_response is fixed at
// 1 for both requests and responses here: it is taken to mean only "this is
// a service frame", with the request/response distinction left to a
// transport-layer convention this package does not model. FromRequest and
// FromResponse therefore produce identical bits for the same field values;
// they exist as two named constructors only so callers state their intent
// at the call site.
type ServiceHeader struct {
	Priority        uint8
	TypeID          uint8
	SourceNode      uint8
	DestinationNode uint8
}

func (h ServiceHeader) ID() FrameID {
	return FrameID(uint32(h.Priority&priorityMask)<<priorityShift |
		uint32(h.TypeID)<<16 |
		serviceFlagBit |
		uint32(h.DestinationNode&0x7F)<<8 |
		uint32(h.SourceNode&0x7F))
}

// FromMessage composes the identifier for a regular message frame.
func FromMessage(priority uint8, typeID uint16, sourceNode uint8) FrameID {
	return MessageHeader{Priority: priority, TypeID: typeID, SourceNode: sourceNode}.ID()
}

// FromAnonymousMessage composes the identifier for an anonymous message
// frame.
func FromAnonymousMessage(priority uint8, typeID uint8, discriminator uint16) FrameID {
	return AnonymousHeader{Priority: priority, TypeID: typeID, Discriminator: discriminator}.ID()
}

// FromRequest composes the identifier for a service request frame.
func FromRequest(priority, typeID, sourceNode, destinationNode uint8) FrameID {
	return ServiceHeader{Priority: priority, TypeID: typeID, SourceNode: sourceNode, DestinationNode: destinationNode}.ID()
}

// FromResponse composes the identifier for a service response frame.
func FromResponse(priority, typeID, sourceNode, destinationNode uint8) FrameID {
	return ServiceHeader{Priority: priority, TypeID: typeID, SourceNode: sourceNode, DestinationNode: destinationNode}.ID()
}

// Parse decodes id under the given kind, returning codecerr.ErrWrongTypeId
// if id's bit 15 (the service/non-service discriminator) disagrees with a
// message or service kind. For KindAnonymousMessage bit 15 belongs to the
// discriminator and is not checked. The caller must already know which kind a frame claims to be —
// typically from the CAN identifier's associated subscription or service
// table — since bit 15 alone cannot distinguish request from response.
func Parse(kind Kind, id FrameID) (any, error) {
	u := uint32(id) & CANEFFMask
	priority := uint8(u >> priorityShift & priorityMask)
	isService := u&serviceFlagBit != 0

	switch kind {
	case KindMessage:
		if isService {
			return nil, codecerr.ErrWrongTypeId
		}
		return MessageHeader{
			Priority:   priority,
			TypeID:     uint16(u >> 8 & 0xFFFF),
			SourceNode: uint8(u & 0x7F),
		}, nil
	case KindAnonymousMessage:
		// Bit 15 lies inside the discriminator field here, so it is not
		// checked.
		return AnonymousHeader{
			Priority:      priority,
			TypeID:        uint8(u >> 8 & 0x3),
			Discriminator: uint16(u >> 10 & 0x3FFF),
		}, nil
	case KindServiceRequest, KindServiceResponse:
		if !isService {
			return nil, codecerr.ErrWrongTypeId
		}
		return ServiceHeader{
			Priority:        priority,
			TypeID:          uint8(u >> 16 & 0xFF),
			DestinationNode: uint8(u >> 8 & 0x7F),
			SourceNode:      uint8(u & 0x7F),
		}, nil
	default:
		return nil, codecerr.ErrWrongTypeId
	}
}
