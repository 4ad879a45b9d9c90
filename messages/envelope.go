package messages

import "github.com/canflux/uavcan"

// Envelope pairs a transfer-frame identifier with a decoded body, the Go
// counterpart of original_source/uavcan/src/lib.rs's Frame<T> (the `id`
// plus `body` pair its from_message/from_request/from_response
// constructors build). Serialization of the body itself is the concern of
// uavcan.Serializer/Deserializer; Envelope only carries the two halves of
// a transfer together once both are known.
type Envelope[T uavcan.Struct] struct {
	ID   uavcan.FrameID
	Body T
}

// NewMessageEnvelope pairs body with a freshly composed message identifier.
func NewMessageEnvelope[T uavcan.Struct](body T, priority uint8, typeID uint16, sourceNode uint8) Envelope[T] {
	return Envelope[T]{ID: uavcan.FromMessage(priority, typeID, sourceNode), Body: body}
}

// NewAnonymousEnvelope pairs body with a freshly composed anonymous-message
// identifier.
func NewAnonymousEnvelope[T uavcan.Struct](body T, priority uint8, typeID uint8, discriminator uint16) Envelope[T] {
	return Envelope[T]{ID: uavcan.FromAnonymousMessage(priority, typeID, discriminator), Body: body}
}
