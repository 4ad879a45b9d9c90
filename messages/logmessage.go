package messages

import "github.com/canflux/uavcan"

// LogMessage mirrors original_source's LogMessage test fixture: a 3-bit
// level followed by two dynamic byte arrays, the second of which is the
// structure's tail field and so drops its length prefix on the wire.
type LogMessage struct {
	Level  uavcan.Uint3
	Source *uavcan.DynamicArray[uavcan.Uint8, *uavcan.Uint8]
	Text   *uavcan.DynamicArray[uavcan.Uint8, *uavcan.Uint8]
}

// NewLogMessage returns a zero-valued LogMessage with Source capped at 31
// bytes and Text (the tail array) capped at 90 bytes, matching the
// capacities in the reference fixture.
func NewLogMessage() *LogMessage {
	return &LogMessage{
		Source: uavcan.NewDynamicArray[uavcan.Uint8, *uavcan.Uint8](31),
		Text:   uavcan.NewDynamicArray[uavcan.Uint8, *uavcan.Uint8](90),
	}
}

func (m *LogMessage) FlattenedFieldsLen() int { return 3 }

func (m *LogMessage) Field(i int) uavcan.Primitive {
	switch i {
	case 0:
		return &m.Level
	case 1:
		return m.Source
	case 2:
		return m.Text
	default:
		panic("uavcan: LogMessage: field index out of range")
	}
}

func (m *LogMessage) FieldMut(i int) uavcan.Primitive { return m.Field(i) }

// HasTailArray reports Text as the tail-eligible dynamic array, opting this
// structure into the root-only tail-array optimization.
func (m *LogMessage) HasTailArray() (uavcan.TailArray, bool) { return m.Text, true }
