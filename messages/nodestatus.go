// Package messages holds hand-written example structures exercising the
// uavcan codec core: a densely packed fixed-width message (NodeStatus) and
// a message ending in a tail-eligible dynamic array (LogMessage), grounded
// on original_source/uavcan/src/header_macros.rs's NodeStatus/LogMessage
// test fixtures. Real deployments would generate these from DSDL; this
// package plays the part of that generated code.
package messages

import "github.com/canflux/uavcan"

// NodeStatus mirrors the UAVCAN v0 uavcan.protocol.NodeStatus layout:
// uptime_sec(u32), health(u2), mode(u3), sub_mode(u3), vendor_code(u16) —
// 5 fixed-width fields, no dynamic array.
type NodeStatus struct {
	UptimeSec  uavcan.Uint32
	Health     uavcan.Uint2
	Mode       uavcan.Uint3
	SubMode    uavcan.Uint3
	VendorCode uavcan.Uint16
}

// NewNodeStatus returns a zero-valued NodeStatus; every primitive reads
// back as 0 until set.
func NewNodeStatus() *NodeStatus { return &NodeStatus{} }

func (m *NodeStatus) FlattenedFieldsLen() int { return 5 }

func (m *NodeStatus) Field(i int) uavcan.Primitive {
	switch i {
	case 0:
		return &m.UptimeSec
	case 1:
		return &m.Health
	case 2:
		return &m.Mode
	case 3:
		return &m.SubMode
	case 4:
		return &m.VendorCode
	default:
		panic("uavcan: NodeStatus: field index out of range")
	}
}

func (m *NodeStatus) FieldMut(i int) uavcan.Primitive { return m.Field(i) }
