package uavcan

// Struct is implemented by every message/request/response body type. It
// presents the structure as a flat, depth-first list of primitive slots:
// nested structures and fixed arrays are expected to be unrolled by the
// implementer's own Field/FieldMut dispatch, exactly as a code generator
// would. A dynamic array counts as a single
// slot here, not one slot per element: the array value itself satisfies
// Primitive (see DynamicArray.SerializeBits/DeserializeBits), carrying its
// own length-then-elements bit layout internally, in the same way the
// reference Rust implementation's derive macros hand each array field to
// the driver as one opaque Serialize/Deserialize call.
type Struct interface {
	// FlattenedFieldsLen returns the number of top-level slots.
	FlattenedFieldsLen() int

	// Field returns the read side of slot i for serialization.
	Field(i int) Primitive

	// FieldMut returns the mutable slot i for deserialization. Most
	// implementations return the same value as Field; it is split out
	// only because some generated types expose read-only computed slots.
	FieldMut(i int) Primitive
}

// TailArray is implemented by a DynamicArray field that is eligible for the
// root-only tail-array optimization: it is the declared type
// of the last field of a Struct. A Struct that ends in such a field should
// also implement TailArrayStruct so the driver knows which slot to treat
// specially.
type TailArray interface {
	Primitive
	SerializeBitsTail(startBit int, buf *BitBuffer) (int, Outcome)
	DeserializeBitsTail(startBit int, buf *BitBuffer) (int, Outcome)
}

// TailArrayStruct is an optional extension of Struct: a structure whose
// last field is a dynamic array implements it to opt into the tail-array
// optimization. The driver only ever consults this on the single top-level
// Struct passed to NewSerializer/NewDeserializer, never on some nested
// sub-structure.
type TailArrayStruct interface {
	Struct
	// HasTailArray reports whether the last flattened field is a tail-
	// eligible dynamic array, returning it as a TailArray if so.
	HasTailArray() (TailArray, bool)
}
