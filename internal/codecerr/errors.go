// Package codecerr collects the sentinel errors the codec core can return,
// in the style of github.com/kstaniek/go-ampio-server's internal/server
// error classification: plain errors.New values, wrapped at the point of
// return and classified by callers with errors.Is.
package codecerr

import "errors"

var (
	// ErrStructureExhausted is returned when the deserializer has populated
	// every field of the structure but the buffer still holds at least one
	// full unused byte.
	ErrStructureExhausted = errors.New("uavcan: structure exhausted")

	// ErrNotFinished is returned when a transfer ends (transport signals
	// final) while the structure has fields remaining.
	ErrNotFinished = errors.New("uavcan: transfer ended before structure finished")

	// ErrLengthOverflow is returned when a dynamic array's length prefix,
	// or a tail-array's derived length, exceeds its declared capacity.
	ErrLengthOverflow = errors.New("uavcan: dynamic array length exceeds capacity")

	// ErrWrongTypeId is returned by frame ID parsing when the identifier's
	// service flag (bit 15) disagrees with the requested message or service
	// Kind, or the Kind is not one of the four known kinds.
	ErrWrongTypeId = errors.New("uavcan: frame identifier does not match expected kind")
)
