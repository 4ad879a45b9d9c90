package uavcan

// Outcome reports whether a serialize/deserialize step ran to completion or
// paused because the bit buffer it was driving became the limiting factor
// (full on serialize, empty on deserialize). Pausing is cooperative, not an
// error: the caller supplies a fresh buffer and resumes the same call with
// an advanced start bit.
type Outcome int

const (
	// Finished means every remaining bit of the field was processed.
	Finished Outcome = iota
	// Paused means the buffer ran out before the field was fully processed;
	// bitsDone bits were processed and the caller must resume later.
	Paused
)

func (o Outcome) String() string {
	if o == Finished {
		return "finished"
	}
	return "paused"
}
