package domain

import (
	"fmt"
	"time"
)

// ReferencePrefix tags every wallet transfer reference.
const ReferencePrefix = "PnD"

// Reference is the correlation id shared by the two transaction records of
// one transfer.
type Reference string

// NewReference derives a reference from the sender id and the transfer's
// wall-clock time: PnD-<first 6 chars of sender id>-<epoch millis>. It is a
// pure function and is computed exactly once per transfer call, so retries of
// the same transfer reuse the same reference.
func NewReference(senderID string, at time.Time) Reference {
	short := senderID
	if len(short) > 6 {
		short = short[:6]
	}
	return Reference(fmt.Sprintf("%s-%s-%d", ReferencePrefix, short, at.UnixMilli()))
}

func (r Reference) String() string {
	return string(r)
}
