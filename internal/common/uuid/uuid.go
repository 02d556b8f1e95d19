// Package uuid issues the time-ordered identifiers used to correlate log
// lines of a single request.
package uuid

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

type UUID = uuid.UUID

// New returns a version 7 UUID. If the clock-based generator fails it falls
// back to a random version 4 UUID.
func New() UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// NewString is New formatted in the canonical 36 character form.
func NewString() string {
	return New().String()
}

// Timestamp returns the creation time embedded in a version 7 UUID.
func Timestamp(id UUID) (time.Time, bool) {
	if id.Version() != 7 {
		return time.Time{}, false
	}
	ms := binary.BigEndian.Uint64(id[0:8]) >> 16 // top 48 bits
	return time.UnixMilli(int64(ms)), true
}

// TimestampString parses s and returns its embedded creation time.
func TimestampString(s string) (time.Time, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return time.Time{}, false
	}
	return Timestamp(id)
}
