package ports

import (
	"context"
	"errors"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

// ErrSlotEmpty is returned by SessionSlot.Load when nothing is stored.
var ErrSlotEmpty = errors.New("session slot empty")

// SessionSlot is the single durable key-value slot holding the serialized
// session record.
type SessionSlot interface {
	// Load returns the stored bytes or ErrSlotEmpty.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	// Clear removes the record. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// IdentityCodec converts an Identity to and from the slot payload.
// Decode must wrap domain.ErrMalformedRecord for any payload it rejects.
type IdentityCodec interface {
	Encode(id domain.Identity) ([]byte, error)
	Decode(payload []byte) (domain.Identity, error)
}
