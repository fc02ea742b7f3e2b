// Package codec converts identities to and from the durable session record.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

// JSON stores the flat identity record as-is.
type JSON struct{}

func NewJSON() JSON { return JSON{} }

func (JSON) Encode(id domain.Identity) ([]byte, error) {
	b, err := json.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("encode identity: %w", err)
	}
	return b, nil
}

func (JSON) Decode(payload []byte) (domain.Identity, error) {
	var id domain.Identity
	if err := json.Unmarshal(payload, &id); err != nil {
		// Identity.UnmarshalJSON already wraps ErrMalformedRecord; syntax
		// errors from the decoder itself do not.
		if errors.Is(err, domain.ErrMalformedRecord) {
			return domain.Identity{}, err
		}
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}
	return id, nil
}
