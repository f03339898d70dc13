package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload
var ErrNilPayload = errors.New("event has no payload")

// DecodePayload returns the payload as T. Events from the in-process bus
// carry T or *T directly; dead-letter replays carry raw JSON and other
// sources a generic map, both of which are decoded.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch v := payload.(type) {
	case nil:
		return out, ErrNilPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, ErrNilPayload
		}
		return *v, nil
	case json.RawMessage:
		return out, unmarshalPayload(v, &out)
	case []byte:
		return out, unmarshalPayload(v, &out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("encoding %T payload: %w", payload, err)
	}
	return out, unmarshalPayload(data, &out)
}

func unmarshalPayload[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding payload as %T: %w", *out, err)
	}
	return nil
}
