package eventbus

import (
	"encoding/json"
	"fmt"

	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/amirasaad/parcels/pkg/eventbus"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EventTypes maps event type names to constructors used when decoding.
var EventTypes = map[string]func() eventbus.Event{
	domain.EventTypeParcelRegistered: func() eventbus.Event { return &domain.ParcelRegistered{} },
	domain.EventTypeParcelPriced:     func() eventbus.Event { return &domain.ParcelPriced{} },
}

// keyed events choose their own partition key.
type keyed interface {
	Key() string
}

func eventKey(event eventbus.Event) string {
	if k, ok := event.(keyed); ok {
		return k.Key()
	}
	return event.Type()
}

func encodeEnvelope(event eventbus.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", event.Type(), err)
	}
	return json.Marshal(envelope{Type: event.Type(), Payload: data})
}

func decodeEnvelope(raw []byte, types map[string]func() eventbus.Event) (eventbus.Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	constructor, ok := types[env.Type]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", env.Type, err)
	}
	return evt, nil
}
