package mypublisher

import (
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/storyfunnel/lib/myevents"
	"github.com/MarcGrol/storyfunnel/lib/mytime"
	"github.com/MarcGrol/storyfunnel/lib/myuuid"
)

type enveloper struct {
	nower  mytime.Nower
	uuider myuuid.UUIDer
}

func newEnveloper(nower mytime.Nower, uuider myuuid.UUIDer) enveloper {
	return enveloper{
		nower:  nower,
		uuider: uuider,
	}
}

// Every publication gets its own uid: two identical events are two facts, not one.
func (e enveloper) do(topic string, event myevents.Event) (myevents.EventEnvelope, error) {
	jsonPayload, err := json.Marshal(event)
	if err != nil {
		return myevents.EventEnvelope{}, fmt.Errorf("error marshalling event-payload: %s", err)
	}

	return myevents.EventEnvelope{
		UID:           e.uuider.Create(),
		CreatedAt:     e.nower.Now(),
		Topic:         topic,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(jsonPayload),
	}, nil
}
