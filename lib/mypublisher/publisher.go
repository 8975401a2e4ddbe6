package mypublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/MarcGrol/storyfunnel/lib/myevents"
	"github.com/MarcGrol/storyfunnel/lib/mypubsub"
	"github.com/MarcGrol/storyfunnel/lib/mytime"
	"github.com/MarcGrol/storyfunnel/lib/myuuid"
)

type directPublisher struct {
	enveloper enveloper
	pubsub    mypubsub.PubSub
}

func New(pubsub mypubsub.PubSub, nower mytime.Nower, uuider myuuid.UUIDer) Publisher {
	return &directPublisher{
		enveloper: newEnveloper(nower, uuider),
		pubsub:    pubsub,
	}
}

func (p *directPublisher) CreateTopic(c context.Context, topicName string) error {
	return p.pubsub.CreateTopic(c, topicName)
}

func (p *directPublisher) Publish(c context.Context, topic string, event myevents.Event) error {
	envelope, err := p.enveloper.do(topic, event)
	if err != nil {
		return fmt.Errorf("error creating envelope: %s", err)
	}

	jsonBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error serializing envelope %s: %s", envelope.UID, err)
	}

	err = p.pubsub.Publish(c, envelope.Topic, string(jsonBytes))
	if err != nil {
		return fmt.Errorf("error publishing envelope %s: %s", envelope.UID, err)
	}

	log.Printf("Published event %s", envelope)

	return nil
}
