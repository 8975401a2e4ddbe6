package mypublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/storyfunnel/lib/myevents"
	"github.com/MarcGrol/storyfunnel/lib/mytime"
	"github.com/MarcGrol/storyfunnel/lib/myuuid"
)

type exampleEvent struct {
	SessionID string
}

func (e exampleEvent) GetEventTypeName() string {
	return "example.happened"
}

func (e exampleEvent) GetAggregateName() string {
	return e.SessionID
}

type recordingPubSub struct {
	topics    []string
	published map[string][]string
	err       error
}

func (r *recordingPubSub) CreateTopic(c context.Context, topic string) error {
	r.topics = append(r.topics, topic)
	return r.err
}

func (r *recordingPubSub) Publish(c context.Context, topic string, data string) error {
	if r.err != nil {
		return r.err
	}
	if r.published == nil {
		r.published = map[string][]string{}
	}
	r.published[topic] = append(r.published[topic], data)
	return nil
}

func TestPublisher(t *testing.T) {

	t.Run("Publish wraps event in envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ps := &recordingPubSub{}
		nower := mytime.NewMockNower(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		sut := New(ps, nower, uuider)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("uid_1")

		// when
		err := sut.Publish(context.TODO(), "checkout", exampleEvent{SessionID: "cs_123"})

		// then
		require.NoError(t, err)
		require.Len(t, ps.published["checkout"], 1)

		envelope := myevents.EventEnvelope{}
		err = json.Unmarshal([]byte(ps.published["checkout"][0]), &envelope)
		require.NoError(t, err)
		assert.Equal(t, "uid_1", envelope.UID)
		assert.Equal(t, mytime.ExampleTime, envelope.CreatedAt)
		assert.Equal(t, "checkout", envelope.Topic)
		assert.Equal(t, "cs_123", envelope.AggregateUID)
		assert.Equal(t, "example.happened", envelope.EventTypeName)
		assert.JSONEq(t, `{"SessionID":"cs_123"}`, envelope.EventPayload)
	})

	t.Run("Identical events get distinct envelopes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ps := &recordingPubSub{}
		nower := mytime.NewMockNower(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		sut := New(ps, nower, uuider)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime).Times(2)
		gomock.InOrder(
			uuider.EXPECT().Create().Return("uid_1"),
			uuider.EXPECT().Create().Return("uid_2"),
		)

		// when
		_ = sut.Publish(context.TODO(), "checkout", exampleEvent{SessionID: "cs_123"})
		_ = sut.Publish(context.TODO(), "checkout", exampleEvent{SessionID: "cs_123"})

		// then
		assert.Len(t, ps.published["checkout"], 2)
		assert.NotEqual(t, ps.published["checkout"][0], ps.published["checkout"][1])
	})

	t.Run("Publish failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ps := &recordingPubSub{err: fmt.Errorf("broker down")}
		nower := mytime.NewMockNower(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		sut := New(ps, nower, uuider)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("uid_1")

		// when
		err := sut.Publish(context.TODO(), "checkout", exampleEvent{SessionID: "cs_123"})

		// then
		assert.ErrorContains(t, err, "broker down")
	})

	t.Run("Create topic", func(t *testing.T) {
		ps := &recordingPubSub{}
		sut := New(ps, mytime.RealNower{}, myuuid.RealUUIDer{})

		err := sut.CreateTopic(context.TODO(), "checkout")

		assert.NoError(t, err)
		assert.Equal(t, []string{"checkout"}, ps.topics)
	})
}
