//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"supplierhub/internal/events"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	brokers   []string
	publisher *events.KafkaPublisher
}

const testTopic = "supplierhub.events.test"

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.brokers = mgr.GetRedpanda(s.T()).Brokers

	publisher, err := events.NewKafkaPublisher(context.Background(), s.brokers, testTopic)
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *KafkaPublisherSuite) TearDownSuite() {
	if s.publisher != nil {
		s.publisher.Close()
	}
}

func (s *KafkaPublisherSuite) TestPublishRoundTrip() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	supplierID := id.NewSupplierID()
	event := events.Event{
		Kind:       events.KindSelectionConfirmed,
		SupplierID: supplierID,
		Subject:    "Photography",
		Payload:    map[string]string{"subcategories": "Weddings,Portraits"},
		At:         time.Now().UTC().Truncate(time.Millisecond),
	}
	s.Require().NoError(s.publisher.Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.ConsumeTopics(testTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().NotEmpty(records)

	record := records[len(records)-1]
	s.Equal(supplierID.String(), string(record.Key), "events are keyed by supplier for partition ordering")

	var got events.Event
	s.Require().NoError(json.Unmarshal(record.Value, &got))
	s.Equal(event.Kind, got.Kind)
	s.Equal(event.Subject, got.Subject)
	s.Equal(event.Payload, got.Payload)
}

func (s *KafkaPublisherSuite) TestEnsureTopicIsIdempotent() {
	// A second publisher against the same topic must not fail on
	// TopicAlreadyExists.
	again, err := events.NewKafkaPublisher(context.Background(), s.brokers, testTopic)
	s.Require().NoError(err)
	again.Close()
}
