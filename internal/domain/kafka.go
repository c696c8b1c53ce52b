package domain

import (
	"context"
	"errors"
)

// ErrConsumerClosed is surfaced by Consumer.Poll once the underlying client
// has been closed; further polls are pointless.
var ErrConsumerClosed = errors.New("consumer closed")

// Admin performs topic administration against a cluster.
type Admin interface {
	CreateTopic(ctx context.Context, spec TopicSpec) error
	Close()
}

// Producer publishes records asynchronously. The promise runs once per
// record when the broker acknowledges or rejects it; records still
// unacknowledged when Flush's context expires never resolve.
type Producer interface {
	Produce(ctx context.Context, msg Message, promise func(DeliveryReport))
	Flush(ctx context.Context) error
	Close()
}

// Consumer polls records for a consumer group. One Poll call blocks at most
// for the duration of its context; fetch errors are returned alongside any
// records so the caller can keep polling.
type Consumer interface {
	Poll(ctx context.Context) ([]Record, []error)
	Close()
}

// ProducerOptions carry the optional produce-side client tuning. Nil fields
// leave the client defaults in place.
type ProducerOptions struct {
	Partitioner    string
	StickyLingerMS *int
}

// ConsumerOptions scope a consumer to a group and a starting position.
type ConsumerOptions struct {
	GroupID       string
	Topic         string
	FromBeginning bool
}

// ClientFactory creates Kafka clients from configuration.
type ClientFactory interface {
	Admin() (Admin, error)
	Producer(opts ProducerOptions) (Producer, error)
	Consumer(opts ConsumerOptions) (Consumer, error)
}
