package kafka

import (
	"context"

	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer implements domain.Producer on top of kgo. Produce enqueues and
// returns immediately; the promise fires on the client's internal goroutines
// once the broker acknowledges or rejects the record.
type Producer struct {
	client *kgo.Client
}

// Produce enqueues one record for asynchronous publication.
func (p *Producer) Produce(ctx context.Context, msg domain.Message, promise func(domain.DeliveryReport)) {
	rec := &kgo.Record{
		Topic: msg.Topic,
		Key:   msg.Key,
		Value: msg.Value,
	}
	p.client.Produce(ctx, rec, func(r *kgo.Record, err error) {
		promise(domain.DeliveryReport{
			Topic:     r.Topic,
			Partition: r.Partition,
			Offset:    r.Offset,
			Err:       err,
		})
	})
}

// Flush blocks until every enqueued record is acknowledged or the context
// expires, whichever comes first.
func (p *Producer) Flush(ctx context.Context) error {
	return p.client.Flush(ctx)
}

// Close releases the underlying client.
func (p *Producer) Close() {
	p.client.Close()
}
