package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Consumer implements domain.Consumer on top of a kgo group consumer.
type Consumer struct {
	client *kgo.Client
}

// Poll fetches records, blocking at most for the duration of ctx. Fetch
// errors are returned alongside any records so the caller can keep polling;
// the poll context's own expiry is not an error, just an empty poll.
func (c *Consumer) Poll(ctx context.Context) ([]domain.Record, []error) {
	fetches := c.client.PollFetches(ctx)
	if fetches.IsClientClosed() {
		return nil, []error{domain.ErrConsumerClosed}
	}

	var errs []error
	fetches.EachError(func(t string, p int32, err error) {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return
		}
		errs = append(errs, fmt.Errorf("topic %s partition %d: %w", t, p, err))
	})

	var records []domain.Record
	fetches.EachRecord(func(r *kgo.Record) {
		records = append(records, domain.Record{
			Topic:     r.Topic,
			Partition: r.Partition,
			Offset:    r.Offset,
			Key:       r.Key,
			Value:     r.Value,
			Timestamp: r.Timestamp,
		})
	})

	return records, errs
}

// Close leaves the consumer group and releases the underlying client.
func (c *Consumer) Close() {
	c.client.Close()
}
