package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/OliveiraNt/maned-courier/internal/utils"
)

// pollTimeout is the per-poll budget. Short enough that the session's
// wall-clock deadline gets checked between polls.
const pollTimeout = time.Second

// ConsumerService drives one consume session over a group consumer.
type ConsumerService struct {
	consumer domain.Consumer
	out      io.Writer
	errOut   io.Writer
	poll     time.Duration
	now      func() time.Time
}

// NewConsumerService creates a new consumer service.
func NewConsumerService(consumer domain.Consumer, out, errOut io.Writer) *ConsumerService {
	return &ConsumerService{
		consumer: consumer,
		out:      out,
		errOut:   errOut,
		poll:     pollTimeout,
		now:      time.Now,
	}
}

// Run polls until the session's deadline or message cap is reached, printing
// one line per record. The consumer is closed on every exit path so group
// membership is always relinquished. Returns the number of records received.
func (s *ConsumerService) Run(ctx context.Context, sess domain.ConsumeSession) int {
	defer s.consumer.Close()

	hasDeadline := sess.TimeoutSeconds >= 0
	var deadline time.Time
	if hasDeadline {
		deadline = s.now().Add(time.Duration(sess.TimeoutSeconds * float64(time.Second)))
	}

	utils.Logger.Debug("consume session started", "topic", sess.Topic,
		"group", sess.GroupID, "from_beginning", sess.FromBeginning)

	seen := 0
loop:
	for ctx.Err() == nil && (!hasDeadline || s.now().Before(deadline)) {
		pctx, cancel := context.WithTimeout(ctx, s.poll)
		records, errs := s.consumer.Poll(pctx)
		cancel()

		closed := false
		for _, err := range errs {
			if errors.Is(err, domain.ErrConsumerClosed) {
				closed = true
				continue
			}
			fmt.Fprintf(s.errOut, "Consumer error: %v\n", err)
		}

		for _, r := range records {
			fmt.Fprintf(s.out, "topic=%s partition=%d offset=%d key=%s value=%s\n",
				r.Topic, r.Partition, r.Offset, string(r.Key), string(r.Value))
			seen++
			if sess.MaxMessages > 0 && seen >= sess.MaxMessages {
				break loop
			}
		}

		if closed {
			break
		}
	}

	if seen == 0 && hasDeadline {
		fmt.Fprintln(s.errOut, "No messages consumed before timeout")
	}

	utils.Logger.Debug("consume session finished", "topic", sess.Topic, "received", seen)
	return seen
}
