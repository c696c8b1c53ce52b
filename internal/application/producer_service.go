package application

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/OliveiraNt/maned-courier/internal/utils"
)

// flushTimeout bounds how long one produce invocation waits for delivery
// acknowledgments. Records still unacknowledged afterwards are abandoned.
const flushTimeout = 10 * time.Second

// ProduceSummary aggregates the per-message delivery outcomes of one
// produce invocation.
type ProduceSummary struct {
	Enqueued  int
	Delivered int
	Failed    int
	Abandoned int
}

// ProducerService publishes message batches and reports delivery outcomes.
// Delivery lines go to out (success) and errOut (failure) as the broker
// acknowledgments resolve.
type ProducerService struct {
	producer domain.Producer
	out      io.Writer
	errOut   io.Writer
	now      func() time.Time
}

// NewProducerService creates a new producer service.
func NewProducerService(producer domain.Producer, out, errOut io.Writer) *ProducerService {
	return &ProducerService{
		producer: producer,
		out:      out,
		errOut:   errOut,
		now:      time.Now,
	}
}

// Produce enqueues the request's payloads, waits for acknowledgments up to
// the flush timeout, and returns the aggregate outcome. Individual delivery
// failures are reported but never returned as an error: this is a
// best-effort diagnostic publisher, not a guaranteed-delivery path.
func (s *ProducerService) Produce(ctx context.Context, req domain.ProduceRequest) ProduceSummary {
	payloads := BuildPayloads(req, s.now())

	var key []byte
	if req.HasKey {
		key = []byte(req.Key)
	}

	var (
		mu        sync.Mutex
		delivered int
		failed    int
	)
	for _, payload := range payloads {
		msg := domain.Message{Topic: req.Topic, Key: key, Value: []byte(payload)}
		s.producer.Produce(ctx, msg, func(rep domain.DeliveryReport) {
			mu.Lock()
			defer mu.Unlock()
			if rep.Err != nil {
				failed++
				fmt.Fprintf(s.errOut, "Delivery failed: %v\n", rep.Err)
				return
			}
			delivered++
			fmt.Fprintf(s.out, "Delivered to topic=%s partition=%d offset=%d\n",
				rep.Topic, rep.Partition, rep.Offset)
		})
	}

	fctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()
	if err := s.producer.Flush(fctx); err != nil {
		utils.Logger.Warn("flush timed out, abandoning unacknowledged messages", "err", err)
	}

	mu.Lock()
	defer mu.Unlock()
	summary := ProduceSummary{
		Enqueued:  len(payloads),
		Delivered: delivered,
		Failed:    failed,
		Abandoned: len(payloads) - delivered - failed,
	}
	utils.Logger.Info("produce finished", "enqueued", summary.Enqueued,
		"delivered", summary.Delivered, "failed", summary.Failed, "abandoned", summary.Abandoned)
	return summary
}

// BuildPayloads expands a produce request into its payload sequence. A
// literal message is repeated count times (at least once); otherwise count
// payloads are synthesized, each embedding its sequence index and the
// invocation timestamp so every payload is unique.
func BuildPayloads(req domain.ProduceRequest, now time.Time) []string {
	if req.HasMessage {
		count := max(req.Count, 1)
		payloads := make([]string, count)
		for i := range payloads {
			payloads[i] = req.Message
		}
		return payloads
	}

	count := max(req.Count, 0)
	ts := now.Unix()
	payloads := make([]string, count)
	for i := range payloads {
		payloads[i] = fmt.Sprintf("message-%d-ts-%d", i, ts)
	}
	return payloads
}
