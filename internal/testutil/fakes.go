package testutil

import (
	"context"

	"github.com/OliveiraNt/maned-courier/internal/domain"
)

// FakeAdmin is a test double implementing domain.Admin with configurable responses.
type FakeAdmin struct {
	Err     error
	Created []domain.TopicSpec
	Closed  bool
}

func (f *FakeAdmin) CreateTopic(_ context.Context, spec domain.TopicSpec) error {
	f.Created = append(f.Created, spec)
	return f.Err
}
func (f *FakeAdmin) Close() { f.Closed = true }

// FakeProducer implements domain.Producer. Promises are held until Flush,
// which resolves them in produce order: every delivery succeeds with an
// incrementing offset unless FailWith is set, and the last Abandon promises
// are never resolved, mimicking a flush timeout.
type FakeProducer struct {
	Produced []domain.Message
	FailWith error
	Abandon  int
	FlushErr error
	Closed   bool

	promises []func(domain.DeliveryReport)
}

func (f *FakeProducer) Produce(_ context.Context, msg domain.Message, promise func(domain.DeliveryReport)) {
	f.Produced = append(f.Produced, msg)
	f.promises = append(f.promises, promise)
}

func (f *FakeProducer) Flush(context.Context) error {
	resolve := len(f.promises) - f.Abandon
	for i, promise := range f.promises {
		if i >= resolve {
			break
		}
		msg := f.Produced[i]
		if f.FailWith != nil {
			promise(domain.DeliveryReport{Topic: msg.Topic, Err: f.FailWith})
			continue
		}
		promise(domain.DeliveryReport{Topic: msg.Topic, Partition: 0, Offset: int64(i)})
	}
	f.promises = nil
	return f.FlushErr
}

func (f *FakeProducer) Close() { f.Closed = true }

// PollBatch is one scripted Poll result.
type PollBatch struct {
	Records []domain.Record
	Errs    []error
}

// FakeConsumer implements domain.Consumer by replaying scripted batches,
// then returning empty polls.
type FakeConsumer struct {
	Batches []PollBatch
	Polls   int
	Closed  bool

	next int
}

func (f *FakeConsumer) Poll(context.Context) ([]domain.Record, []error) {
	f.Polls++
	if f.Closed {
		return nil, []error{domain.ErrConsumerClosed}
	}
	if f.next >= len(f.Batches) {
		return nil, nil
	}
	b := f.Batches[f.next]
	f.next++
	return b.Records, b.Errs
}

func (f *FakeConsumer) Close() { f.Closed = true }

// FakeFactory hands out pre-built fakes, implementing domain.ClientFactory.
type FakeFactory struct {
	AdminClient  *FakeAdmin
	ProducerOpts domain.ProducerOptions
	Producers    *FakeProducer
	ConsumerOpts domain.ConsumerOptions
	Consumers    *FakeConsumer
	Err          error
}

func (f *FakeFactory) Admin() (domain.Admin, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.AdminClient, nil
}

func (f *FakeFactory) Producer(opts domain.ProducerOptions) (domain.Producer, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.ProducerOpts = opts
	return f.Producers, nil
}

func (f *FakeFactory) Consumer(opts domain.ConsumerOptions) (domain.Consumer, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.ConsumerOpts = opts
	return f.Consumers, nil
}
