package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/OliveiraNt/maned-courier/internal/testutil"
	"github.com/OliveiraNt/maned-courier/internal/utils"
	"github.com/stretchr/testify/require"
)

func newTestProducerService(p domain.Producer) (*ProducerService, *bytes.Buffer, *bytes.Buffer) {
	utils.InitLogger()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	svc := NewProducerService(p, out, errOut)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }
	return svc, out, errOut
}

func TestProducerService_LiteralMessageRepeated(t *testing.T) {
	t.Parallel()
	producer := &testutil.FakeProducer{}
	svc, out, errOut := newTestProducerService(producer)

	summary := svc.Produce(context.Background(), domain.ProduceRequest{
		Topic:      "test-topic",
		Message:    "hello",
		HasMessage: true,
		Count:      3,
		Key:        "k1",
		HasKey:     true,
	})

	require.Equal(t, ProduceSummary{Enqueued: 3, Delivered: 3}, summary)
	require.Len(t, producer.Produced, 3)
	for _, msg := range producer.Produced {
		require.Equal(t, "test-topic", msg.Topic)
		require.Equal(t, []byte("hello"), msg.Value)
		require.Equal(t, []byte("k1"), msg.Key)
	}
	require.Equal(t, 3, strings.Count(out.String(), "Delivered to topic=test-topic"))
	require.Empty(t, errOut.String())
}

func TestProducerService_SynthesizedPayloads(t *testing.T) {
	t.Parallel()
	producer := &testutil.FakeProducer{}
	svc, _, _ := newTestProducerService(producer)

	svc.Produce(context.Background(), domain.ProduceRequest{Topic: "test-topic", Count: 4})

	require.Len(t, producer.Produced, 4)
	for i, msg := range producer.Produced {
		require.Equal(t, fmt.Sprintf("message-%d-ts-1700000000", i), string(msg.Value))
		require.Nil(t, msg.Key)
	}
}

func TestProducerService_DeliveryFailuresAreNonFatal(t *testing.T) {
	t.Parallel()
	producer := &testutil.FakeProducer{FailWith: errors.New("broker rejected")}
	svc, out, errOut := newTestProducerService(producer)

	summary := svc.Produce(context.Background(), domain.ProduceRequest{
		Topic:      "test-topic",
		Message:    "m",
		HasMessage: true,
		Count:      2,
	})

	require.Equal(t, ProduceSummary{Enqueued: 2, Failed: 2}, summary)
	require.Empty(t, out.String())
	require.Equal(t, 2, strings.Count(errOut.String(), "Delivery failed: broker rejected"))
}

func TestProducerService_FlushTimeoutAbandons(t *testing.T) {
	t.Parallel()
	producer := &testutil.FakeProducer{Abandon: 2, FlushErr: context.DeadlineExceeded}
	svc, out, _ := newTestProducerService(producer)

	summary := svc.Produce(context.Background(), domain.ProduceRequest{
		Topic:      "test-topic",
		Message:    "m",
		HasMessage: true,
		Count:      5,
	})

	require.Equal(t, ProduceSummary{Enqueued: 5, Delivered: 3, Abandoned: 2}, summary)
	require.Equal(t, 3, strings.Count(out.String(), "Delivered to"))
}

func TestProducerService_DeliveryLineFormat(t *testing.T) {
	t.Parallel()
	producer := &testutil.FakeProducer{}
	svc, out, _ := newTestProducerService(producer)

	svc.Produce(context.Background(), domain.ProduceRequest{
		Topic:      "test-topic",
		Message:    "m",
		HasMessage: true,
		Count:      1,
	})

	require.Equal(t, "Delivered to topic=test-topic partition=0 offset=0\n", out.String())
}

func TestBuildPayloads(t *testing.T) {
	t.Parallel()
	ts := time.Unix(42, 0)

	t.Run("literal repeated with minimum one", func(t *testing.T) {
		payloads := BuildPayloads(domain.ProduceRequest{Message: "x", HasMessage: true, Count: 0}, ts)
		require.Equal(t, []string{"x"}, payloads)

		payloads = BuildPayloads(domain.ProduceRequest{Message: "x", HasMessage: true, Count: 3}, ts)
		require.Equal(t, []string{"x", "x", "x"}, payloads)
	})

	t.Run("synthesized are unique with shared timestamp", func(t *testing.T) {
		payloads := BuildPayloads(domain.ProduceRequest{Count: 3}, ts)
		require.Equal(t, []string{"message-0-ts-42", "message-1-ts-42", "message-2-ts-42"}, payloads)
	})

	t.Run("synthesized zero count", func(t *testing.T) {
		require.Empty(t, BuildPayloads(domain.ProduceRequest{Count: 0}, ts))
	})
}
