package kafka

import (
	"testing"

	"github.com/OliveiraNt/maned-courier/internal/config"
	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/OliveiraNt/maned-courier/internal/utils"
	"github.com/stretchr/testify/require"
)

// franz-go dials lazily, so client construction is testable without a broker.

func testFactory() *Factory {
	utils.InitLogger()
	return NewFactory(config.ClusterConfig{Brokers: []string{"localhost:9092"}})
}

func TestFactoryAdmin(t *testing.T) {
	f := testFactory()

	admin, err := f.Admin()
	require.NoError(t, err)
	require.NotNil(t, admin)
	admin.Close()
}

func TestFactoryProducer(t *testing.T) {
	f := testFactory()

	t.Run("defaults", func(t *testing.T) {
		p, err := f.Producer(domain.ProducerOptions{})
		require.NoError(t, err)
		require.NotNil(t, p)
		p.Close()
	})

	t.Run("partitioner and linger", func(t *testing.T) {
		linger := 50
		p, err := f.Producer(domain.ProducerOptions{
			Partitioner:    "murmur2_random",
			StickyLingerMS: &linger,
		})
		require.NoError(t, err)
		require.NotNil(t, p)
		p.Close()
	})

	t.Run("unknown partitioner", func(t *testing.T) {
		_, err := f.Producer(domain.ProducerOptions{Partitioner: "bogus"})
		require.Error(t, err)
	})
}

func TestFactoryConsumer(t *testing.T) {
	f := testFactory()

	t.Run("valid options", func(t *testing.T) {
		c, err := f.Consumer(domain.ConsumerOptions{
			GroupID:       "demo-group",
			Topic:         "test-topic",
			FromBeginning: true,
		})
		require.NoError(t, err)
		require.NotNil(t, c)
		c.Close()
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := f.Consumer(domain.ConsumerOptions{Topic: "test-topic"})
		require.Error(t, err)
	})

	t.Run("missing topic", func(t *testing.T) {
		_, err := f.Consumer(domain.ConsumerOptions{GroupID: "demo-group"})
		require.Error(t, err)
	})
}

func TestFactoryNoBrokers(t *testing.T) {
	utils.InitLogger()
	f := NewFactory(config.ClusterConfig{})

	_, err := f.Admin()
	require.Error(t, err)
	_, err = f.Producer(domain.ProducerOptions{})
	require.Error(t, err)
	_, err = f.Consumer(domain.ConsumerOptions{GroupID: "g", Topic: "t"})
	require.Error(t, err)
}
