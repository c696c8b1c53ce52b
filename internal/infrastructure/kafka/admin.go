package kafka

import (
	"context"
	"time"

	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

// createTopicTimeout bounds how long one create-topic request may wait for
// broker acknowledgment.
const createTopicTimeout = 15 * time.Second

// Admin implements domain.Admin on top of kadm.
type Admin struct {
	client *kgo.Client
	admin  *kadm.Client
}

// CreateTopic creates a new topic with the specified partition count and
// replication factor. Broker-side rejections surface as kerr errors on the
// per-topic response.
func (a *Admin) CreateTopic(ctx context.Context, spec domain.TopicSpec) error {
	cctx, cancel := context.WithTimeout(ctx, createTopicTimeout)
	defer cancel()

	resp, err := a.admin.CreateTopics(cctx, spec.Partitions, spec.ReplicationFactor, nil, spec.Name)
	if err != nil {
		return err
	}

	for _, r := range resp {
		if r.Err != nil {
			return r.Err
		}
	}

	return nil
}

// Close releases the underlying client.
func (a *Admin) Close() {
	a.client.Close()
}
