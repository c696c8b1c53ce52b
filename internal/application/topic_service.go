package application

import (
	"context"
	"errors"

	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/OliveiraNt/maned-courier/internal/utils"
	"github.com/twmb/franz-go/pkg/kerr"
)

// TopicOutcome classifies a successful create-topic call.
type TopicOutcome int

const (
	// TopicCreated means the broker acknowledged a new topic.
	TopicCreated TopicOutcome = iota
	// TopicAlreadyExists means the topic was there before the call. Topic
	// creation is run repeatedly in development workflows, so this counts
	// as success.
	TopicAlreadyExists
)

// TopicService handles topic administration operations.
type TopicService struct {
	admin domain.Admin
}

// NewTopicService creates a new topic service.
func NewTopicService(admin domain.Admin) *TopicService {
	return &TopicService{admin: admin}
}

// CreateTopic creates a topic, reporting whether it was created now or
// already existed. Any other broker failure is returned as-is.
func (s *TopicService) CreateTopic(ctx context.Context, spec domain.TopicSpec) (TopicOutcome, error) {
	if err := spec.Validate(); err != nil {
		return TopicCreated, err
	}

	if err := s.admin.CreateTopic(ctx, spec); err != nil {
		if errors.Is(err, kerr.TopicAlreadyExists) {
			utils.Logger.Debug("topic already exists", "topic", spec.Name)
			return TopicAlreadyExists, nil
		}
		utils.Logger.Error("create topic failed", "topic", spec.Name, "err", err)
		return TopicCreated, err
	}

	utils.Logger.Info("topic created", "topic", spec.Name,
		"partitions", spec.Partitions, "replication_factor", spec.ReplicationFactor)
	return TopicCreated, nil
}
