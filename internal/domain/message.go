package domain

import (
	"errors"
	"fmt"
	"time"
)

// TopicSpec describes a topic to create.
type TopicSpec struct {
	Name              string
	Partitions        int32
	ReplicationFactor int16
}

// Validate checks the spec before any broker call is made.
func (s TopicSpec) Validate() error {
	if s.Name == "" {
		return errors.New("topic name is required")
	}
	if s.Partitions < 1 {
		return fmt.Errorf("partitions must be >= 1, got %d", s.Partitions)
	}
	if s.ReplicationFactor < 1 {
		return fmt.Errorf("replication factor must be >= 1, got %d", s.ReplicationFactor)
	}
	return nil
}

// Message is an outbound record. A nil key produces an unkeyed record.
type Message struct {
	Topic string
	Key   []byte
	Value []byte
}

// Record is an inbound record as fetched from a topic.
type Record struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Value     []byte
	Timestamp time.Time
}

// DeliveryReport is the asynchronous acknowledgment for one produced record.
// Err is nil on success, in which case Partition and Offset locate the record.
type DeliveryReport struct {
	Topic     string
	Partition int32
	Offset    int64
	Err       error
}

// ProduceRequest describes one produce invocation. When Message is unset the
// producer synthesizes Count unique payloads instead.
type ProduceRequest struct {
	Topic      string
	Message    string
	HasMessage bool
	Count      int
	Key        string
	HasKey     bool
}

// ConsumeSession describes one consume invocation. TimeoutSeconds < 0 means
// no deadline; MaxMessages == 0 means unlimited.
type ConsumeSession struct {
	Topic          string
	GroupID        string
	TimeoutSeconds float64
	MaxMessages    int
	FromBeginning  bool
}
