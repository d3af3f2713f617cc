package pipeline

import (
	"context"
	"fmt"

	"github.com/netvista/telemetry-pipeline/mq"
	"github.com/netvista/telemetry-pipeline/processor/parser"
)

// BusSink publishes each record family to its own routing key. An empty
// family is accepted and simply not put on the wire, matching what the
// downstream topic consumers expect.
type BusSink struct {
	client       *mq.Client
	nodeKey      string
	interfaceKey string
	addressKey   string
}

// NewBusSink creates a record sink over the shared bus client
func NewBusSink(client *mq.Client, nodeKey, interfaceKey, addressKey string) *BusSink {
	return &BusSink{
		client:       client,
		nodeKey:      nodeKey,
		interfaceKey: interfaceKey,
		addressKey:   addressKey,
	}
}

// Publish sends the three record lists of one batch
func (s *BusSink) Publish(ctx context.Context, res parser.Result) error {
	if len(res.Nodes) > 0 {
		if err := s.client.PublishJSON(ctx, s.nodeKey, res.Nodes); err != nil {
			return fmt.Errorf("publish node records: %w", err)
		}
	}

	if len(res.Interfaces) > 0 {
		if err := s.client.PublishJSON(ctx, s.interfaceKey, res.Interfaces); err != nil {
			return fmt.Errorf("publish interface records: %w", err)
		}
	}

	if len(res.Addresses) > 0 {
		if err := s.client.PublishJSON(ctx, s.addressKey, res.Addresses); err != nil {
			return fmt.Errorf("publish address records: %w", err)
		}
	}

	return nil
}
