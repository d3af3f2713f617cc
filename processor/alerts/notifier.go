// Package alerts publishes processing-failure notifications to the alert
// routing key on the shared bus.
package alerts

import (
	"context"
	"fmt"

	"github.com/netvista/telemetry-pipeline/mq"
)

// Alert is the wire shape of one alert notification
type Alert struct {
	Subject    string            `json:"subject"`
	Message    string            `json:"message"`
	Attributes map[string]string `json:"attributes"`
}

// Notifier sends alerts over the bus
type Notifier struct {
	client     *mq.Client
	routingKey string
}

// NewNotifier creates a new alert notifier
func NewNotifier(client *mq.Client, routingKey string) *Notifier {
	return &Notifier{
		client:     client,
		routingKey: routingKey,
	}
}

// Notify publishes one alert for a processing failure
func (n *Notifier) Notify(ctx context.Context, component, detail, batchID string) error {
	alert := Alert{
		Subject: fmt.Sprintf("Stream processing error in %s", component),
		Message: fmt.Sprintf(
			"A processing error occurred in the network telemetry pipeline.\n\nComponent: %s\nError: %s\nBatch ID: %s",
			component, detail, batchID,
		),
		Attributes: map[string]string{
			"component": component,
			"batch_id":  batchID,
		},
	}

	if err := n.client.PublishJSON(ctx, n.routingKey, alert); err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}

	return nil
}
