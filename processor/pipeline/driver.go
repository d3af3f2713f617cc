// Package pipeline orchestrates one extraction invocation per inbound raw
// message and hands the results to the transport, archive and alerting
// collaborators.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/netvista/telemetry-pipeline/processor/metrics"
	"github.com/netvista/telemetry-pipeline/processor/parser"
	"github.com/netvista/telemetry-pipeline/records"
)

// RecordSink accepts the three normalized record lists of one batch.
// Empty lists must be accepted without error.
type RecordSink interface {
	Publish(ctx context.Context, res parser.Result) error
}

// ArchiveExporter receives the raw payload for durable side-channel storage.
// Export failure never invalidates an otherwise successful invocation.
type ArchiveExporter interface {
	Export(ctx context.Context, batchID string, raw []byte) error
}

// AlertNotifier is told about invocation-level failures, fire-and-forget.
type AlertNotifier interface {
	Notify(ctx context.Context, component, detail, batchID string) error
}

// Source delivers one decoded raw payload per handler call.
type Source interface {
	Consume(ctx context.Context, queue string, handler func(context.Context, []byte)) error
}

// Params wires a Driver. Exporter may be nil when archiving is disabled.
type Params struct {
	Parser   *parser.Parser
	Source   Source
	RawQueue string
	Sink     RecordSink
	Exporter ArchiveExporter
	Alerts   AlertNotifier
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// Driver runs the consume -> extract -> publish cycle. A failed message is
// alerted and dropped; it never halts the pipeline.
type Driver struct {
	parser   *parser.Parser
	source   Source
	rawQueue string
	sink     RecordSink
	exporter ArchiveExporter
	alerts   AlertNotifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewDriver creates a new pipeline driver
func NewDriver(p Params) *Driver {
	return &Driver{
		parser:   p.Parser,
		source:   p.Source,
		rawQueue: p.RawQueue,
		sink:     p.Sink,
		exporter: p.Exporter,
		alerts:   p.Alerts,
		metrics:  p.Metrics,
		logger:   p.Logger,
	}
}

// Run consumes raw messages until ctx is cancelled. The in-flight message
// finishes processing before Run returns.
func (d *Driver) Run(ctx context.Context) error {
	return d.source.Consume(ctx, d.rawQueue, d.HandleMessage)
}

// HandleMessage processes one raw payload end to end.
func (d *Driver) HandleMessage(ctx context.Context, body []byte) {
	d.metrics.MessagesConsumed.Inc()

	start := time.Now()
	res, err := d.parser.Parse(body)
	d.metrics.ParseDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		d.fail(ctx, "parser", err, res.BatchID)
		return
	}

	// All three lists go to the sink unconditionally, empty ones included
	if err := d.sink.Publish(ctx, res); err != nil {
		d.fail(ctx, "record_sink", err, res.BatchID)
		return
	}

	if d.exporter != nil {
		if err := d.exporter.Export(ctx, res.BatchID, body); err != nil {
			// the archive is a side channel; the batch already succeeded
			d.logger.Error("archive export failed", "batch_id", res.BatchID, "error", err)
		}
	}

	d.metrics.BatchesProcessed.WithLabelValues("ok").Inc()
	d.metrics.RecordsExtracted.WithLabelValues(records.FamilyNode.String()).Add(float64(len(res.Nodes)))
	d.metrics.RecordsExtracted.WithLabelValues("interface").Add(float64(len(res.Interfaces)))
	d.metrics.RecordsExtracted.WithLabelValues(records.FamilyAddress.String()).Add(float64(len(res.Addresses)))

	d.logger.Info("batch processed",
		"batch_id", res.BatchID,
		"nodes", len(res.Nodes),
		"interfaces", len(res.Interfaces),
		"addresses", len(res.Addresses),
	)
}

func (d *Driver) fail(ctx context.Context, component string, err error, batchID string) {
	d.metrics.BatchesProcessed.WithLabelValues("failed").Inc()
	d.logger.Error("invocation failed",
		"component", component,
		"batch_id", batchID,
		"error", err,
	)

	if nerr := d.alerts.Notify(ctx, component, err.Error(), batchID); nerr != nil {
		// notification failure is logged, never escalated
		d.logger.Error("alert notification failed", "batch_id", batchID, "error", nerr)
		return
	}
	d.metrics.AlertsSent.Inc()
}
