package analytics

import (
	"context"

	"github.com/TonySyv/yshstob/internal/app/config"
	"github.com/TonySyv/yshstob/internal/app/logger"
	"github.com/TonySyv/yshstob/internal/app/models"
)

// Pipeline is the in-process fire-and-forget handoff between the redirect
// path and the Aggregator: a buffered channel fed by non-blocking sends and
// drained by a single background worker. The redirect response never waits
// for the counter write, and no failure on this path propagates back.
type Pipeline struct {
	aggregator *Aggregator
	events     chan models.AnalyticsEvent
	doneChan   chan struct{}
}

// NewPipeline initializes the Pipeline and starts its background worker.
func NewPipeline(aggregator *Aggregator, doneChan chan struct{}) *Pipeline {
	pipeline := &Pipeline{
		aggregator: aggregator,
		events:     make(chan models.AnalyticsEvent, config.Settings.EventsBufferSize),
		doneChan:   doneChan,
	}
	go pipeline.run()
	return pipeline
}

// Emit submits an event without blocking. When the buffer is full the event
// is dropped, the redirect path must never slow down for telemetry.
func (p *Pipeline) Emit(event models.AnalyticsEvent) {
	select {
	case p.events <- event:
	default:
		logger.Log.Warnw("events buffer is full, dropping redirect event", "code", event.Code)
	}
}

// run consumes events until the done channel is closed. The counter write
// uses a detached context so a client disconnect never aborts it.
func (p *Pipeline) run() {
	for {
		select {
		case <-p.doneChan:
			return
		case event := <-p.events:
			if err := p.aggregator.RecordRedirect(context.Background(), event.RedirectTimeMs); err != nil {
				logger.Log.Warnw("cannot record redirect event", "code", event.Code, "error", err)
			}
		}
	}
}
