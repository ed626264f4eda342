package match

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MikeSquared-Agency/TalentMatch/internal/events"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

// runTimeout bounds a subscription-triggered run; HTTP-triggered runs use
// the request context instead.
const runTimeout = 60 * time.Second

// SetupSubscriptions wires the asynchronous trigger path: a
// talent.match.request event starts a run and the outcome is published back
// on the completed/failed subjects. No-op without an events client.
func (r *Runner) SetupSubscriptions() {
	if r.events == nil {
		return
	}

	err := r.events.Subscribe(events.SubjectMatchRequest, func(_ string, data []byte) {
		var req events.MatchRequestEvent
		if err := json.Unmarshal(data, &req); err != nil {
			r.logger.Warn("invalid match request event", "error", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		_, err := r.Run(ctx, RunRequest{
			BenchmarkIDs: req.BenchmarkIDs,
			Filter: store.EmployeeFilter{
				Role:      req.Role,
				Grade:     req.Grade,
				MinRating: req.MinRating,
			},
		})
		if err != nil {
			r.logger.Error("event-triggered run failed", "error", err, "requested_by", req.RequestedBy)
			_ = r.events.Publish(events.SubjectMatchFailedAny, events.MatchFailedEvent{
				BenchmarkIDs: req.BenchmarkIDs,
				Error:        err.Error(),
			})
		}
	})
	if err != nil {
		r.logger.Warn("failed to subscribe to match requests", "error", err)
	}
}
