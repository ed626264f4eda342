// Package match orchestrates one scoring run: resolve benchmarks, build the
// baseline, fetch the candidate population, score it, and report.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/TalentMatch/internal/baseline"
	"github.com/MikeSquared-Agency/TalentMatch/internal/events"
	"github.com/MikeSquared-Agency/TalentMatch/internal/metrics"
	"github.com/MikeSquared-Agency/TalentMatch/internal/report"
	"github.com/MikeSquared-Agency/TalentMatch/internal/scoring"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

// RunRequest names the benchmark exemplars and optionally narrows the
// candidate population.
type RunRequest struct {
	BenchmarkIDs []string             `json:"benchmark_ids"`
	Filter       store.EmployeeFilter `json:"filter,omitempty"`
}

// RunResult is the complete output of one run. Run-level failures produce
// no RunResult at all; per-candidate data gaps surface as flagged rows in
// Scores instead.
type RunResult struct {
	RunID       uuid.UUID `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	ElapsedMs   int64     `json:"elapsed_ms"`

	BenchmarkIDs     []string                 `json:"benchmark_ids"`
	Baseline         *baseline.Profile        `json:"baseline"`
	Ranked           []report.RankedCandidate `json:"ranked"`
	CategoryAverages []report.CategoryAverage `json:"category_averages"`
	Scores           []scoring.EmployeeScore  `json:"scores"`
}

// Runner wires the directory, the scorer, and the reporter into one
// pipeline. Events and metrics are optional; nil disables them.
type Runner struct {
	store   store.Store
	scorer  *scoring.Scorer
	events  events.Client
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewRunner(s store.Store, scorer *scoring.Scorer, ev events.Client, m *metrics.Metrics, logger *slog.Logger) *Runner {
	return &Runner{store: s, scorer: scorer, events: ev, metrics: m, logger: logger}
}

// Run executes one full scoring run. Structural failures (unknown
// benchmark, bad set size, directory errors) abort before any scoring
// output is produced.
func (r *Runner) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	start := time.Now()

	result, err := r.pipeline(ctx, req)
	if err != nil {
		if r.metrics != nil {
			r.metrics.RunsTotal.WithLabelValues("failed").Inc()
		}
		return nil, err
	}

	result.ElapsedMs = time.Since(start).Milliseconds()
	if r.metrics != nil {
		r.metrics.RunsTotal.WithLabelValues("completed").Inc()
		r.metrics.RunDuration.Observe(time.Since(start).Seconds())
		r.metrics.CandidatesScored.Add(float64(len(result.Scores)))
	}
	r.logger.Info("match run completed",
		"run_id", result.RunID,
		"benchmarks", len(req.BenchmarkIDs),
		"scored", len(result.Scores),
		"ranked", len(result.Ranked),
		"elapsed_ms", result.ElapsedMs,
	)

	if r.events != nil {
		evt := events.MatchCompletedEvent{
			RunID:        result.RunID.String(),
			BenchmarkIDs: result.BenchmarkIDs,
			Candidates:   len(result.Scores),
			Ranked:       len(result.Ranked),
			ElapsedMs:    result.ElapsedMs,
			Timestamp:    result.GeneratedAt,
		}
		if len(result.Ranked) > 0 {
			evt.TopCandidate = result.Ranked[0].EmployeeID
		}
		if err := r.events.Publish(events.SubjectMatchCompleted(evt.RunID), evt); err != nil {
			r.logger.Warn("failed to publish run event", "error", err)
		}
	}
	return result, nil
}

// Baseline resolves the benchmark set into an ideal profile without scoring
// anyone. Used by the narrative endpoint.
func (r *Runner) Baseline(ctx context.Context, benchmarkIDs []string) (*baseline.Profile, error) {
	return baseline.Build(ctx, r.store, benchmarkIDs)
}

// Compare runs the pipeline and derives the per-category differential for
// one candidate.
func (r *Runner) Compare(ctx context.Context, req RunRequest, candidateID string) (*report.Comparison, error) {
	result, err := r.pipeline(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.Compare(result.Scores, candidateID)
}

// Explain returns the full category and sub-factor breakdown for one
// employee against the given benchmark set.
func (r *Runner) Explain(ctx context.Context, benchmarkIDs []string, employeeID string) (*scoring.EmployeeScore, error) {
	profile, err := baseline.Build(ctx, r.store, benchmarkIDs)
	if err != nil {
		return nil, err
	}
	emp, err := r.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	score := r.scorer.ScoreEmployee(emp, profile)
	return &score, nil
}

func (r *Runner) pipeline(ctx context.Context, req RunRequest) (*RunResult, error) {
	profile, err := baseline.Build(ctx, r.store, req.BenchmarkIDs)
	if err != nil {
		return nil, err
	}

	population, err := r.store.ListEmployees(ctx, req.Filter)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	// A narrowing filter may exclude the benchmark employees themselves;
	// the comparison views need their rows, so pull them back in.
	present := make(map[string]bool, len(population))
	for _, e := range population {
		present[e.EmployeeID] = true
	}
	for _, id := range req.BenchmarkIDs {
		if present[id] {
			continue
		}
		emp, err := r.store.GetEmployee(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch benchmark %s: %w", id, err)
		}
		population = append(population, emp)
	}

	scores := r.scorer.ScorePopulation(population, profile)
	return &RunResult{
		RunID:            uuid.New(),
		GeneratedAt:      time.Now().UTC(),
		BenchmarkIDs:     append([]string(nil), req.BenchmarkIDs...),
		Baseline:         profile,
		Ranked:           report.RankCandidates(scores),
		CategoryAverages: report.CategoryAverages(scores),
		Scores:           scores,
	}, nil
}
