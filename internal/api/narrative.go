package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/TalentMatch/internal/events"
	"github.com/MikeSquared-Agency/TalentMatch/internal/match"
	"github.com/MikeSquared-Agency/TalentMatch/internal/metrics"
	"github.com/MikeSquared-Agency/TalentMatch/internal/narrative"
)

type NarrativeHandler struct {
	runner  *match.Runner
	client  narrative.Client
	events  events.Client
	metrics *metrics.Metrics
}

func NewNarrativeHandler(runner *match.Runner, client narrative.Client, ev events.Client, m *metrics.Metrics) *NarrativeHandler {
	return &NarrativeHandler{runner: runner, client: client, events: ev, metrics: m}
}

type narrativeRequest struct {
	BenchmarkIDs []string `json:"benchmark_ids"`
	Role         string   `json:"role"`
	JobLevel     string   `json:"job_level"`
	RolePurpose  string   `json:"role_purpose,omitempty"`
}

type narrativeResponse struct {
	RunID     string               `json:"run_id"`
	Summary   *narrative.Summary   `json:"summary"`
	Narrative *narrative.Narrative `json:"narrative,omitempty"`
}

// Generate builds the baseline summary and hands it to the text-generation
// collaborator. The summary alone is returned when no collaborator is
// configured.
// POST /api/v1/profiles/narrative
func (h *NarrativeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req narrativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Role == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "role required"})
		return
	}

	profile, err := h.runner.Baseline(r.Context(), req.BenchmarkIDs)
	if err != nil {
		writeRunError(w, err)
		return
	}

	resp := narrativeResponse{
		RunID:   uuid.New().String(),
		Summary: narrative.BuildSummary(profile, req.Role, req.JobLevel, req.RolePurpose),
	}

	if h.client != nil {
		n, err := h.client.Generate(r.Context(), resp.Summary)
		if err != nil {
			if h.metrics != nil {
				h.metrics.NarrativeRequests.WithLabelValues("failed").Inc()
			}
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		resp.Narrative = n
		if h.metrics != nil {
			h.metrics.NarrativeRequests.WithLabelValues("completed").Inc()
		}
		if h.events != nil {
			_ = h.events.Publish(events.SubjectNarrativeGenerated(resp.RunID), events.NarrativeGeneratedEvent{
				RunID: resp.RunID,
				Role:  req.Role,
				Model: n.Model,
			})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
