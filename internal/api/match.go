package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/TalentMatch/internal/baseline"
	"github.com/MikeSquared-Agency/TalentMatch/internal/match"
	"github.com/MikeSquared-Agency/TalentMatch/internal/report"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

type MatchHandler struct {
	runner *match.Runner
}

func NewMatchHandler(runner *match.Runner) *MatchHandler {
	return &MatchHandler{runner: runner}
}

type filterRequest struct {
	Role      string `json:"role,omitempty"`
	Grade     string `json:"grade,omitempty"`
	MinRating int    `json:"min_rating,omitempty"`
}

func (f *filterRequest) toStore() store.EmployeeFilter {
	if f == nil {
		return store.EmployeeFilter{}
	}
	return store.EmployeeFilter{Role: f.Role, Grade: f.Grade, MinRating: f.MinRating}
}

type runRequest struct {
	BenchmarkIDs []string       `json:"benchmark_ids"`
	Filter       *filterRequest `json:"filter,omitempty"`
}

// Run executes a full scoring run.
// POST /api/v1/match/runs
func (h *MatchHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.runner.Run(r.Context(), match.RunRequest{
		BenchmarkIDs: req.BenchmarkIDs,
		Filter:       req.Filter.toStore(),
	})
	if err != nil {
		writeRunError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type compareRequest struct {
	BenchmarkIDs []string       `json:"benchmark_ids"`
	CandidateID  string         `json:"candidate_id"`
	Filter       *filterRequest `json:"filter,omitempty"`
}

// Compare returns the per-category benchmark-vs-candidate differential.
// POST /api/v1/match/compare
func (h *MatchHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.CandidateID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "candidate_id required"})
		return
	}

	cmp, err := h.runner.Compare(r.Context(), match.RunRequest{
		BenchmarkIDs: req.BenchmarkIDs,
		Filter:       req.Filter.toStore(),
	}, req.CandidateID)
	if err != nil {
		writeRunError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

type explainRequest struct {
	BenchmarkIDs []string `json:"benchmark_ids"`
	EmployeeID   string   `json:"employee_id"`
}

// Explain returns one employee's full category/sub-factor breakdown.
// POST /api/v1/match/explain
func (h *MatchHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.EmployeeID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "employee_id required"})
		return
	}

	score, err := h.runner.Explain(r.Context(), req.BenchmarkIDs, req.EmployeeID)
	if err != nil {
		writeRunError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}

// writeRunError maps the engine's typed errors onto HTTP statuses.
func writeRunError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, baseline.ErrBenchmarkSetSize), errors.Is(err, baseline.ErrUnknownBenchmark):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound), errors.Is(err, report.ErrCandidateNotScored):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
