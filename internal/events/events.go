package events

import "time"

// MatchRequestEvent triggers an asynchronous match run. Filter fields mirror
// the directory listing filter.
type MatchRequestEvent struct {
	BenchmarkIDs []string `json:"benchmark_ids"`
	Role         string   `json:"role,omitempty"`
	Grade        string   `json:"grade,omitempty"`
	MinRating    int      `json:"min_rating,omitempty"`
	RequestedBy  string   `json:"requested_by,omitempty"`
}

type MatchCompletedEvent struct {
	RunID        string    `json:"run_id"`
	BenchmarkIDs []string  `json:"benchmark_ids"`
	Candidates   int       `json:"candidates"`
	Ranked       int       `json:"ranked"`
	TopCandidate string    `json:"top_candidate,omitempty"`
	ElapsedMs    int64     `json:"elapsed_ms"`
	Timestamp    time.Time `json:"timestamp"`
}

type MatchFailedEvent struct {
	RunID        string   `json:"run_id,omitempty"`
	BenchmarkIDs []string `json:"benchmark_ids,omitempty"`
	Error        string   `json:"error"`
}

type NarrativeGeneratedEvent struct {
	RunID string `json:"run_id"`
	Role  string `json:"role"`
	Model string `json:"model,omitempty"`
}
