package events

const (
	SubjectMatchRequest = "talent.match.request"

	// SubjectMatchFailedAny reports failures that happen before a run id
	// exists (e.g. an unknown benchmark in an event-triggered run).
	SubjectMatchFailedAny = "talent.match.failed"

	StreamName   = "TALENT_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectMatchCompleted(runID string) string { return "talent.match.completed." + runID }
func SubjectMatchFailed(runID string) string    { return "talent.match.failed." + runID }

func SubjectNarrativeGenerated(runID string) string { return "talent.narrative.generated." + runID }
