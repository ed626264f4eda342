package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by lookups when no employee matches the given id.
var ErrNotFound = errors.New("employee not found")

// CompetencyCodes lists the assessed competency pillars in their fixed
// reporting order. Every Employee carries at most one score per code, taken
// from the latest assessment year.
var CompetencyCodes = []string{
	"SEA", "QDD", "FTC", "IDS", "VCU", "STO_LIE", "CSI", "CEX_GDR",
}

// Employee is one row of the directory: identity plus the raw assessment
// attributes the matching engine scores against. Nullable fields use
// pointers; nil means the assessment never recorded a value.
type Employee struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"fullname"`
	Role        string `json:"role,omitempty"`
	Grade       string `json:"grade,omitempty"`
	Directorate string `json:"directorate,omitempty"`

	TenureMonths *float64 `json:"tenure_months,omitempty"`
	Education    *string  `json:"education,omitempty"`
	Major        *string  `json:"major,omitempty"`

	// Psychometrics
	MBTI  *string  `json:"mbti,omitempty"`
	DISC  *string  `json:"disc,omitempty"`
	IQ    *float64 `json:"iq,omitempty"`
	GTQ   *float64 `json:"gtq,omitempty"`
	Pauli *float64 `json:"pauli,omitempty"`

	// Rank-1 strengths theme
	DominantStrength *string `json:"dominant_strength,omitempty"`
	StrengthDomain   *string `json:"strength_domain,omitempty"`

	// Latest yearly assessments
	PerformanceRating *int                `json:"performance_rating,omitempty"`
	Competencies      map[string]*float64 `json:"competencies,omitempty"`
}

// Competency returns the score for one pillar code, or nil when the employee
// was never assessed on it. Codes are matched case-insensitively.
func (e *Employee) Competency(code string) *float64 {
	if e.Competencies == nil {
		return nil
	}
	if v, ok := e.Competencies[code]; ok {
		return v
	}
	return e.Competencies[strings.ToUpper(code)]
}

// EmployeeFilter narrows a directory listing. Zero values mean "no filter".
type EmployeeFilter struct {
	Role      string
	Grade     string
	MinRating int
	Limit     int
	Offset    int
}

// DirectoryStats summarizes directory coverage for the admin surface.
type DirectoryStats struct {
	TotalEmployees   int     `json:"total_employees"`
	WithPsychometric int     `json:"with_psychometric"`
	WithCompetencies int     `json:"with_competencies"`
	WithStrengths    int     `json:"with_strengths"`
	AvgTenureMonths  float64 `json:"avg_tenure_months"`
}

// Store is the read-only employee directory. The matching engine never
// mutates directory data.
type Store interface {
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]*Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (*Employee, error)
	GetDirectoryStats(ctx context.Context) (*DirectoryStats, error)
	Close() error
}
