package scoring

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/MikeSquared-Agency/TalentMatch/internal/baseline"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

// SubFactorScore is one (candidate, category, sub-factor) row. A nil
// MatchRate means the sub-factor could not be scored; Reason says why and
// the row is excluded from the category mean.
type SubFactorScore struct {
	TVName         string      `json:"tv_name"`
	Kind           Kind        `json:"kind"`
	Weight         float64     `json:"weight"`
	CandidateValue interface{} `json:"candidate_value,omitempty"`
	BaselineValue  interface{} `json:"baseline_value,omitempty"`
	MatchRate      *float64    `json:"tv_match_rate"`
	Reason         string      `json:"reason,omitempty"`
}

// CategoryScore is the per-category roll-up: the weighted mean of the
// non-null sub-factor scores, weights renormalized. Nil when every
// sub-factor in the category was null.
type CategoryScore struct {
	TGVName    Category         `json:"tgv_name"`
	Weight     float64          `json:"weight"`
	MatchRate  *float64         `json:"tgv_match_rate"`
	SubFactors []SubFactorScore `json:"sub_factors"`
}

// EmployeeScore is the full scoring output for one employee. FinalMatchRate
// is nil only when no category could be scored; the row is then flagged
// InsufficientData and excluded from ranking but kept in the result set.
type EmployeeScore struct {
	EmployeeID       string          `json:"employee_id"`
	FullName         string          `json:"fullname"`
	Role             string          `json:"role,omitempty"`
	Grade            string          `json:"grade,omitempty"`
	Directorate      string          `json:"directorate,omitempty"`
	IsBenchmark      bool            `json:"is_benchmark"`
	FinalMatchRate   *float64        `json:"final_match_rate"`
	InsufficientData bool            `json:"insufficient_data,omitempty"`
	Reason           string          `json:"reason,omitempty"`
	Categories       []CategoryScore `json:"categories"`
}

// CategoryScoreFor returns the roll-up for one category, nil if absent.
func (s *EmployeeScore) CategoryScoreFor(cat Category) *CategoryScore {
	for i := range s.Categories {
		if s.Categories[i].TGVName == cat {
			return &s.Categories[i]
		}
	}
	return nil
}

// Scorer evaluates employees against a baseline profile using the fixed
// category/sub-factor model. Scoring is pure: the same (candidates,
// baseline, config) triple always yields the same records.
type Scorer struct {
	cfg    Config
	logger *slog.Logger
}

// NewScorer validates the configuration and returns a Scorer. Weight
// violations are fatal here, never during a run.
func NewScorer(cfg Config, logger *slog.Logger) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring config: %w", err)
	}
	return &Scorer{cfg: cfg, logger: logger}, nil
}

// ScorePopulation scores every employee against the baseline. Benchmark
// members are scored like everyone else and tagged is_benchmark; the
// reporter excludes them from ranking but uses them for benchmark averages.
func (s *Scorer) ScorePopulation(employees []*store.Employee, base *baseline.Profile) []EmployeeScore {
	scores := make([]EmployeeScore, 0, len(employees))
	for _, e := range employees {
		scores = append(scores, s.ScoreEmployee(e, base))
	}
	return scores
}

// ScoreEmployee computes the full sub-factor, category, and final match rate
// breakdown for one employee, categories in the fixed enumeration order.
func (s *Scorer) ScoreEmployee(e *store.Employee, base *baseline.Profile) EmployeeScore {
	result := EmployeeScore{
		EmployeeID:  e.EmployeeID,
		FullName:    e.FullName,
		Role:        e.Role,
		Grade:       e.Grade,
		Directorate: e.Directorate,
		IsBenchmark: base.IsBenchmark(e.EmployeeID),
		Categories:  make([]CategoryScore, 0, len(CategoryOrder)),
	}

	for _, cat := range CategoryOrder {
		roster := s.cfg.SubFactors[cat]
		cs := CategoryScore{
			TGVName:    cat,
			Weight:     s.cfg.CategoryWeights[cat],
			SubFactors: make([]SubFactorScore, 0, len(roster)),
		}
		for _, sf := range roster {
			cs.SubFactors = append(cs.SubFactors, scoreSubFactor(sf, e, base))
		}
		cs.MatchRate = rollUp(cs.SubFactors, func(row SubFactorScore) (float64, *float64) {
			return row.Weight, row.MatchRate
		})
		result.Categories = append(result.Categories, cs)
	}

	result.FinalMatchRate = rollUp(result.Categories, func(cs CategoryScore) (float64, *float64) {
		return cs.Weight, cs.MatchRate
	})
	if result.FinalMatchRate == nil {
		result.InsufficientData = true
		result.Reason = "no scorable categories"
		if s.logger != nil {
			s.logger.Debug("employee has no scorable categories", "employee_id", e.EmployeeID)
		}
	}
	return result
}

// scoreSubFactor produces one match row. Numeric sub-factors score by
// distance over the configured span; categorical sub-factors score by exact
// match (case-insensitive, trimmed) with configured partial credit on a miss.
func scoreSubFactor(sf SubFactor, e *store.Employee, base *baseline.Profile) SubFactorScore {
	row := SubFactorScore{TVName: sf.Name, Kind: sf.Kind, Weight: sf.Weight}

	switch sf.Kind {
	case KindNumeric:
		cand := candidateNumeric(sf.Name, e)
		ideal := baselineNumeric(sf.Name, base)
		if cand != nil {
			row.CandidateValue = *cand
		}
		if ideal != nil {
			row.BaselineValue = *ideal
		}
		if cand == nil {
			row.Reason = "candidate value missing"
			return row
		}
		if ideal == nil {
			row.Reason = "baseline value missing"
			return row
		}
		score := clamp(100*(1-math.Abs(*cand-*ideal)/sf.Span), 0, 100)
		row.MatchRate = &score

	case KindCategorical:
		cand := candidateCategorical(sf.Name, e)
		ideal := baselineCategorical(sf.Name, base)
		if cand != nil {
			row.CandidateValue = *cand
		}
		if ideal != nil {
			row.BaselineValue = *ideal
		}
		candVal := trimmed(cand)
		idealVal := trimmed(ideal)
		if candVal == "" {
			row.Reason = "candidate value missing"
			return row
		}
		if idealVal == "" {
			row.Reason = "baseline value missing"
			return row
		}
		score := sf.PartialCredit
		if strings.EqualFold(candVal, idealVal) {
			score = 100
		}
		row.MatchRate = &score

	default:
		row.Reason = "unknown sub-factor kind"
	}
	return row
}

// rollUp computes the weighted mean over the non-null entries, renormalizing
// the remaining weights to sum to 1. Nil when every entry is null or the
// surviving weight mass is zero.
func rollUp[T any](rows []T, get func(T) (weight float64, score *float64)) *float64 {
	var weightSum, total float64
	for _, row := range rows {
		w, score := get(row)
		if score == nil {
			continue
		}
		weightSum += w
		total += w * *score
	}
	if weightSum <= 0 {
		return nil
	}
	result := clamp(total/weightSum, 0, 100)
	return &result
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
