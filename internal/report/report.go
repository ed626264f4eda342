// Package report turns raw match records into the views the dashboard
// renders: the ranked candidate table, per-category population averages,
// and the benchmark-vs-candidate comparison.
package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MikeSquared-Agency/TalentMatch/internal/scoring"
)

// ErrCandidateNotScored is returned by Compare when the requested candidate
// has no row in the score set.
var ErrCandidateNotScored = errors.New("candidate not present in score set")

// TopCategorySentinel is reported when an employee has no non-null category
// scores.
const TopCategorySentinel = "N/A"

// RankedCandidate is one row of the ranked talent list. Ranks are 1-based
// and dense: ties share nothing, the earlier employee_id wins the lower rank.
type RankedCandidate struct {
	Rank           int     `json:"rank"`
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"fullname"`
	Role           string  `json:"role,omitempty"`
	Grade          string  `json:"grade,omitempty"`
	Directorate    string  `json:"directorate,omitempty"`
	TopTGV         string  `json:"top_tgv"`
	FinalMatchRate float64 `json:"final_match_rate"`
}

// RankCandidates orders the candidate population by final match rate
// descending, employee_id ascending on ties. Benchmark rows and
// insufficient-data rows are excluded.
func RankCandidates(scores []scoring.EmployeeScore) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(scores))
	for i := range scores {
		s := &scores[i]
		if s.IsBenchmark || s.FinalMatchRate == nil {
			continue
		}
		ranked = append(ranked, RankedCandidate{
			EmployeeID:     s.EmployeeID,
			FullName:       s.FullName,
			Role:           s.Role,
			Grade:          s.Grade,
			Directorate:    s.Directorate,
			TopTGV:         TopCategory(s),
			FinalMatchRate: *s.FinalMatchRate,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].FinalMatchRate != ranked[j].FinalMatchRate {
			return ranked[i].FinalMatchRate > ranked[j].FinalMatchRate
		}
		return ranked[i].EmployeeID < ranked[j].EmployeeID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// CategoryAverage is the population mean for one category. Every employee
// contributes once per category; null category scores are skipped.
type CategoryAverage struct {
	Category  scoring.Category `json:"tgv_name"`
	Average   float64          `json:"avg_match_rate"`
	Employees int              `json:"employees"`
}

// CategoryAverages computes the mean category score across all employees,
// benchmarks included, in the fixed category enumeration order.
func CategoryAverages(scores []scoring.EmployeeScore) []CategoryAverage {
	averages := make([]CategoryAverage, 0, len(scoring.CategoryOrder))
	for _, cat := range scoring.CategoryOrder {
		avg := CategoryAverage{Category: cat}
		var sum float64
		for i := range scores {
			cs := scores[i].CategoryScoreFor(cat)
			if cs == nil || cs.MatchRate == nil {
				continue
			}
			sum += *cs.MatchRate
			avg.Employees++
		}
		if avg.Employees > 0 {
			avg.Average = sum / float64(avg.Employees)
		}
		averages = append(averages, avg)
	}
	return averages
}

// TopCategory returns the category with the maximum score for one employee,
// ties broken by the fixed enumeration order. Sentinel "N/A" when no
// category scored.
func TopCategory(score *scoring.EmployeeScore) string {
	var best *scoring.CategoryScore
	for _, cat := range scoring.CategoryOrder {
		cs := score.CategoryScoreFor(cat)
		if cs == nil || cs.MatchRate == nil {
			continue
		}
		if best == nil || *cs.MatchRate > *best.MatchRate {
			best = cs
		}
	}
	if best == nil {
		return TopCategorySentinel
	}
	return string(best.TGVName)
}

// CategoryComparison pairs the benchmark average with the candidate score
// for one category. Missing data on either side reads as zero: the view
// feeds a bounded radar chart, so the zero-fill is deliberate and differs
// from the engine's renormalization policy.
type CategoryComparison struct {
	Category       scoring.Category `json:"tgv_name"`
	BenchmarkAvg   float64          `json:"benchmark_avg"`
	CandidateScore float64          `json:"candidate_score"`
}

// Comparison is the benchmark-vs-candidate differential over the five fixed
// categories.
type Comparison struct {
	CandidateID       string               `json:"candidate_id"`
	Categories        []CategoryComparison `json:"categories"`
	StrongestRelative scoring.Category     `json:"strongest_relative_category"`
	LargestGap        scoring.Category     `json:"largest_relative_gap"`
}

// Compare derives the per-category differential for one candidate against
// the benchmark average. Strongest relative area is the maximum of
// candidate minus benchmark average, largest gap the minimum; ties break to
// the earlier category in the enumeration order.
func Compare(scores []scoring.EmployeeScore, candidateID string) (*Comparison, error) {
	var candidate *scoring.EmployeeScore
	for i := range scores {
		if scores[i].EmployeeID == candidateID {
			candidate = &scores[i]
			break
		}
	}
	if candidate == nil {
		return nil, fmt.Errorf("%w: %s", ErrCandidateNotScored, candidateID)
	}

	cmp := &Comparison{
		CandidateID: candidateID,
		Categories:  make([]CategoryComparison, 0, len(scoring.CategoryOrder)),
	}

	var bestDiff, worstDiff float64
	for i, cat := range scoring.CategoryOrder {
		row := CategoryComparison{Category: cat}

		var sum float64
		var n int
		for j := range scores {
			if !scores[j].IsBenchmark {
				continue
			}
			cs := scores[j].CategoryScoreFor(cat)
			if cs == nil || cs.MatchRate == nil {
				continue
			}
			sum += *cs.MatchRate
			n++
		}
		if n > 0 {
			row.BenchmarkAvg = sum / float64(n)
		}

		if cs := candidate.CategoryScoreFor(cat); cs != nil && cs.MatchRate != nil {
			row.CandidateScore = *cs.MatchRate
		}
		cmp.Categories = append(cmp.Categories, row)

		diff := row.CandidateScore - row.BenchmarkAvg
		if i == 0 || diff > bestDiff {
			bestDiff = diff
			cmp.StrongestRelative = cat
		}
		if i == 0 || diff < worstDiff {
			worstDiff = diff
			cmp.LargestGap = cat
		}
	}
	return cmp, nil
}
