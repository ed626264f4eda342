// Package baseline derives the ideal-profile record from a set of benchmark
// employees. The profile is a pure value: rebuilding from the same benchmark
// ordering yields identical output.
package baseline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

var (
	// ErrUnknownBenchmark is returned when a supplied benchmark id does not
	// resolve in the directory. Fatal to the scoring run; surfaced before
	// any scoring begins.
	ErrUnknownBenchmark = errors.New("unknown benchmark employee")

	// ErrBenchmarkSetSize is returned when the benchmark set is empty,
	// larger than three, or contains duplicates.
	ErrBenchmarkSetSize = errors.New("benchmark set must contain 1-3 distinct employees")
)

// MaxBenchmarks caps how many exemplars a baseline may aggregate.
const MaxBenchmarks = 3

// Profile is the synthetic ideal record: per-field means for numerics and
// modal values for categoricals, aggregated over the benchmark employees.
// Nil means every benchmark member was missing that field.
type Profile struct {
	BenchmarkIDs []string `json:"benchmark_ids"`

	Competencies map[string]*float64 `json:"competencies"`
	TenureMonths *float64            `json:"tenure_months,omitempty"`
	IQ           *float64            `json:"iq,omitempty"`
	GTQ          *float64            `json:"gtq,omitempty"`
	Pauli        *float64            `json:"pauli,omitempty"`

	Education        *string `json:"education,omitempty"`
	Major            *string `json:"major,omitempty"`
	Position         *string `json:"position,omitempty"`
	MBTI             *string `json:"mbti,omitempty"`
	DISC             *string `json:"disc,omitempty"`
	DominantStrength *string `json:"dominant_strength,omitempty"`
	StrengthDomain   *string `json:"strength_domain,omitempty"`
}

// IsBenchmark reports whether the given employee id is one of the exemplars
// this profile was built from.
func (p *Profile) IsBenchmark(employeeID string) bool {
	for _, id := range p.BenchmarkIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// Competency returns the baseline score for one pillar code, nil when no
// benchmark member was assessed on it.
func (p *Profile) Competency(code string) *float64 {
	if p.Competencies == nil {
		return nil
	}
	return p.Competencies[strings.ToUpper(code)]
}

// Build resolves the benchmark ids against the directory and aggregates
// their attributes into one Profile. The input ordering is significant: it
// is the tie-break for modal categorical values.
func Build(ctx context.Context, s store.Store, benchmarkIDs []string) (*Profile, error) {
	if len(benchmarkIDs) == 0 || len(benchmarkIDs) > MaxBenchmarks {
		return nil, fmt.Errorf("%w: got %d", ErrBenchmarkSetSize, len(benchmarkIDs))
	}
	seen := make(map[string]bool, len(benchmarkIDs))
	for _, id := range benchmarkIDs {
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrBenchmarkSetSize, id)
		}
		seen[id] = true
	}

	members := make([]*store.Employee, 0, len(benchmarkIDs))
	for _, id := range benchmarkIDs {
		emp, err := s.GetEmployee(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownBenchmark, id)
			}
			return nil, fmt.Errorf("resolve benchmark %s: %w", id, err)
		}
		members = append(members, emp)
	}

	p := &Profile{
		BenchmarkIDs: append([]string(nil), benchmarkIDs...),
		Competencies: make(map[string]*float64, len(store.CompetencyCodes)),
	}

	for _, code := range store.CompetencyCodes {
		vals := make([]*float64, len(members))
		for i, m := range members {
			vals[i] = m.Competency(code)
		}
		p.Competencies[code] = mean(vals)
	}

	p.TenureMonths = mean(collect(members, func(e *store.Employee) *float64 { return e.TenureMonths }))
	p.IQ = mean(collect(members, func(e *store.Employee) *float64 { return e.IQ }))
	p.GTQ = mean(collect(members, func(e *store.Employee) *float64 { return e.GTQ }))
	p.Pauli = mean(collect(members, func(e *store.Employee) *float64 { return e.Pauli }))

	p.Education = modal(collectStr(members, func(e *store.Employee) *string { return e.Education }))
	p.Major = modal(collectStr(members, func(e *store.Employee) *string { return e.Major }))
	p.MBTI = modal(collectStr(members, func(e *store.Employee) *string { return e.MBTI }))
	p.DISC = modal(collectStr(members, func(e *store.Employee) *string { return e.DISC }))
	p.DominantStrength = modal(collectStr(members, func(e *store.Employee) *string { return e.DominantStrength }))
	p.StrengthDomain = modal(collectStr(members, func(e *store.Employee) *string { return e.StrengthDomain }))
	p.Position = modal(collectStr(members, func(e *store.Employee) *string {
		if e.Role == "" {
			return nil
		}
		role := e.Role
		return &role
	}))

	return p, nil
}

func collect(members []*store.Employee, get func(*store.Employee) *float64) []*float64 {
	vals := make([]*float64, len(members))
	for i, m := range members {
		vals[i] = get(m)
	}
	return vals
}

func collectStr(members []*store.Employee, get func(*store.Employee) *string) []*string {
	vals := make([]*string, len(members))
	for i, m := range members {
		vals[i] = get(m)
	}
	return vals
}

// mean averages the non-nil values; nil when every value is nil.
func mean(vals []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range vals {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// modal returns the most frequent non-empty value, counted
// case-insensitively on the trimmed form. On a tie the value of the member
// appearing first in the input ordering wins; the returned casing is the
// first-encountered original.
func modal(vals []*string) *string {
	counts := make(map[string]int)
	firstIndex := make(map[string]int)
	original := make(map[string]string)

	for i, v := range vals {
		if v == nil {
			continue
		}
		trimmed := strings.TrimSpace(*v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := counts[key]; !ok {
			firstIndex[key] = i
			original[key] = trimmed
		}
		counts[key]++
	}
	if len(counts) == 0 {
		return nil
	}

	var bestKey string
	bestCount := -1
	for key, count := range counts {
		if count > bestCount || (count == bestCount && firstIndex[key] < firstIndex[bestKey]) {
			bestKey = key
			bestCount = count
		}
	}
	winner := original[bestKey]
	return &winner
}
