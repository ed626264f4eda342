package scoring

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/MikeSquared-Agency/TalentMatch/internal/baseline"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func float64Ptr(v float64) *float64 { return &v }
func strPtr(v string) *string       { return &v }

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	s, err := NewScorer(DefaultConfig(), discardLogger())
	if err != nil {
		t.Fatalf("NewScorer failed: %v", err)
	}
	return s
}

func fullBaseline() *baseline.Profile {
	comps := make(map[string]*float64, len(store.CompetencyCodes))
	for _, code := range store.CompetencyCodes {
		comps[code] = float64Ptr(5.0)
	}
	return &baseline.Profile{
		BenchmarkIDs:     []string{"EMP1"},
		Competencies:     comps,
		TenureMonths:     float64Ptr(60),
		IQ:               float64Ptr(110),
		GTQ:              float64Ptr(100),
		Pauli:            float64Ptr(80),
		Education:        strPtr("Bachelor"),
		Major:            strPtr("Statistics"),
		Position:         strPtr("Data Analyst"),
		MBTI:             strPtr("INTJ"),
		DISC:             strPtr("Dominance"),
		DominantStrength: strPtr("Analytical"),
		StrengthDomain:   strPtr("Strategic Thinking"),
	}
}

func fullEmployee(id string) *store.Employee {
	comps := make(map[string]*float64, len(store.CompetencyCodes))
	for _, code := range store.CompetencyCodes {
		comps[code] = float64Ptr(5.0)
	}
	return &store.Employee{
		EmployeeID:       id,
		FullName:         "Employee " + id,
		Role:             "Data Analyst",
		TenureMonths:     float64Ptr(60),
		Education:        strPtr("Bachelor"),
		Major:            strPtr("Statistics"),
		MBTI:             strPtr("INTJ"),
		DISC:             strPtr("Dominance"),
		IQ:               float64Ptr(110),
		GTQ:              float64Ptr(100),
		Pauli:            float64Ptr(80),
		DominantStrength: strPtr("Analytical"),
		StrengthDomain:   strPtr("Strategic Thinking"),
		Competencies:     comps,
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadSums(t *testing.T) {
	t.Run("category weights off", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CategoryWeights[CategoryCompetency] = 0.25 // sum now 0.9
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for category weights summing to 0.9")
		}
	})

	t.Run("sub-factor weights off", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SubFactors[CategoryBehavioral] = []SubFactor{
			{Name: "dominant_strength", Kind: KindCategorical, Weight: 0.60},
			{Name: "strength_domain", Kind: KindCategorical, Weight: 0.30},
		}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for sub-factor weights summing to 0.9")
		}
	})

	t.Run("missing span", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SubFactors[CategoryCognitive] = []SubFactor{
			{Name: "iq", Kind: KindNumeric, Weight: 1.0},
		}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for numeric sub-factor without span")
		}
	})
}

func TestNumericSubFactorDistance(t *testing.T) {
	// baseline X = 5.0 over span 5.0, candidate X = 4.0 => 80.0
	sf := SubFactor{Name: "SEA", Kind: KindNumeric, Weight: 0.125, Span: 5.0}
	e := &store.Employee{Competencies: map[string]*float64{"SEA": float64Ptr(4.0)}}
	base := &baseline.Profile{Competencies: map[string]*float64{"SEA": float64Ptr(5.0)}}

	row := scoreSubFactor(sf, e, base)
	if row.MatchRate == nil {
		t.Fatal("expected non-nil score")
	}
	if math.Abs(*row.MatchRate-80.0) > 1e-9 {
		t.Errorf("expected 80.0, got %f", *row.MatchRate)
	}
}

func TestNumericSubFactorClamped(t *testing.T) {
	sf := SubFactor{Name: "tenure_months", Kind: KindNumeric, Weight: 0.25, Span: 120}
	e := &store.Employee{TenureMonths: float64Ptr(300)}
	base := &baseline.Profile{TenureMonths: float64Ptr(12)}

	row := scoreSubFactor(sf, e, base)
	if row.MatchRate == nil || *row.MatchRate != 0 {
		t.Errorf("expected clamp to 0, got %v", row.MatchRate)
	}
}

func TestCategoricalSubFactor(t *testing.T) {
	sf := SubFactor{Name: "education", Kind: KindCategorical, Weight: 0.30}

	tests := []struct {
		name      string
		candidate *string
		baseline  *string
		want      *float64
		partial   float64
	}{
		{"exact match", strPtr("Bachelor"), strPtr("Bachelor"), float64Ptr(100), 0},
		{"case and whitespace", strPtr("  bachelor "), strPtr("BACHELOR"), float64Ptr(100), 0},
		{"mismatch default zero", strPtr("Master"), strPtr("Bachelor"), float64Ptr(0), 0},
		{"mismatch partial credit", strPtr("Master"), strPtr("Bachelor"), float64Ptr(25), 25},
		{"candidate missing", nil, strPtr("Bachelor"), nil, 0},
		{"baseline missing", strPtr("Bachelor"), nil, nil, 0},
		{"blank candidate", strPtr("   "), strPtr("Bachelor"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf.PartialCredit = tt.partial
			e := &store.Employee{Education: tt.candidate}
			base := &baseline.Profile{Education: tt.baseline}
			row := scoreSubFactor(sf, e, base)
			switch {
			case tt.want == nil && row.MatchRate != nil:
				t.Errorf("expected nil score, got %f", *row.MatchRate)
			case tt.want != nil && row.MatchRate == nil:
				t.Errorf("expected %f, got nil (%s)", *tt.want, row.Reason)
			case tt.want != nil && *row.MatchRate != *tt.want:
				t.Errorf("expected %f, got %f", *tt.want, *row.MatchRate)
			}
		})
	}
}

func TestMBTIAxesScoreIndependently(t *testing.T) {
	s := newTestScorer(t)
	base := fullBaseline() // INTJ
	e := fullEmployee("EMP2")
	e.MBTI = strPtr("ENTJ") // differs on E/I only

	score := s.ScoreEmployee(e, base)
	cs := score.CategoryScoreFor(CategoryPersonality)
	if cs == nil || cs.MatchRate == nil {
		t.Fatal("expected personality category score")
	}
	// three of four axes match at 0.15 weight each, disc matches at 0.40:
	// (0.15*0 + 0.15*100*3 + 0.40*100) / 1.0 = 85
	if math.Abs(*cs.MatchRate-85.0) > 1e-9 {
		t.Errorf("expected 85.0, got %f", *cs.MatchRate)
	}
}

func TestPerfectCandidateScoresHundred(t *testing.T) {
	s := newTestScorer(t)
	score := s.ScoreEmployee(fullEmployee("EMP2"), fullBaseline())
	if score.FinalMatchRate == nil {
		t.Fatal("expected final match rate")
	}
	if math.Abs(*score.FinalMatchRate-100.0) > 1e-9 {
		t.Errorf("expected 100.0, got %f", *score.FinalMatchRate)
	}
	if score.InsufficientData {
		t.Error("expected insufficient_data=false")
	}
}

func TestRenormalizationOverMissingSubFactors(t *testing.T) {
	s := newTestScorer(t)
	base := fullBaseline()
	e := fullEmployee("EMP2")
	e.Pauli = nil           // drop one cognitive sub-factor
	e.IQ = float64Ptr(80)   // |80-110|/60 -> 50
	e.GTQ = float64Ptr(100) // 100

	score := s.ScoreEmployee(e, base)
	cs := score.CategoryScoreFor(CategoryCognitive)
	if cs == nil || cs.MatchRate == nil {
		t.Fatal("expected cognitive category score")
	}
	// weights renormalize over iq (0.40) and gtq (0.35):
	// (0.40*50 + 0.35*100) / 0.75 = 73.333...
	want := (0.40*50 + 0.35*100) / 0.75
	if math.Abs(*cs.MatchRate-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, *cs.MatchRate)
	}
}

func TestAllNullCategoryExcludedFromFinal(t *testing.T) {
	s := newTestScorer(t)
	base := fullBaseline()
	e := fullEmployee("EMP2")
	e.IQ, e.GTQ, e.Pauli = nil, nil, nil // cognitive fully unscorable

	score := s.ScoreEmployee(e, base)
	cs := score.CategoryScoreFor(CategoryCognitive)
	if cs == nil || cs.MatchRate != nil {
		t.Fatal("expected nil cognitive category score")
	}
	if score.FinalMatchRate == nil {
		t.Fatal("expected final match rate over remaining categories")
	}
	// every remaining category scores 100, so renormalized final is 100
	if math.Abs(*score.FinalMatchRate-100.0) > 1e-9 {
		t.Errorf("expected 100.0, got %f", *score.FinalMatchRate)
	}
}

func TestInsufficientDataFlag(t *testing.T) {
	s := newTestScorer(t)
	score := s.ScoreEmployee(&store.Employee{EmployeeID: "EMP9"}, fullBaseline())
	if score.FinalMatchRate != nil {
		t.Errorf("expected nil final match rate, got %f", *score.FinalMatchRate)
	}
	if !score.InsufficientData {
		t.Error("expected insufficient_data=true")
	}
	if len(score.Categories) != len(CategoryOrder) {
		t.Errorf("expected %d category rows, got %d", len(CategoryOrder), len(score.Categories))
	}
}

func TestCategoriesInEnumerationOrder(t *testing.T) {
	s := newTestScorer(t)
	score := s.ScoreEmployee(fullEmployee("EMP2"), fullBaseline())
	for i, cs := range score.Categories {
		if cs.TGVName != CategoryOrder[i] {
			t.Errorf("category %d: expected %q, got %q", i, CategoryOrder[i], cs.TGVName)
		}
	}
}

func TestBenchmarkTagging(t *testing.T) {
	s := newTestScorer(t)
	base := fullBaseline() // benchmark EMP1
	scores := s.ScorePopulation([]*store.Employee{fullEmployee("EMP1"), fullEmployee("EMP2")}, base)
	if !scores[0].IsBenchmark {
		t.Error("expected EMP1 tagged is_benchmark")
	}
	if scores[1].IsBenchmark {
		t.Error("expected EMP2 not tagged is_benchmark")
	}
}

func TestScoringIsIdempotent(t *testing.T) {
	s := newTestScorer(t)
	base := fullBaseline()
	pop := []*store.Employee{fullEmployee("EMP2"), fullEmployee("EMP3")}
	pop[1].Education = strPtr("Master")
	pop[1].Pauli = nil

	first, _ := json.Marshal(s.ScorePopulation(pop, base))
	second, _ := json.Marshal(s.ScorePopulation(pop, base))
	if string(first) != string(second) {
		t.Error("expected identical output for identical input")
	}
}

func TestFinalMatchRateBounded(t *testing.T) {
	s := newTestScorer(t)
	base := fullBaseline()
	variants := []*store.Employee{
		fullEmployee("EMP2"),
		{EmployeeID: "EMP3", TenureMonths: float64Ptr(500), IQ: float64Ptr(0)},
		{EmployeeID: "EMP4", Education: strPtr("PhD"), MBTI: strPtr("ESFP")},
	}
	for _, score := range s.ScorePopulation(variants, base) {
		if score.FinalMatchRate == nil {
			continue
		}
		if *score.FinalMatchRate < 0 || *score.FinalMatchRate > 100 {
			t.Errorf("%s: final match rate %f out of [0,100]", score.EmployeeID, *score.FinalMatchRate)
		}
	}
}
