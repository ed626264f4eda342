package report

import (
	"errors"
	"math"
	"testing"

	"github.com/MikeSquared-Agency/TalentMatch/internal/scoring"
)

func float64Ptr(v float64) *float64 { return &v }

// scoreRow builds an EmployeeScore with one category score per entry of
// rates, in enumeration order; nil entries stay null.
func scoreRow(id string, isBenchmark bool, final *float64, rates ...*float64) scoring.EmployeeScore {
	s := scoring.EmployeeScore{
		EmployeeID:     id,
		FullName:       "Employee " + id,
		IsBenchmark:    isBenchmark,
		FinalMatchRate: final,
	}
	for i, cat := range scoring.CategoryOrder {
		cs := scoring.CategoryScore{TGVName: cat}
		if i < len(rates) {
			cs.MatchRate = rates[i]
		}
		s.Categories = append(s.Categories, cs)
	}
	return s
}

func TestRankCandidatesOrderingAndDenseRanks(t *testing.T) {
	scores := []scoring.EmployeeScore{
		scoreRow("EMP3", false, float64Ptr(72.4)),
		scoreRow("EMP1", true, float64Ptr(99.0)), // benchmark, excluded
		scoreRow("EMP5", false, float64Ptr(90.1)),
		scoreRow("EMP2", false, float64Ptr(72.4)),
		scoreRow("EMP4", false, nil), // insufficient data, excluded
	}

	ranked := RankCandidates(scores)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked candidates, got %d", len(ranked))
	}

	expected := []struct {
		rank int
		id   string
	}{
		{1, "EMP5"},
		{2, "EMP2"}, // tie at 72.4: employee_id ascending
		{3, "EMP3"},
	}
	for i, want := range expected {
		if ranked[i].Rank != want.rank || ranked[i].EmployeeID != want.id {
			t.Errorf("row %d: expected rank %d %s, got rank %d %s",
				i, want.rank, want.id, ranked[i].Rank, ranked[i].EmployeeID)
		}
	}
}

func TestRankCandidatesDeterministic(t *testing.T) {
	scores := []scoring.EmployeeScore{
		scoreRow("EMP2", false, float64Ptr(50)),
		scoreRow("EMP3", false, float64Ptr(50)),
		scoreRow("EMP1", false, float64Ptr(50)),
	}
	first := RankCandidates(scores)
	for i := 0; i < 10; i++ {
		again := RankCandidates(scores)
		for j := range first {
			if again[j].EmployeeID != first[j].EmployeeID || again[j].Rank != first[j].Rank {
				t.Fatalf("run %d: ordering changed at row %d", i, j)
			}
		}
	}
	if first[0].EmployeeID != "EMP1" || first[2].EmployeeID != "EMP3" {
		t.Errorf("expected employee_id ascending on full tie, got %v", first)
	}
}

func TestCategoryAveragesIncludeBenchmarks(t *testing.T) {
	scores := []scoring.EmployeeScore{
		scoreRow("EMP1", true, float64Ptr(100), float64Ptr(100)),
		scoreRow("EMP2", false, float64Ptr(50), float64Ptr(50)),
		scoreRow("EMP3", false, float64Ptr(60), nil), // null competency skipped
	}

	averages := CategoryAverages(scores)
	if len(averages) != len(scoring.CategoryOrder) {
		t.Fatalf("expected %d categories, got %d", len(scoring.CategoryOrder), len(averages))
	}
	if averages[0].Category != scoring.CategoryCompetency {
		t.Errorf("expected enumeration order, got %q first", averages[0].Category)
	}
	if math.Abs(averages[0].Average-75.0) > 1e-9 {
		t.Errorf("expected competency average 75.0, got %f", averages[0].Average)
	}
	if averages[0].Employees != 2 {
		t.Errorf("expected 2 contributing employees, got %d", averages[0].Employees)
	}
	// no data at all in later categories
	if averages[4].Average != 0 || averages[4].Employees != 0 {
		t.Errorf("expected empty category to average 0, got %+v", averages[4])
	}
}

func TestTopCategory(t *testing.T) {
	t.Run("max wins", func(t *testing.T) {
		s := scoreRow("EMP2", false, float64Ptr(70),
			float64Ptr(60), float64Ptr(90), float64Ptr(70))
		if top := TopCategory(&s); top != string(scoring.CategoryCognitive) {
			t.Errorf("expected %q, got %q", scoring.CategoryCognitive, top)
		}
	})

	t.Run("tie breaks to enumeration order", func(t *testing.T) {
		s := scoreRow("EMP2", false, float64Ptr(80),
			float64Ptr(80), float64Ptr(80))
		if top := TopCategory(&s); top != string(scoring.CategoryCompetency) {
			t.Errorf("expected %q, got %q", scoring.CategoryCompetency, top)
		}
	})

	t.Run("sentinel when nothing scored", func(t *testing.T) {
		s := scoreRow("EMP2", false, nil)
		if top := TopCategory(&s); top != TopCategorySentinel {
			t.Errorf("expected %q, got %q", TopCategorySentinel, top)
		}
	})
}

func TestCompare(t *testing.T) {
	scores := []scoring.EmployeeScore{
		scoreRow("B1", true, float64Ptr(100), float64Ptr(90), float64Ptr(80)),
		scoreRow("B2", true, float64Ptr(100), float64Ptr(70), float64Ptr(60)),
		scoreRow("EMP2", false, float64Ptr(75), float64Ptr(95), float64Ptr(20)),
	}

	cmp, err := Compare(scores, "EMP2")
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if len(cmp.Categories) != len(scoring.CategoryOrder) {
		t.Fatalf("expected all five categories, got %d", len(cmp.Categories))
	}

	// competency: benchmark avg (90+70)/2=80, candidate 95 -> diff +15
	if math.Abs(cmp.Categories[0].BenchmarkAvg-80.0) > 1e-9 {
		t.Errorf("expected benchmark avg 80.0, got %f", cmp.Categories[0].BenchmarkAvg)
	}
	if cmp.Categories[0].CandidateScore != 95 {
		t.Errorf("expected candidate score 95, got %f", cmp.Categories[0].CandidateScore)
	}
	// cognitive: benchmark avg 70, candidate 20 -> diff -50
	if cmp.StrongestRelative != scoring.CategoryCompetency {
		t.Errorf("expected strongest %q, got %q", scoring.CategoryCompetency, cmp.StrongestRelative)
	}
	if cmp.LargestGap != scoring.CategoryCognitive {
		t.Errorf("expected largest gap %q, got %q", scoring.CategoryCognitive, cmp.LargestGap)
	}
	// zero-fill for categories with no data on either side
	if cmp.Categories[3].BenchmarkAvg != 0 || cmp.Categories[3].CandidateScore != 0 {
		t.Errorf("expected zero-fill, got %+v", cmp.Categories[3])
	}
}

func TestCompareUnknownCandidate(t *testing.T) {
	scores := []scoring.EmployeeScore{scoreRow("B1", true, float64Ptr(100))}
	_, err := Compare(scores, "EMP9")
	if !errors.Is(err, ErrCandidateNotScored) {
		t.Errorf("expected ErrCandidateNotScored, got %v", err)
	}
}
