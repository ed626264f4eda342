package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/MikeSquared-Agency/TalentMatch/internal/match"
	"github.com/MikeSquared-Agency/TalentMatch/internal/narrative"
	"github.com/MikeSquared-Agency/TalentMatch/internal/scoring"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

// Mocks

type mockStore struct {
	employees map[string]*store.Employee
	stats     *store.DirectoryStats
}

func (m *mockStore) GetEmployee(_ context.Context, id string) (*store.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", store.ErrNotFound, id)
}

func (m *mockStore) ListEmployees(_ context.Context, filter store.EmployeeFilter) ([]*store.Employee, error) {
	var out []*store.Employee
	for _, e := range m.employees {
		if filter.Role != "" && e.Role != filter.Role {
			continue
		}
		if filter.Grade != "" && e.Grade != filter.Grade {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (m *mockStore) GetDirectoryStats(_ context.Context) (*store.DirectoryStats, error) {
	if m.stats != nil {
		return m.stats, nil
	}
	return &store.DirectoryStats{TotalEmployees: len(m.employees)}, nil
}

func (m *mockStore) Close() error { return nil }

type mockNarrativeClient struct {
	lastSummary *narrative.Summary
	err         error
}

func (m *mockNarrativeClient) Generate(_ context.Context, s *narrative.Summary) (*narrative.Narrative, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastSummary = s
	return &narrative.Narrative{Profile: "generated profile text", Model: "test-model"}, nil
}

func float64Ptr(v float64) *float64 { return &v }
func strPtr(v string) *string       { return &v }

func testEmployee(id, name, role string, sea float64) *store.Employee {
	return &store.Employee{
		EmployeeID:   id,
		FullName:     name,
		Role:         role,
		Grade:        "III",
		Directorate:  "Technology",
		Education:    strPtr("Bachelor"),
		TenureMonths: float64Ptr(60),
		MBTI:         strPtr("INTJ"),
		Competencies: map[string]*float64{"SEA": float64Ptr(sea)},
	}
}

func newTestStore() *mockStore {
	return &mockStore{employees: map[string]*store.Employee{
		"B1":   testEmployee("B1", "Alice Bench", "Data Analyst", 5.0),
		"EMP2": testEmployee("EMP2", "Bob Candidate", "Data Analyst", 4.0),
		"EMP3": testEmployee("EMP3", "Cara Candidate", "Engineer", 3.0),
	}}
}

func setupTestRouter() (http.Handler, *mockStore, *mockNarrativeClient) {
	s := newTestStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scorer, err := scoring.NewScorer(scoring.DefaultConfig(), logger)
	if err != nil {
		panic(err)
	}
	runner := match.NewRunner(s, scorer, nil, nil, logger)
	narr := &mockNarrativeClient{}
	router := NewRouter(s, runner, narr, nil, nil, "test-token", logger)
	return router, s, narr
}
