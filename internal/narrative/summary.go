// Package narrative builds the structured baseline summary handed to the
// external text-generation collaborator. The summary is derived solely from
// the baseline profile and carries no candidate-specific data.
package narrative

import (
	"strings"

	"github.com/MikeSquared-Agency/TalentMatch/internal/baseline"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

// pillarLabels maps single competency pillar codes to their standard names.
var pillarLabels = map[string]string{
	"GDR": "Growth Drive & Resilience",
	"CEX": "Curiosity & Experimentation",
	"IDS": "Insight & Decision Sharpness",
	"QDD": "Quality Delivery Discipline",
	"STO": "Synergy & Team Orientation",
	"SEA": "Social Empathy & Awareness",
	"VCU": "Value Creation for Users",
	"LIE": "Lead, Inspire & Empower",
	"FTC": "Forward Thinking & Clarity",
	"CSI": "Commercial Savvy & Impact",
}

// groupedPillarLabels covers combined pillars assessed as one score.
var groupedPillarLabels = map[string]string{
	"CEX_GDR": "Curiosity & Experimentation + Growth Drive & Resilience",
	"STO_LIE": "Synergy & Team Orientation + Lead, Inspire & Empower",
}

// PillarLabel resolves a competency code to its human-readable name. Grouped
// codes resolve as a whole; otherwise the leading pillar code is looked up.
// Unknown codes fall back to the code itself.
func PillarLabel(code string) string {
	upper := strings.ToUpper(code)
	if label, ok := groupedPillarLabels[upper]; ok {
		return label
	}
	if label, ok := pillarLabels[strings.SplitN(upper, "_", 2)[0]]; ok {
		return label
	}
	return upper
}

// CompetencyHighlight is one competency in the summary, with its pillar
// label and baseline score.
type CompetencyHighlight struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Summary is the structured profile handed to the narrative collaborator:
// the vacancy context plus the baseline's key attributes.
type Summary struct {
	Role        string `json:"role"`
	JobLevel    string `json:"job_level"`
	RolePurpose string `json:"role_purpose,omitempty"`

	Education    string  `json:"education,omitempty"`
	Major        string  `json:"major,omitempty"`
	Position     string  `json:"position,omitempty"`
	MBTI         string  `json:"mbti,omitempty"`
	DISC         string  `json:"disc,omitempty"`
	TenureMonths float64 `json:"tenure_months,omitempty"`

	TopCompetencies []CompetencyHighlight `json:"top_competencies"`
}

// topScore is the benchmark rating that promotes a competency into the
// summary's highlight list.
const topScore = 5.0

// BuildSummary extracts the narrative inputs from a baseline profile. The
// highlighted competencies are those at the top benchmark rating; when none
// reach it, every assessed competency is included instead.
func BuildSummary(p *baseline.Profile, role, jobLevel, rolePurpose string) *Summary {
	s := &Summary{
		Role:        role,
		JobLevel:    jobLevel,
		RolePurpose: rolePurpose,
	}
	if p.Education != nil {
		s.Education = *p.Education
	}
	if p.Major != nil {
		s.Major = *p.Major
	}
	if p.Position != nil {
		s.Position = *p.Position
	}
	if p.MBTI != nil {
		s.MBTI = *p.MBTI
	}
	if p.DISC != nil {
		s.DISC = *p.DISC
	}
	if p.TenureMonths != nil {
		s.TenureMonths = *p.TenureMonths
	}

	for _, code := range store.CompetencyCodes {
		score := p.Competency(code)
		if score != nil && *score == topScore {
			s.TopCompetencies = append(s.TopCompetencies, CompetencyHighlight{
				Code: code, Label: PillarLabel(code), Score: *score,
			})
		}
	}
	if len(s.TopCompetencies) == 0 {
		for _, code := range store.CompetencyCodes {
			if score := p.Competency(code); score != nil {
				s.TopCompetencies = append(s.TopCompetencies, CompetencyHighlight{
					Code: code, Label: PillarLabel(code), Score: *score,
				})
			}
		}
	}
	return s
}
