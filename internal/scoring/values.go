package scoring

import (
	"strings"

	"github.com/MikeSquared-Agency/TalentMatch/internal/baseline"
	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

// Sub-factor names resolve to employee and baseline fields here. Numeric
// names that match no known field fall through to the competency pillar
// codes, so the competency roster is configurable without code changes.

func candidateNumeric(name string, e *store.Employee) *float64 {
	switch name {
	case "iq":
		return e.IQ
	case "gtq":
		return e.GTQ
	case "pauli":
		return e.Pauli
	case "tenure_months":
		return e.TenureMonths
	default:
		return e.Competency(strings.ToUpper(name))
	}
}

func baselineNumeric(name string, p *baseline.Profile) *float64 {
	switch name {
	case "iq":
		return p.IQ
	case "gtq":
		return p.GTQ
	case "pauli":
		return p.Pauli
	case "tenure_months":
		return p.TenureMonths
	default:
		return p.Competency(name)
	}
}

func candidateCategorical(name string, e *store.Employee) *string {
	switch name {
	case "disc":
		return e.DISC
	case "education":
		return e.Education
	case "major":
		return e.Major
	case "dominant_strength":
		return e.DominantStrength
	case "strength_domain":
		return e.StrengthDomain
	case "position":
		if e.Role == "" {
			return nil
		}
		role := e.Role
		return &role
	case "mbti_ei":
		return mbtiAxis(e.MBTI, 0)
	case "mbti_sn":
		return mbtiAxis(e.MBTI, 1)
	case "mbti_tf":
		return mbtiAxis(e.MBTI, 2)
	case "mbti_jp":
		return mbtiAxis(e.MBTI, 3)
	}
	return nil
}

func baselineCategorical(name string, p *baseline.Profile) *string {
	switch name {
	case "disc":
		return p.DISC
	case "education":
		return p.Education
	case "major":
		return p.Major
	case "dominant_strength":
		return p.DominantStrength
	case "strength_domain":
		return p.StrengthDomain
	case "position":
		return p.Position
	case "mbti_ei":
		return mbtiAxis(p.MBTI, 0)
	case "mbti_sn":
		return mbtiAxis(p.MBTI, 1)
	case "mbti_tf":
		return mbtiAxis(p.MBTI, 2)
	case "mbti_jp":
		return mbtiAxis(p.MBTI, 3)
	}
	return nil
}

// mbtiAxis extracts one letter of a four-letter MBTI code so the axes score
// independently. Nil for missing or malformed codes.
func mbtiAxis(code *string, index int) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.ToUpper(strings.TrimSpace(*code))
	if len(trimmed) != 4 || index < 0 || index >= 4 {
		return nil
	}
	letter := trimmed[index : index+1]
	return &letter
}
