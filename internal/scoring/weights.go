package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

// ErrInvalidWeightConfig is returned when a weight set violates the
// sum-to-1.0 invariant. It is fatal at configuration-load time and never
// surfaces during a scoring run.
var ErrInvalidWeightConfig = errors.New("invalid weight configuration")

// weightTolerance is the floating tolerance on every sum-to-1.0 check.
const weightTolerance = 1e-6

// SubFactor describes one scored attribute (TV) within a category: its kind,
// its weight within the category, and the scale parameters of its kind.
// Span is the configured scale span of a numeric sub-factor; PartialCredit
// is the score a categorical sub-factor earns on a non-match.
type SubFactor struct {
	Name          string  `yaml:"name" json:"name"`
	Kind          Kind    `yaml:"kind" json:"kind"`
	Weight        float64 `yaml:"weight" json:"weight"`
	Span          float64 `yaml:"span,omitempty" json:"span,omitempty"`
	PartialCredit float64 `yaml:"partial_credit,omitempty" json:"partial_credit,omitempty"`
}

// Config is the full scoring configuration: one weight per category and one
// weighted sub-factor roster per category. Weights are fixed configuration,
// never derived or calibrated.
type Config struct {
	CategoryWeights map[Category]float64     `yaml:"category_weights"`
	SubFactors      map[Category][]SubFactor `yaml:"sub_factors"`
}

// DefaultConfig returns the standard category weights and sub-factor
// rosters. Competency pillars are equally weighted; the remaining rosters
// follow the assessment model's fixed distribution.
func DefaultConfig() Config {
	competency := make([]SubFactor, 0, len(store.CompetencyCodes))
	for _, code := range store.CompetencyCodes {
		competency = append(competency, SubFactor{
			Name:   code,
			Kind:   KindNumeric,
			Weight: 0.125,
			Span:   5.0,
		})
	}

	return Config{
		CategoryWeights: map[Category]float64{
			CategoryCompetency:  0.35,
			CategoryCognitive:   0.15,
			CategoryPersonality: 0.15,
			CategoryBehavioral:  0.15,
			CategoryContextual:  0.20,
		},
		SubFactors: map[Category][]SubFactor{
			CategoryCompetency: competency,
			CategoryCognitive: {
				{Name: "iq", Kind: KindNumeric, Weight: 0.40, Span: 60},
				{Name: "gtq", Kind: KindNumeric, Weight: 0.35, Span: 60},
				{Name: "pauli", Kind: KindNumeric, Weight: 0.25, Span: 40},
			},
			CategoryPersonality: {
				{Name: "mbti_ei", Kind: KindCategorical, Weight: 0.15},
				{Name: "mbti_sn", Kind: KindCategorical, Weight: 0.15},
				{Name: "mbti_tf", Kind: KindCategorical, Weight: 0.15},
				{Name: "mbti_jp", Kind: KindCategorical, Weight: 0.15},
				{Name: "disc", Kind: KindCategorical, Weight: 0.40},
			},
			CategoryBehavioral: {
				{Name: "dominant_strength", Kind: KindCategorical, Weight: 0.60},
				{Name: "strength_domain", Kind: KindCategorical, Weight: 0.40},
			},
			CategoryContextual: {
				{Name: "education", Kind: KindCategorical, Weight: 0.30},
				{Name: "major", Kind: KindCategorical, Weight: 0.25},
				{Name: "position", Kind: KindCategorical, Weight: 0.20},
				{Name: "tenure_months", Kind: KindNumeric, Weight: 0.25, Span: 120},
			},
		},
	}
}

// Validate checks the sum-to-1.0 invariant at both levels: category weights
// across the five categories, and sub-factor weights within each category.
func (c Config) Validate() error {
	var categorySum float64
	for _, cat := range CategoryOrder {
		w, ok := c.CategoryWeights[cat]
		if !ok {
			return fmt.Errorf("%w: missing weight for category %q", ErrInvalidWeightConfig, cat)
		}
		if w < 0 {
			return fmt.Errorf("%w: negative weight %f for category %q", ErrInvalidWeightConfig, w, cat)
		}
		categorySum += w
	}
	if math.Abs(categorySum-1.0) > weightTolerance {
		return fmt.Errorf("%w: category weights sum to %f, must sum to 1.0", ErrInvalidWeightConfig, categorySum)
	}

	for _, cat := range CategoryOrder {
		roster := c.SubFactors[cat]
		if len(roster) == 0 {
			return fmt.Errorf("%w: no sub-factors configured for category %q", ErrInvalidWeightConfig, cat)
		}
		var sum float64
		for _, sf := range roster {
			if sf.Weight < 0 {
				return fmt.Errorf("%w: negative weight %f for sub-factor %q", ErrInvalidWeightConfig, sf.Weight, sf.Name)
			}
			if sf.Kind == KindNumeric && sf.Span <= 0 {
				return fmt.Errorf("%w: sub-factor %q requires a positive span", ErrInvalidWeightConfig, sf.Name)
			}
			sum += sf.Weight
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return fmt.Errorf("%w: sub-factor weights for %q sum to %f, must sum to 1.0", ErrInvalidWeightConfig, cat, sum)
		}
	}
	return nil
}
