package scoring

// Category is one of the five talent group variables (TGVs) a candidate is
// scored on. The set is closed; CategoryOrder fixes the enumeration order
// used for iteration and every tie-break.
type Category string

const (
	CategoryCompetency  Category = "Competency"
	CategoryCognitive   Category = "Psychometric (Cognitive)"
	CategoryPersonality Category = "Psychometric (Personality)"
	CategoryBehavioral  Category = "Behavioral (Strengths)"
	CategoryContextual  Category = "Contextual (Background)"
)

// CategoryOrder is the fixed enumeration order of the five categories.
var CategoryOrder = []Category{
	CategoryCompetency,
	CategoryCognitive,
	CategoryPersonality,
	CategoryBehavioral,
	CategoryContextual,
}

// Kind distinguishes how a sub-factor is compared against the baseline.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)
