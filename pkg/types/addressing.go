package types

// Lineage classifies which side of the family a relation path runs through.
// It is fixed at the first step of a path, and only when that step moves
// upward through a PARENT relation.
type Lineage string

const (
	LineagePaternal Lineage = "paternal"
	LineageMaternal Lineage = "maternal"
	LineageNone     Lineage = "none"
)

// Certainty is the structured certainty tier of a resolved address title.
// Confidence scores are derived from this enum at the boundary; nothing in
// the engine inspects explanation text.
type Certainty string

const (
	// CertaintyCertain: the title follows directly from an unambiguous rule
	// or an explicit stored label.
	CertaintyCertain Certainty = "certain"
	// CertaintyInferred: the title is correct for the relation class but a
	// refining detail (birth order, seniority) was not determined.
	CertaintyInferred Certainty = "inferred"
	// CertaintyUncertain: a required attribute (typically gender) was
	// missing and the rule fell back to a combined form.
	CertaintyUncertain Certainty = "uncertain"
	// CertaintyUnknown: no rule matched, or the target is unreachable.
	CertaintyUnknown Certainty = "unknown"
)

// Score maps a certainty tier to the numeric confidence exposed to callers.
func (c Certainty) Score() float64 {
	switch c {
	case CertaintyCertain:
		return 0.9
	case CertaintyInferred:
		return 0.6
	case CertaintyUncertain:
		return 0.3
	default:
		return 0.0
	}
}

// AddressingInfo is the result of resolving how the reference person
// addresses a target person. It is computed per query and never stored.
type AddressingInfo struct {
	// Title is the resolved address term: a term from the kinship
	// vocabulary, or a user-stored label verbatim.
	Title string `json:"title"`
	// Explanation describes how the title was derived.
	Explanation string `json:"explanation"`
	// GreetingExamples are example phrases using the title, in a stable order.
	GreetingExamples []string `json:"greetingExamples,omitempty"`
	// Lineage is the paternal/maternal branch of the path, or none.
	Lineage Lineage `json:"lineage"`
	// Generation is the signed generational offset: positive toward
	// ancestors, negative toward descendants, zero for the same generation.
	Generation int `json:"generation"`
	// Certainty is the structured certainty tier behind Confidence.
	Certainty Certainty `json:"certainty"`
	// Confidence is Certainty's numeric score, except for a self-query
	// which is fixed at 1.0.
	Confidence float64 `json:"confidence"`
}
