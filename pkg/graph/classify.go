package graph

import "github.com/giapha-vn/giapha/pkg/types"

// Step summarizes one relation crossed along a path.
type Step struct {
	Type types.RelationType `json:"type"`
	// IsOlder is set on SIBLING steps when both endpoints have known birth
	// years: true when the person stepped onto was born earlier. It is an
	// advisory hint; not all title rules consult it.
	IsOlder *bool `json:"isOlder,omitempty"`
}

// PathSummary is the classification of a relation path: the per-step
// summary, the cumulative generation offset, the lineage branch, and the
// person the path ends on.
type PathSummary struct {
	Steps      []Step
	Generation int
	Lineage    types.Lineage
	TargetID   string
}

// ClassifyPath walks a relation-id path starting at referenceID and
// computes, in one pass, the generation offset (+1 per child-to-parent
// step, -1 per parent-to-child step), the lineage branch, and a per-step
// type summary.
//
// Lineage is fixed once, at the first step, and only when that step moves
// upward through a PARENT relation: paternal when that parent is male,
// maternal otherwise. A path whose first step is not an upward PARENT step
// keeps LineageNone.
func (g *RelationGraph) ClassifyPath(path []string, referenceID string) PathSummary {
	summary := PathSummary{
		Steps:    make([]Step, 0, len(path)),
		Lineage:  types.LineageNone,
		TargetID: referenceID,
	}

	cur := referenceID
	for i, relID := range path {
		rel := g.relations[relID]
		if rel == nil {
			break
		}
		next, ok := rel.Other(cur)
		if !ok {
			break
		}

		step := Step{Type: rel.Type}
		switch rel.Type {
		case types.RelationParent:
			parentID, _ := g.ParentChild(rel)
			if next == parentID {
				summary.Generation++
				if i == 0 {
					if p := g.persons[parentID]; p != nil && p.NormalizedGender() == types.GenderMale {
						summary.Lineage = types.LineagePaternal
					} else {
						summary.Lineage = types.LineageMaternal
					}
				}
			} else {
				summary.Generation--
			}
		case types.RelationSibling:
			pc, pn := g.persons[cur], g.persons[next]
			if pc != nil && pn != nil && pc.BirthYear != nil && pn.BirthYear != nil {
				older := *pn.BirthYear < *pc.BirthYear
				step.IsOlder = &older
			}
		}

		summary.Steps = append(summary.Steps, step)
		cur = next
	}

	summary.TargetID = cur
	return summary
}
