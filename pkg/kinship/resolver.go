package kinship

import (
	"fmt"

	"github.com/giapha-vn/giapha/pkg/graph"
	"github.com/giapha-vn/giapha/pkg/types"
)

// ResolveInput carries everything the rule table needs: the classified
// steps, the cumulative generation and lineage, the target person, and the
// last relation of the path (for stored-label overrides).
type ResolveInput struct {
	Steps        []graph.Step
	Generation   int
	Lineage      types.Lineage
	Target       *types.Person
	LastRelation *types.Relation
}

// Resolution is the outcome of the rule table. When Title is TitleCustom,
// Label holds the user-stored term to present verbatim.
type Resolution struct {
	Title       Title
	Label       string
	Explanation string
	Certainty   types.Certainty
}

// Term returns the string to present as the address title.
func (r Resolution) Term() string {
	if r.Title == TitleCustom {
		return r.Label
	}
	return r.Title.String()
}

// Resolve runs the ordered rule table; the first matching rule wins.
// Self-queries are handled upstream and never reach this function.
func Resolve(in ResolveInput) Resolution {
	if res, ok := resolveStoredLabel(in); ok {
		return res
	}
	if len(in.Steps) == 1 {
		if res, ok := resolveDirect(in); ok {
			return res
		}
	}
	if res, ok := resolvePattern(in); ok {
		return res
	}
	return Resolution{
		Title:       TitleUnknown,
		Explanation: "relationship could not be determined",
		Certainty:   types.CertaintyUnknown,
	}
}

// resolveStoredLabel applies the highest-priority rule: a non-empty label
// on the path's last relation, anchored to the target (or to nobody),
// overrides all automatic inference.
func resolveStoredLabel(in ResolveInput) (Resolution, bool) {
	rel := in.LastRelation
	if rel == nil || rel.Label == "" {
		return Resolution{}, false
	}
	if rel.SubjectID != "" && (in.Target == nil || rel.SubjectID != in.Target.ID) {
		return Resolution{}, false
	}
	return Resolution{
		Title:       TitleCustom,
		Label:       rel.Label,
		Explanation: fmt.Sprintf("direct relation: %s", rel.Label),
		Certainty:   types.CertaintyCertain,
	}, true
}

// resolveDirect handles single-step paths.
func resolveDirect(in ResolveInput) (Resolution, bool) {
	gender := types.GenderUnknown
	if in.Target != nil {
		gender = in.Target.NormalizedGender()
	}

	switch in.Steps[0].Type {
	case types.RelationParent:
		if in.Generation > 0 {
			// Male parent is Ba, otherwise Mẹ; the same binary rule the
			// lineage classification uses.
			if gender == types.GenderMale {
				return Resolution{Title: TitleFather, Explanation: "father of the reference person", Certainty: types.CertaintyCertain}, true
			}
			res := Resolution{Title: TitleMother, Explanation: "mother of the reference person", Certainty: types.CertaintyCertain}
			if gender == types.GenderUnknown {
				res.Explanation = "parent of the reference person; gender not determined"
				res.Certainty = types.CertaintyUncertain
			}
			return res, true
		}
		return Resolution{Title: TitleChild, Explanation: "child of the reference person", Certainty: types.CertaintyCertain}, true

	case types.RelationSpouse:
		if gender == types.GenderMale {
			return Resolution{Title: TitleHusband, Explanation: "spouse of the reference person (husband)", Certainty: types.CertaintyCertain}, true
		}
		res := Resolution{Title: TitleWife, Explanation: "spouse of the reference person (wife)", Certainty: types.CertaintyCertain}
		if gender == types.GenderUnknown {
			res.Explanation = "spouse of the reference person; gender not determined"
			res.Certainty = types.CertaintyUncertain
		}
		return res, true

	case types.RelationSibling:
		// TODO: pick Anh/Chị/Em from Steps[0].IsOlder and the target's
		// gender once product confirms the seniority mapping.
		return Resolution{
			Title:       TitleSibling,
			Explanation: "sibling of the reference person; birth order not applied",
			Certainty:   types.CertaintyInferred,
		}, true
	}

	return Resolution{}, false
}

// resolvePattern matches multi-step paths by exact step-type sequence plus
// generation and lineage.
func resolvePattern(in ResolveInput) (Resolution, bool) {
	gender := types.GenderUnknown
	if in.Target != nil {
		gender = in.Target.NormalizedGender()
	}

	switch {
	case in.Generation == 1 && matchSteps(in.Steps, types.RelationParent, types.RelationSibling):
		return resolveParentSibling(in.Lineage, gender)

	case in.Generation == 1 && matchSteps(in.Steps, types.RelationParent, types.RelationSibling, types.RelationSpouse):
		return resolveParentSiblingSpouse(in.Lineage, gender)

	case in.Generation == 0 && matchSteps(in.Steps, types.RelationParent, types.RelationSibling, types.RelationParent):
		// TODO: select among Anh họ/Chị họ/Em họ using the sibling step's
		// IsOlder hint and the target's gender; the mapping is still
		// awaiting product input.
		return Resolution{
			Title:       TitleCousin,
			Explanation: "cousin of the reference person",
			Certainty:   types.CertaintyInferred,
		}, true

	case in.Generation == -1:
		return Resolution{
			Title:       TitleDescendant,
			Explanation: "one generation below the reference person",
			Certainty:   types.CertaintyCertain,
		}, true

	case in.Generation >= 2 && allParentSteps(in.Steps):
		return resolveGrandparent(in.Lineage, gender)

	case in.Generation <= -2:
		return Resolution{
			Title:       TitleDescendant,
			Explanation: fmt.Sprintf("%d generations below the reference person", -in.Generation),
			Certainty:   types.CertaintyCertain,
		}, true
	}

	return Resolution{}, false
}

// resolveParentSibling maps a parent's sibling to one of the four terms
// chosen by lineage crossed with the target's gender.
func resolveParentSibling(lineage types.Lineage, gender types.Gender) (Resolution, bool) {
	var title Title
	switch {
	case lineage == types.LineagePaternal && gender == types.GenderMale:
		title = TitlePaternalUncle
	case lineage == types.LineagePaternal && gender == types.GenderFemale:
		title = TitlePaternalAunt
	case lineage == types.LineageMaternal && gender == types.GenderMale:
		title = TitleMaternalUncle
	case lineage == types.LineageMaternal && gender == types.GenderFemale:
		title = TitleMaternalAunt
	default:
		return Resolution{}, false
	}
	return Resolution{
		Title:       title,
		Explanation: fmt.Sprintf("sibling of the reference person's %s parent", lineage),
		Certainty:   types.CertaintyCertain,
	}, true
}

// resolveParentSiblingSpouse maps the spouse of a parent's sibling.
func resolveParentSiblingSpouse(lineage types.Lineage, gender types.Gender) (Resolution, bool) {
	var title Title
	switch {
	case lineage == types.LineagePaternal && gender == types.GenderFemale:
		title = TitlePaternalUncleWife
	case lineage == types.LineageMaternal && gender == types.GenderFemale:
		title = TitleMaternalUncleWife
	case gender == types.GenderMale && (lineage == types.LineagePaternal || lineage == types.LineageMaternal):
		title = TitleAuntHusband
	default:
		return Resolution{}, false
	}
	return Resolution{
		Title:       title,
		Explanation: fmt.Sprintf("spouse of a sibling of the reference person's %s parent", lineage),
		Certainty:   types.CertaintyCertain,
	}, true
}

// resolveGrandparent maps an unbroken upward PARENT chain two or more
// generations long.
func resolveGrandparent(lineage types.Lineage, gender types.Gender) (Resolution, bool) {
	var title Title
	switch {
	case lineage == types.LineagePaternal && gender == types.GenderMale:
		title = TitlePaternalGrandfather
	case lineage == types.LineagePaternal && gender == types.GenderFemale:
		title = TitlePaternalGrandmother
	case lineage == types.LineageMaternal && gender == types.GenderMale:
		title = TitleMaternalGrandfather
	case lineage == types.LineageMaternal && gender == types.GenderFemale:
		title = TitleMaternalGrandmother
	default:
		return Resolution{
			Title:       TitleGrandparent,
			Explanation: "grandparent of the reference person; gender not determined",
			Certainty:   types.CertaintyUncertain,
		}, true
	}
	return Resolution{
		Title:       title,
		Explanation: fmt.Sprintf("grandparent on the %s side", lineage),
		Certainty:   types.CertaintyCertain,
	}, true
}

// matchSteps reports whether the steps' types equal the given sequence.
func matchSteps(steps []graph.Step, want ...types.RelationType) bool {
	if len(steps) != len(want) {
		return false
	}
	for i, w := range want {
		if steps[i].Type != w {
			return false
		}
	}
	return true
}

// allParentSteps reports whether every step crosses a PARENT relation.
func allParentSteps(steps []graph.Step) bool {
	if len(steps) == 0 {
		return false
	}
	for _, s := range steps {
		if s.Type != types.RelationParent {
			return false
		}
	}
	return true
}
