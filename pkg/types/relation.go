package types

// RelationType classifies an edge between two persons.
type RelationType string

const (
	// RelationParent links a parent and a child. The pair is stored
	// undirected; ParentID/ChildID pin the direction when known.
	RelationParent RelationType = "parent"
	// RelationSpouse links two spouses.
	RelationSpouse RelationType = "spouse"
	// RelationSibling links two siblings.
	RelationSibling RelationType = "sibling"
	// RelationCustom is a free-form edge carrying only a user label.
	RelationCustom RelationType = "custom"
)

// Relation is a typed edge between two persons. Endpoints are stored as an
// undirected pair; PARENT relations may additionally carry an explicit
// direction via ParentID/ChildID.
type Relation struct {
	ID        string       `json:"id"`
	Type      RelationType `json:"type"`
	PersonAID string       `json:"personAId"`
	PersonBID string       `json:"personBId"`

	// ParentID and ChildID disambiguate the direction of a PARENT
	// relation. When absent, direction is inferred (see graph.Build).
	ParentID string `json:"parentId,omitempty"`
	ChildID  string `json:"childId,omitempty"`

	// SubjectID anchors Label to one endpoint: the stored label describes
	// how the reference side addresses SubjectID. Empty means the label
	// applies to whichever endpoint ends a path.
	SubjectID string `json:"subjectId,omitempty"`

	// Label is an explicit address title stored on the edge, overriding
	// rule-based resolution when the edge ends a path.
	Label string `json:"label,omitempty"`

	// FamilyID tags both endpoints into a family cluster.
	FamilyID string `json:"familyId,omitempty"`
}

// Validate checks if the Relation has all required fields set.
func (r *Relation) Validate() error {
	if r.PersonAID == "" || r.PersonBID == "" {
		return ErrEmptyEndpoint
	}
	if r.PersonAID == r.PersonBID {
		return ErrSamePerson
	}
	switch r.Type {
	case RelationParent, RelationSpouse, RelationSibling, RelationCustom:
		return nil
	default:
		return ErrUnknownType
	}
}

// ValidateForCreate checks if the Relation has all required fields for creation.
func (r *Relation) ValidateForCreate() error {
	if r.ID == "" {
		return ErrEmptyID
	}
	return r.Validate()
}

// Other returns the endpoint of the relation that is not id, and reports
// whether id is one of the endpoints at all.
func (r *Relation) Other(id string) (string, bool) {
	switch id {
	case r.PersonAID:
		return r.PersonBID, true
	case r.PersonBID:
		return r.PersonAID, true
	default:
		return "", false
	}
}
