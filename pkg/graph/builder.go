package graph

import "github.com/giapha-vn/giapha/pkg/types"

// Adjacency holds the directed kinship neighbours of one person.
type Adjacency struct {
	Parents  []string `json:"parents"`
	Children []string `json:"children"`
	Spouses  []string `json:"spouses"`
}

// ClusterMap maps a family-cluster id to its member person ids, each listed
// once, in first-seen order.
type ClusterMap map[string][]string

// RelationGraph is the navigable structure derived from one snapshot. It is
// rebuilt whenever the snapshot changes and never mutated in place.
type RelationGraph struct {
	nodes     map[string]*Adjacency
	persons   map[string]*types.Person
	relations map[string]*types.Relation

	// incidence lists the relation ids touching each person, in the
	// relation list's original order. BFS traverses these, so insertion
	// order is what makes path results deterministic.
	incidence map[string][]string
	order     []string
}

// Build constructs a RelationGraph from a snapshot. Relations referencing
// unknown person ids still get adjacency records for those ids; nothing
// here ever fails.
func Build(persons []*types.Person, relations []*types.Relation) *RelationGraph {
	g := &RelationGraph{
		nodes:     make(map[string]*Adjacency, len(persons)),
		persons:   make(map[string]*types.Person, len(persons)),
		relations: make(map[string]*types.Relation, len(relations)),
		incidence: make(map[string][]string),
	}

	for _, p := range persons {
		g.persons[p.ID] = p
		g.node(p.ID)
	}

	for _, r := range relations {
		g.relations[r.ID] = r
		g.order = append(g.order, r.ID)

		a := g.node(r.PersonAID)
		b := g.node(r.PersonBID)
		g.incidence[r.PersonAID] = append(g.incidence[r.PersonAID], r.ID)
		g.incidence[r.PersonBID] = append(g.incidence[r.PersonBID], r.ID)

		switch r.Type {
		case types.RelationParent:
			parentID, childID := g.ParentChild(r)
			g.node(parentID).Children = append(g.node(parentID).Children, childID)
			g.node(childID).Parents = append(g.node(childID).Parents, parentID)
		case types.RelationSpouse:
			a.Spouses = append(a.Spouses, r.PersonBID)
			b.Spouses = append(b.Spouses, r.PersonAID)
		}
		// SIBLING and CUSTOM relations only participate as traversable
		// edges; they do not shape parents/children/spouses adjacency.
	}

	return g
}

// node returns the adjacency record for id, creating an empty one if needed.
func (g *RelationGraph) node(id string) *Adjacency {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Adjacency{}
	g.nodes[id] = n
	return n
}

// Adjacency returns the adjacency record for id. Unknown ids yield an empty
// record rather than nil.
func (g *RelationGraph) Adjacency(id string) *Adjacency {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	return &Adjacency{}
}

// Person returns the person with the given id, or nil for dangling ids.
func (g *RelationGraph) Person(id string) *types.Person {
	return g.persons[id]
}

// Relation returns the relation with the given id, or nil.
func (g *RelationGraph) Relation(id string) *types.Relation {
	return g.relations[id]
}

// Size returns the number of person records in the graph, dangling ids included.
func (g *RelationGraph) Size() int {
	return len(g.nodes)
}

// ParentChild resolves the direction of a PARENT relation. Explicit
// ParentID/ChildID win. Otherwise the endpoint with the earlier known birth
// year is taken as the parent, and when neither birth year is known,
// PersonA is assumed to be the parent. The two fallbacks are heuristics,
// not guarantees.
func (g *RelationGraph) ParentChild(r *types.Relation) (parentID, childID string) {
	if r.ParentID != "" && r.ChildID != "" {
		return r.ParentID, r.ChildID
	}
	pa, pb := g.persons[r.PersonAID], g.persons[r.PersonBID]
	if pa != nil && pb != nil && pa.BirthYear != nil && pb.BirthYear != nil {
		if *pb.BirthYear < *pa.BirthYear {
			return r.PersonBID, r.PersonAID
		}
		return r.PersonAID, r.PersonBID
	}
	return r.PersonAID, r.PersonBID
}

// BuildClusters builds the family-cluster index by unioning each person's
// Families set with every relation's FamilyID, attaching both endpoints of
// a tagged relation to its cluster.
func BuildClusters(persons []*types.Person, relations []*types.Relation) ClusterMap {
	clusters := make(ClusterMap)
	seen := make(map[string]map[string]bool)

	add := func(familyID, personID string) {
		if familyID == "" || personID == "" {
			return
		}
		if seen[familyID] == nil {
			seen[familyID] = make(map[string]bool)
		}
		if seen[familyID][personID] {
			return
		}
		seen[familyID][personID] = true
		clusters[familyID] = append(clusters[familyID], personID)
	}

	for _, p := range persons {
		for _, f := range p.Families {
			add(f, p.ID)
		}
	}
	for _, r := range relations {
		add(r.FamilyID, r.PersonAID)
		add(r.FamilyID, r.PersonBID)
	}

	return clusters
}
