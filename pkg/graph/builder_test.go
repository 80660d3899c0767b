package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giapha-vn/giapha/pkg/types"
)

func intp(v int) *int { return &v }

func TestBuildParentDirection(t *testing.T) {
	t.Run("explicit parent and child fields win", func(t *testing.T) {
		persons := []*types.Person{
			{ID: "a", Name: "A", BirthYear: intp(2000)},
			{ID: "b", Name: "B", BirthYear: intp(1970)},
		}
		// Explicit direction contradicts the birth years on purpose.
		relations := []*types.Relation{
			{ID: "r1", Type: types.RelationParent, PersonAID: "a", PersonBID: "b", ParentID: "a", ChildID: "b"},
		}

		g := Build(persons, relations)
		assert.Equal(t, []string{"b"}, g.Adjacency("a").Children)
		assert.Equal(t, []string{"a"}, g.Adjacency("b").Parents)
	})

	t.Run("earlier birth year inferred as parent", func(t *testing.T) {
		persons := []*types.Person{
			{ID: "a", Name: "A", BirthYear: intp(1995)},
			{ID: "b", Name: "B", BirthYear: intp(1965)},
		}
		relations := []*types.Relation{
			{ID: "r1", Type: types.RelationParent, PersonAID: "a", PersonBID: "b"},
		}

		g := Build(persons, relations)
		assert.Equal(t, []string{"a"}, g.Adjacency("b").Children)
		assert.Equal(t, []string{"b"}, g.Adjacency("a").Parents)
	})

	t.Run("personA assumed parent without birth years", func(t *testing.T) {
		persons := []*types.Person{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
		}
		relations := []*types.Relation{
			{ID: "r1", Type: types.RelationParent, PersonAID: "a", PersonBID: "b"},
		}

		g := Build(persons, relations)
		assert.Equal(t, []string{"b"}, g.Adjacency("a").Children)
		assert.Equal(t, []string{"a"}, g.Adjacency("b").Parents)
	})
}

func TestBuildSpouseAdjacency(t *testing.T) {
	persons := []*types.Person{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}
	relations := []*types.Relation{
		{ID: "r1", Type: types.RelationSpouse, PersonAID: "a", PersonBID: "b"},
	}

	g := Build(persons, relations)
	assert.Equal(t, []string{"b"}, g.Adjacency("a").Spouses)
	assert.Equal(t, []string{"a"}, g.Adjacency("b").Spouses)
}

func TestBuildSiblingAndCustomDoNotShapeAdjacency(t *testing.T) {
	persons := []*types.Person{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}
	relations := []*types.Relation{
		{ID: "r1", Type: types.RelationSibling, PersonAID: "a", PersonBID: "b"},
		{ID: "r2", Type: types.RelationCustom, PersonAID: "a", PersonBID: "b", Label: "bạn thân"},
	}

	g := Build(persons, relations)
	for _, id := range []string{"a", "b"} {
		adj := g.Adjacency(id)
		assert.Empty(t, adj.Parents)
		assert.Empty(t, adj.Children)
		assert.Empty(t, adj.Spouses)
	}
	// Both remain traversable edges.
	assert.Equal(t, []string{"r1", "r2"}, g.incidence["a"])
}

func TestBuildToleratesDanglingIDs(t *testing.T) {
	persons := []*types.Person{{ID: "a", Name: "A"}}
	relations := []*types.Relation{
		{ID: "r1", Type: types.RelationParent, PersonAID: "a", PersonBID: "ghost"},
	}

	g := Build(persons, relations)
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, []string{"ghost"}, g.Adjacency("a").Children)
	assert.Nil(t, g.Person("ghost"))

	// Unknown ids queried directly still yield empty records.
	adj := g.Adjacency("nobody")
	require.NotNil(t, adj)
	assert.Empty(t, adj.Parents)
}

func TestBuildClusters(t *testing.T) {
	t.Run("unions person families and relation family ids", func(t *testing.T) {
		persons := []*types.Person{
			{ID: "a", Name: "A", Families: []string{"noi"}},
			{ID: "b", Name: "B", Families: []string{"noi", "ngoai"}},
			{ID: "c", Name: "C"},
		}
		relations := []*types.Relation{
			{ID: "r1", Type: types.RelationSibling, PersonAID: "b", PersonBID: "c", FamilyID: "ngoai"},
		}

		clusters := BuildClusters(persons, relations)
		assert.Equal(t, []string{"a", "b"}, clusters["noi"])
		assert.Equal(t, []string{"b", "c"}, clusters["ngoai"])
	})

	t.Run("members are not duplicated", func(t *testing.T) {
		persons := []*types.Person{{ID: "a", Name: "A", Families: []string{"x"}}}
		relations := []*types.Relation{
			{ID: "r1", Type: types.RelationSpouse, PersonAID: "a", PersonBID: "b", FamilyID: "x"},
			{ID: "r2", Type: types.RelationSibling, PersonAID: "a", PersonBID: "b", FamilyID: "x"},
		}

		clusters := BuildClusters(persons, relations)
		assert.Equal(t, []string{"a", "b"}, clusters["x"])
	})

	t.Run("empty inputs yield empty map", func(t *testing.T) {
		assert.Empty(t, BuildClusters(nil, nil))
	})
}
