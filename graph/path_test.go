package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packstream-go/bolt/graph"
)

func TestRehydratePath(t *testing.T) {
	a := &graph.Node{Identity: 1}
	b := &graph.Node{Identity: 2}
	c := &graph.Node{Identity: 3}
	nodes := []*graph.Node{a, b, c}

	r1 := &graph.UnboundRelationship{Identity: 10, Type: "KNOWS"}
	r2 := &graph.UnboundRelationship{Identity: 11, Type: "KNOWS"}
	rels := []*graph.UnboundRelationship{r1, r2}

	sequence := []int64{1, 1, -2, 2}

	path, err := graph.RehydratePath(nodes, rels, sequence)
	require.NoError(t, err)

	require.Len(t, path.Segments, 2)

	seg0 := path.Segments[0]
	assert.Same(t, a, seg0.Start)
	assert.Same(t, b, seg0.End)
	assert.Equal(t, int64(1), seg0.Rel.StartNodeID)
	assert.Equal(t, int64(2), seg0.Rel.EndNodeID)

	seg1 := path.Segments[1]
	assert.Same(t, b, seg1.Start)
	assert.Same(t, c, seg1.End)
	assert.Equal(t, int64(3), seg1.Rel.StartNodeID)
	assert.Equal(t, int64(2), seg1.Rel.EndNodeID)

	assert.Same(t, a, path.Start)
	assert.Same(t, c, path.End)
}

func TestRehydratePathSharesBoundRelationshipInstance(t *testing.T) {
	a := &graph.Node{Identity: 1}
	b := &graph.Node{Identity: 2}
	c := &graph.Node{Identity: 3}
	nodes := []*graph.Node{a, b, c}

	r1 := &graph.UnboundRelationship{Identity: 10, Type: "KNOWS"}
	rels := []*graph.UnboundRelationship{r1}

	// Same relationship slot referenced twice, forward then reversed.
	sequence := []int64{1, 1, -1, 2}

	path, err := graph.RehydratePath(nodes, rels, sequence)
	require.NoError(t, err)
	require.Len(t, path.Segments, 2)

	// Both segments reference the same rels slot; the first encounter
	// binds it and every later reference reuses that bound instance,
	// even though this second reference requests the opposite direction.
	assert.Same(t, path.Segments[0].Rel, path.Segments[1].Rel)
	assert.Equal(t, int64(1), path.Segments[0].Rel.StartNodeID)
	assert.Equal(t, int64(2), path.Segments[0].Rel.EndNodeID)
}

func TestRehydratePathRejectsOddSequence(t *testing.T) {
	a := &graph.Node{Identity: 1}
	_, err := graph.RehydratePath([]*graph.Node{a}, nil, []int64{1})
	assert.Error(t, err)
}

func TestRehydratePathRequiresAtLeastOneNode(t *testing.T) {
	_, err := graph.RehydratePath(nil, nil, nil)
	assert.Error(t, err)
}
