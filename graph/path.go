package graph

import "fmt"

// PathSignature is the PackStream structure signature for a Path.
const PathSignature = 0x50

// PathSegment is one hop of a Path: a start node, the relationship
// traversed, and the end node it leads to.
type PathSegment struct {
	Start *Node
	Rel   *Relationship
	End   *Node
}

// Path is an ordered walk through a graph: a start node, an end node
// (equal to the last segment's End, or Start if there are no segments),
// and the segments connecting them. Consecutive segments share a node:
// Segments[i].End == Segments[i+1].Start.
type Path struct {
	Start    *Node
	End      *Node
	Segments []PathSegment
}

// RehydratePath reconstructs a Path from the flat index encoding PackStream
// uses on the wire: nodes[0] is the path's start, and sequence is a list of
// (relIndex, nodeIndex) pairs walked in order. A positive relIndex means
// the relationship is traversed forward (from the previous node to the
// next); negative means reversed. Both forms are 1-based into rels.
//
// Each UnboundRelationship is bound into a Relationship at most once: the
// first pair that references a given rels slot binds it and caches the
// result, and later pairs referencing the same slot reuse that cached
// *Relationship, so segments that share a relationship share one instance.
func RehydratePath(nodes []*Node, rels []*UnboundRelationship, sequence []int64) (*Path, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("graph: path requires at least one node")
	}
	if len(sequence)%2 != 0 {
		return nil, fmt.Errorf("graph: path sequence must have an even number of entries, got %d", len(sequence))
	}

	cache := make(map[int]*Relationship, len(rels))
	prev := nodes[0]
	segments := make([]PathSegment, 0, len(sequence)/2)

	for i := 0; i < len(sequence); i += 2 {
		relIndex := sequence[i]
		nodeIndex := sequence[i+1]
		if nodeIndex < 0 || int(nodeIndex) >= len(nodes) {
			return nil, fmt.Errorf("graph: path node index %d out of range [0,%d)", nodeIndex, len(nodes))
		}
		next := nodes[nodeIndex]

		var slot int
		var startID, endID int64
		switch {
		case relIndex > 0:
			slot = int(relIndex) - 1
			startID, endID = prev.Identity, next.Identity
		case relIndex < 0:
			slot = int(-relIndex) - 1
			startID, endID = next.Identity, prev.Identity
		default:
			return nil, fmt.Errorf("graph: path relationship index must be nonzero")
		}
		if slot < 0 || slot >= len(rels) {
			return nil, fmt.Errorf("graph: path relationship index %d out of range", relIndex)
		}

		rel, ok := cache[slot]
		if !ok {
			rel = rels[slot].Bind(startID, endID)
			cache[slot] = rel
		}

		segments = append(segments, PathSegment{Start: prev, Rel: rel, End: next})
		prev = next
	}

	return &Path{Start: nodes[0], End: prev, Segments: segments}, nil
}
