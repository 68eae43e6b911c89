package graph

import "fmt"

// Collision records an identifier that was suppressed during assembly or
// merging. The winning occurrence stays in the graph; Dropped describes the
// occurrence that lost.
//
// Collisions are reported, not fixed: two distinct display names that
// sanitize to the same id are treated as the same entity, and the caller
// decides whether that ambiguity matters.
type Collision struct {
	ID      string `json:"id" bson:"id"`
	Kind    Kind   `json:"kind,omitempty" bson:"kind,omitempty"`
	Dropped string `json:"dropped" bson:"dropped"`
}

// Merge combines per-source graphs into one, in order.
//
// Nodes and edges are appended source by source, keyed by id with
// first-occurrence-wins: an id already added by an earlier source suppresses
// the later occurrence. Merge is therefore order-sensitive. Every suppressed
// node id is returned as a Collision; duplicate edges are dropped silently
// since both endpoints already survived.
//
// Callers are expected to have stacked the sources vertically (see
// builder.BuildSources) so the merged layout regions do not overlap; Merge
// itself never repositions nodes.
func Merge(sources ...Graph) (Graph, []Collision) {
	merged := Empty()
	var collisions []Collision

	nodeIDs := make(map[string]bool)
	edgeIDs := make(map[string]bool)

	for i, src := range sources {
		for _, n := range src.Nodes {
			if nodeIDs[n.ID] {
				collisions = append(collisions, Collision{
					ID:      n.ID,
					Kind:    n.Kind,
					Dropped: fmt.Sprintf("source %d: %s", i, n.Label()),
				})
				continue
			}
			nodeIDs[n.ID] = true
			merged.Nodes = append(merged.Nodes, n)
		}

		for _, e := range src.Edges {
			if edgeIDs[e.ID] {
				continue
			}
			edgeIDs[e.ID] = true
			merged.Edges = append(merged.Edges, e)
		}
	}

	return merged, collisions
}

// Translate returns a copy of the graph with every node position shifted by
// (dx, dy). Edges are shared with the input since they carry no coordinates.
func Translate(g Graph, dx, dy float64) Graph {
	out := Graph{Nodes: make([]Node, len(g.Nodes)), Edges: g.Edges}
	for i, n := range g.Nodes {
		n.Position.X += dx
		n.Position.Y += dy
		out.Nodes[i] = n
	}
	return out
}
