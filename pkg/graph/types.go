package graph

import "fmt"

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Kind identifies what an inventory node represents.
type Kind string

// Node kinds. These are the only kinds the builder emits.
const (
	KindDatacenter Kind = "datacenter"
	KindCluster    Kind = "cluster"
	KindHost       Kind = "physical-host"
	KindVM         Kind = "virtual-machine"
)

// EdgeContains is the only edge kind: the source node physically or
// logically contains the target node.
const EdgeContains = "contains"

// =============================================================================
// Graph - Topology Serialization
// =============================================================================

// Graph is the canonical serialization format for topology graphs.
// Used for API responses, storage, caching, and hand-off to the rendering
// surface. Nodes and edges appear in build order, which is deterministic for
// a fixed input dataset and configuration.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Position is a 2-D placement in the rendering surface's coordinate space.
// Positions are advisory initial placement; consumers are free to move nodes.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Node is one inventory entity in the topology.
//
// ID is unique within a graph and is a pure function of the entity's natural
// key (name or asset tag) and its kind prefix, so the same entity always maps
// to the same id across uploads.
type Node struct {
	ID       string         `json:"id" bson:"id"`
	Kind     Kind           `json:"kind" bson:"kind"`
	Position Position       `json:"position" bson:"position"`
	Data     map[string]any `json:"data,omitempty" bson:"data,omitempty"`
}

// Label returns the display label from the node's data bag, falling back to
// the id when no label was recorded.
func (n *Node) Label() string {
	if s, ok := n.Data["label"].(string); ok && s != "" {
		return s
	}
	return n.ID
}

// Edge is a containment assertion between two nodes of the same graph.
// Source and Target always reference ids present in the graph's node set;
// the builder drops dangling parent references instead of fabricating nodes.
type Edge struct {
	ID     string   `json:"id" bson:"id"`
	Source string   `json:"source" bson:"source"`
	Target string   `json:"target" bson:"target"`
	Kind   string   `json:"kind" bson:"kind"`
	Data   EdgeData `json:"data" bson:"data"`
}

// EdgeData carries presentation metadata for an edge.
type EdgeData struct {
	AriaLabel string `json:"ariaLabel,omitempty" bson:"ariaLabel,omitempty"`
}

// ContainsEdge builds the canonical containment edge between two node ids.
// The ariaLabel describes the relationship for assistive technology.
func ContainsEdge(source, target, sourceLabel, targetLabel string) Edge {
	return Edge{
		ID:     fmt.Sprintf("edge-%s-%s", source, target),
		Source: source,
		Target: target,
		Kind:   EdgeContains,
		Data:   EdgeData{AriaLabel: fmt.Sprintf("%s contains %s", sourceLabel, targetLabel)},
	}
}

// Empty returns a graph with allocated, zero-length node and edge slices.
// An empty or absent inventory payload transforms to this, never to an error.
func Empty() Graph {
	return Graph{Nodes: []Node{}, Edges: []Edge{}}
}

// HasNode reports whether a node with the given id exists in the graph.
func (g *Graph) HasNode(id string) bool {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return true
		}
	}
	return false
}

// MaxY returns the largest node Y coordinate, or start if the graph has no
// nodes. The merger uses this to stack sources vertically.
func (g *Graph) MaxY(start float64) float64 {
	max := start
	for i := range g.Nodes {
		if y := g.Nodes[i].Position.Y; y > max {
			max = y
		}
	}
	return max
}
