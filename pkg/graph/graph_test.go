package graph

import (
	"bytes"
	"testing"
)

func node(id string, kind Kind, label string, y float64) Node {
	return Node{
		ID:       id,
		Kind:     kind,
		Position: Position{Y: y},
		Data:     map[string]any{"label": label},
	}
}

func TestMergeFirstOccurrenceWins(t *testing.T) {
	a := Graph{Nodes: []Node{node("host-web01", KindHost, "web01-from-a", 0)}, Edges: []Edge{}}
	b := Graph{Nodes: []Node{node("host-web01", KindHost, "web01-from-b", 100)}, Edges: []Edge{}}

	merged, collisions := Merge(a, b)
	if len(merged.Nodes) != 1 {
		t.Fatalf("merged node count = %d, want 1", len(merged.Nodes))
	}
	if got := merged.Nodes[0].Label(); got != "web01-from-a" {
		t.Errorf("Merge(a, b) kept %q, want a's version", got)
	}

	if len(collisions) != 1 {
		t.Fatalf("collision count = %d, want 1", len(collisions))
	}
	if collisions[0].ID != "host-web01" {
		t.Errorf("collision id = %q, want host-web01", collisions[0].ID)
	}

	// Reversed order keeps the other version: merge is order-sensitive.
	merged, _ = Merge(b, a)
	if got := merged.Nodes[0].Label(); got != "web01-from-b" {
		t.Errorf("Merge(b, a) kept %q, want b's version", got)
	}
}

func TestMergeDisjointSources(t *testing.T) {
	a := Graph{
		Nodes: []Node{node("cluster-prod", KindCluster, "prod", 0), node("host-a", KindHost, "a", 200)},
		Edges: []Edge{ContainsEdge("cluster-prod", "host-a", "prod", "a")},
	}
	b := Graph{
		Nodes: []Node{node("host-b", KindHost, "b", 400)},
		Edges: []Edge{},
	}

	merged, collisions := Merge(a, b)
	if len(merged.Nodes) != 3 {
		t.Errorf("merged node count = %d, want 3", len(merged.Nodes))
	}
	if len(merged.Edges) != 1 {
		t.Errorf("merged edge count = %d, want 1", len(merged.Edges))
	}
	if len(collisions) != 0 {
		t.Errorf("collisions = %v, want none", collisions)
	}

	// No dangling edges after merge.
	for _, e := range merged.Edges {
		if !merged.HasNode(e.Source) || !merged.HasNode(e.Target) {
			t.Errorf("edge %s references a missing node", e.ID)
		}
	}
}

func TestMergeDuplicateEdges(t *testing.T) {
	e := ContainsEdge("cluster-prod", "host-a", "prod", "a")
	a := Graph{
		Nodes: []Node{node("cluster-prod", KindCluster, "prod", 0), node("host-a", KindHost, "a", 200)},
		Edges: []Edge{e},
	}

	merged, _ := Merge(a, a)
	if len(merged.Edges) != 1 {
		t.Errorf("duplicate edge survived merge: edge count = %d, want 1", len(merged.Edges))
	}
}

func TestMergeEmpty(t *testing.T) {
	merged, collisions := Merge()
	if len(merged.Nodes) != 0 || len(merged.Edges) != 0 {
		t.Errorf("Merge() = %+v, want empty graph", merged)
	}
	if merged.Nodes == nil || merged.Edges == nil {
		t.Error("Merge() must return allocated slices, not nil")
	}
	if len(collisions) != 0 {
		t.Errorf("Merge() collisions = %v, want none", collisions)
	}
}

func TestTranslate(t *testing.T) {
	g := Graph{Nodes: []Node{node("host-a", KindHost, "a", 50)}, Edges: []Edge{}}
	moved := Translate(g, 10, 100)

	if moved.Nodes[0].Position.Y != 150 || moved.Nodes[0].Position.X != 10 {
		t.Errorf("Translate moved node to %+v, want {10 150}", moved.Nodes[0].Position)
	}
	if g.Nodes[0].Position.Y != 50 {
		t.Error("Translate must not mutate its input")
	}
}

func TestContainsEdge(t *testing.T) {
	e := ContainsEdge("dc-east", "cluster-prod", "east", "prod")
	if e.ID != "edge-dc-east-cluster-prod" {
		t.Errorf("edge id = %q", e.ID)
	}
	if e.Kind != EdgeContains {
		t.Errorf("edge kind = %q, want %q", e.Kind, EdgeContains)
	}
	if e.Data.AriaLabel != "east contains prod" {
		t.Errorf("ariaLabel = %q", e.Data.AriaLabel)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{node("vm-app01", KindVM, "app01", 0)},
		Edges: []Edge{ContainsEdge("host-a", "vm-app01", "a", "app01")},
	}

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(got.Nodes) != 1 || got.Nodes[0].ID != "vm-app01" {
		t.Errorf("round trip lost nodes: %+v", got.Nodes)
	}
	if len(got.Edges) != 1 || got.Edges[0].Source != "host-a" {
		t.Errorf("round trip lost edges: %+v", got.Edges)
	}
}

func TestReadEmptyObject(t *testing.T) {
	g, err := Read(bytes.NewReader([]byte(`{}`)))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if g.Nodes == nil || g.Edges == nil {
		t.Error("Read must allocate empty slices for absent fields")
	}
}

func TestMaxY(t *testing.T) {
	g := Graph{Nodes: []Node{node("a", KindHost, "a", 50), node("b", KindHost, "b", 350)}}
	if got := g.MaxY(0); got != 350 {
		t.Errorf("MaxY = %v, want 350", got)
	}
	empty := Empty()
	if got := empty.MaxY(40); got != 40 {
		t.Errorf("MaxY on empty graph = %v, want the start value", got)
	}
}
