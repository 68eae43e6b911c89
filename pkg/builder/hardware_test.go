package builder

import (
	"fmt"
	"testing"

	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/inventory"
)

func pool(servers ...inventory.Server) *inventory.HardwarePool {
	return &inventory.HardwarePool{Servers: servers}
}

func rack(tag, location, status string) inventory.Server {
	return inventory.Server{AssetTag: tag, Location: location, Status: status}
}

func TestBuildHardwareGrouped(t *testing.T) {
	res := BuildHardware(pool(
		rack("HW-001", "DC-West", "available"),
		rack("HW-002", "DC-West", "allocated"),
		rack("HW-003", "DC-East", "available"),
	), DefaultOptions())
	g := res.Graph

	// Two location anchors plus three servers.
	if len(g.Nodes) != 5 {
		t.Fatalf("node count = %d, want 5", len(g.Nodes))
	}
	if len(g.Edges) != 3 {
		t.Fatalf("edge count = %d, want 3", len(g.Edges))
	}

	west := findNode(t, g, "location-dc-west")
	if west.Kind != graph.KindDatacenter {
		t.Errorf("location kind = %q", west.Kind)
	}
	if west.Data["serverCount"] != 2 {
		t.Errorf("serverCount = %v, want 2", west.Data["serverCount"])
	}

	server := findNode(t, g, "server-hw-002")
	if server.Kind != graph.KindHost {
		t.Errorf("server kind = %q", server.Kind)
	}
	if server.Data["role"] != "In Use" {
		t.Errorf("role = %v, want the allocated display role", server.Data["role"])
	}
	if in := incomingEdges(g, server.ID); len(in) != 1 || in[0].Source != west.ID {
		t.Errorf("server containment = %+v, want edge from %s", in, west.ID)
	}
}

// TestBuildHardwareGroupsDoNotOverlap pins the grouped-layout invariant from
// the layout engine at the builder level: with 6 servers in the first
// location and 3 in the second at grid width 5, every node of the second
// group sits strictly below the first group's lowest row.
func TestBuildHardwareGroupsDoNotOverlap(t *testing.T) {
	var servers []inventory.Server
	for i := 0; i < 6; i++ {
		servers = append(servers, rack(fmt.Sprintf("A-%d", i), "Alpha", "available"))
	}
	for i := 0; i < 3; i++ {
		servers = append(servers, rack(fmt.Sprintf("B-%d", i), "Beta", "available"))
	}

	res := BuildHardware(pool(servers...), DefaultOptions())
	g := res.Graph

	alphaMax := 0.0
	for i := 0; i < 6; i++ {
		n := findNode(t, g, fmt.Sprintf("server-a-%d", i))
		if n.Position.Y > alphaMax {
			alphaMax = n.Position.Y
		}
	}

	beta := findNode(t, g, "location-beta")
	if beta.Position.Y <= alphaMax {
		t.Errorf("second group anchor at %v, want strictly below first group's extent %v", beta.Position.Y, alphaMax)
	}
	for i := 0; i < 3; i++ {
		n := findNode(t, g, fmt.Sprintf("server-b-%d", i))
		if n.Position.Y <= alphaMax {
			t.Errorf("server %s at %v overlaps first group (extent %v)", n.ID, n.Position.Y, alphaMax)
		}
	}
}

func TestBuildHardwareGridWraps(t *testing.T) {
	var servers []inventory.Server
	for i := 0; i < 7; i++ {
		servers = append(servers, rack(fmt.Sprintf("S-%d", i), "Solo", "available"))
	}

	res := BuildHardware(pool(servers...), DefaultOptions())

	first := findNode(t, res.Graph, "server-s-0")
	sixth := findNode(t, res.Graph, "server-s-5")
	if sixth.Position.Y <= first.Position.Y {
		t.Errorf("sixth server should wrap to a second row: first %v, sixth %v", first.Position, sixth.Position)
	}
	if sixth.Position.X != first.Position.X {
		t.Errorf("wrapped row should restart at the first column: first %v, sixth %v", first.Position, sixth.Position)
	}
}

func TestBuildHardwareUnknownLocationBucket(t *testing.T) {
	res := BuildHardware(pool(rack("HW-9", "", "available")), DefaultOptions())

	loc := findNode(t, res.Graph, "location-unknown-location")
	if loc.Data["label"] != UnknownLocation {
		t.Errorf("bucket label = %v, want %q", loc.Data["label"], UnknownLocation)
	}
	server := findNode(t, res.Graph, "server-hw-9")
	if server.Data["location"] != UnknownLocation {
		t.Errorf("server location = %v, want %q", server.Data["location"], UnknownLocation)
	}
}

func TestBuildHardwareStatusFilter(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeStatuses = []string{"available"}

	res := BuildHardware(pool(
		rack("HW-1", "DC", "available"),
		rack("HW-2", "DC", "retired"),
		rack("HW-3", "DC", "Available"),
	), opts)

	if res.Graph.HasNode("server-hw-2") {
		t.Error("retired server passed an available-only filter")
	}
	if !res.Graph.HasNode("server-hw-1") || !res.Graph.HasNode("server-hw-3") {
		t.Error("status filter must match case-insensitively")
	}
}

func TestBuildHardwareFlat(t *testing.T) {
	opts := DefaultOptions()
	opts.GroupByLocation = false
	opts.NodeSpacing = 150

	res := BuildHardware(pool(
		rack("HW-1", "DC-West", "available"),
		rack("HW-2", "DC-East", "available"),
	), opts)
	g := res.Graph

	if len(g.Nodes) != 2 {
		t.Fatalf("flat mode node count = %d, want 2 (no location anchors)", len(g.Nodes))
	}
	if len(g.Edges) != 0 {
		t.Errorf("flat mode should produce no edges, got %+v", g.Edges)
	}
	if g.Nodes[1].Position.Y != g.Nodes[0].Position.Y+150 {
		t.Errorf("flat positions = %+v, %+v; want fixed 150 spacing", g.Nodes[0].Position, g.Nodes[1].Position)
	}
}

func TestBuildHardwareCollision(t *testing.T) {
	res := BuildHardware(pool(
		rack("HW-01", "DC", "available"),
		rack("hw.01", "DC", "retired"),
	), DefaultOptions())

	if len(res.Graph.Nodes) != 2 { // location anchor + one server
		t.Fatalf("node count = %d, want 2", len(res.Graph.Nodes))
	}
	server := findNode(t, res.Graph, "server-hw-01")
	if server.Data["status"] != "available" {
		t.Errorf("surviving server status = %v, want the first occurrence", server.Data["status"])
	}
	if len(res.Collisions) != 1 || res.Collisions[0].Dropped != "hw.01" {
		t.Errorf("collisions = %+v", res.Collisions)
	}
}

func TestBuildHardwareEmpty(t *testing.T) {
	for _, p := range []*inventory.HardwarePool{nil, pool()} {
		res := BuildHardware(p, DefaultOptions())
		if len(res.Graph.Nodes) != 0 || len(res.Graph.Edges) != 0 {
			t.Errorf("empty pool produced %+v", res.Graph)
		}
	}
}

func TestBuildHardwareLocationSpellingsShareBucket(t *testing.T) {
	// "DC West" and "dc-west" sanitize to the same location id and therefore
	// denote the same place.
	res := BuildHardware(pool(
		rack("HW-1", "DC West", "available"),
		rack("HW-2", "dc-west", "available"),
	), DefaultOptions())

	locations := 0
	for _, n := range res.Graph.Nodes {
		if n.Kind == graph.KindDatacenter {
			locations++
		}
	}
	if locations != 1 {
		t.Errorf("location anchor count = %d, want 1 shared bucket", locations)
	}
	if len(res.Graph.Edges) != 2 {
		t.Errorf("edge count = %d, want both servers contained", len(res.Graph.Edges))
	}
}
