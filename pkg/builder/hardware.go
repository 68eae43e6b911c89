package builder

import (
	"strings"

	"github.com/planvista/topograph/pkg/classify"
	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/inventory"
	"github.com/planvista/topograph/pkg/layout"
	"github.com/planvista/topograph/pkg/naming"
)

// Identifier prefixes for the hardware-pool source.
const (
	prefixLocation = "location"
	prefixServer   = "server"
)

// UnknownLocation is the bucket for servers without a location field.
const UnknownLocation = "Unknown Location"

// BuildHardware transforms one hardware-pool catalog into a topology graph.
//
// The hierarchy has two levels: location contains server. With
// Options.GroupByLocation set, each location gets an anchor node and its
// servers are placed in a grid beside it, with the vertical offset advancing
// past the whole group before the next one starts. Otherwise servers stack
// in one flat column with no location nodes.
//
// Options.IncludeStatuses filters servers by availability status before any
// node is created. A nil or empty catalog yields an empty graph.
func BuildHardware(pool *inventory.HardwarePool, opts Options) Result {
	g := graph.Empty()
	var collisions []graph.Collision

	if pool == nil {
		return Result{Graph: g}
	}

	servers := filterStatuses(pool.Servers, opts.IncludeStatuses)
	spacing := opts.spacing(layout.DefaultHardwareSpacing)

	if !opts.GroupByLocation {
		reg := newRegistry()
		row := 0
		for _, s := range servers {
			n, ok := serverNode(s, layout.Column(opts.Start, spacing, row), reg)
			if !ok {
				collisions = append(collisions, graph.Collision{ID: n.ID, Kind: graph.KindHost, Dropped: s.AssetTag})
				continue
			}
			g.Nodes = append(g.Nodes, n)
			row++
		}
		return Result{Graph: g, Collisions: collisions}
	}

	columns := opts.columns()
	locations := newRegistry()
	reg := newRegistry()

	groupY := opts.Start.Y
	for _, group := range groupByLocation(servers) {
		locID := naming.Prefixed(prefixLocation, group.name)
		if locations.add(locID, group.name) {
			g.Nodes = append(g.Nodes, graph.Node{
				ID:       locID,
				Kind:     graph.KindDatacenter,
				Position: graph.Position{X: opts.Start.X, Y: groupY},
				Data: map[string]any{
					"label":       group.name,
					"serverCount": len(group.servers),
				},
			})
		}

		// Servers fill a grid one spacing to the right of the location anchor.
		origin := graph.Position{X: opts.Start.X + spacing, Y: groupY}
		placed := 0
		for _, s := range group.servers {
			n, ok := serverNode(s, layout.Cell(origin, spacing, columns, placed), reg)
			if !ok {
				collisions = append(collisions, graph.Collision{ID: n.ID, Kind: graph.KindHost, Dropped: s.AssetTag})
				continue
			}
			g.Nodes = append(g.Nodes, n)
			g.Edges = append(g.Edges, graph.ContainsEdge(locID, n.ID, locations.label(locID), s.AssetTag))
			placed++
		}

		groupY = layout.GroupAdvance(groupY, placed, columns, spacing)
	}

	return Result{Graph: g, Collisions: collisions}
}

// serverNode builds the node for one asset. It reports false when the asset
// tag collides with an id already registered in this dataset; the returned
// node then only carries the colliding id.
func serverNode(s inventory.Server, pos graph.Position, reg *registry) (graph.Node, bool) {
	id := naming.Prefixed(prefixServer, s.AssetTag)
	if !reg.add(id, s.AssetTag) {
		return graph.Node{ID: id}, false
	}
	location := s.Location
	if location == "" {
		location = UnknownLocation
	}
	return graph.Node{
		ID:       id,
		Kind:     graph.KindHost,
		Position: pos,
		Data: map[string]any{
			"label":        s.AssetTag,
			"vendor":       string(classify.VendorOf(s.Vendor, s.Model)),
			"model":        s.Model,
			"role":         classify.AvailabilityRoleOf(s.Status),
			"status":       s.Status,
			"cpuCores":     s.CPUCores,
			"memoryGB":     s.MemoryGB,
			"rackPosition": s.RackPosition,
			"location":     location,
		},
	}, true
}

// filterStatuses applies the availability allow-list. An empty list passes
// every server through untouched.
func filterStatuses(servers []inventory.Server, statuses []string) []inventory.Server {
	if len(statuses) == 0 {
		return servers
	}
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[strings.ToLower(strings.TrimSpace(s))] = true
	}
	var out []inventory.Server
	for _, s := range servers {
		if allowed[strings.ToLower(strings.TrimSpace(s.Status))] {
			out = append(out, s)
		}
	}
	return out
}

// locationGroup is one location bucket in first-appearance order.
type locationGroup struct {
	name    string
	servers []inventory.Server
}

// groupByLocation partitions servers by their location field, preserving the
// order in which locations first appear. Locations whose names sanitize to
// the same identifier share a bucket, since they denote the same entity.
func groupByLocation(servers []inventory.Server) []locationGroup {
	index := make(map[string]int)
	var groups []locationGroup

	for _, s := range servers {
		name := s.Location
		if name == "" {
			name = UnknownLocation
		}
		key := naming.SanitizeID(name)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, locationGroup{name: name})
		}
		groups[i].servers = append(groups[i].servers, s)
	}

	return groups
}
