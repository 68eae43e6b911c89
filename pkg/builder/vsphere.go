package builder

import (
	"github.com/planvista/topograph/pkg/classify"
	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/inventory"
	"github.com/planvista/topograph/pkg/layout"
	"github.com/planvista/topograph/pkg/naming"
)

// Identifier prefixes per hierarchy level. Node identity is the prefix plus
// the sanitized natural key, so prefixes must never change once graphs are
// persisted.
const (
	prefixDatacenter = "dc"
	prefixCluster    = "cluster"
	prefixHost       = "host"
	prefixVM         = "vm"
)

// BuildVSphere transforms one virtualization export into a topology graph.
//
// Levels are processed top-down (datacenters, clusters, hosts, virtual
// machines) so each level can resolve its parent against the registries
// filled by the levels above. Nodes are placed in a flat column at the
// configured spacing, in creation order. A nil or empty inventory yields an
// empty graph.
func BuildVSphere(inv *inventory.VSphere, opts Options) Result {
	g := graph.Empty()
	var collisions []graph.Collision

	if inv == nil {
		return Result{Graph: g}
	}

	spacing := opts.spacing(layout.DefaultSpacing)
	row := 0

	place := func() graph.Position {
		pos := layout.Column(opts.Start, spacing, row)
		row++
		return pos
	}

	datacenters := newRegistry()
	clusters := newRegistry()
	hosts := newRegistry()
	vms := newRegistry()

	if opts.IncludeDatacenters {
		for _, dc := range inv.Datacenters {
			id := naming.Prefixed(prefixDatacenter, dc.Name)
			label := opts.display(dc.Name)
			if !datacenters.add(id, label) {
				collisions = append(collisions, graph.Collision{ID: id, Kind: graph.KindDatacenter, Dropped: dc.Name})
				continue
			}
			g.Nodes = append(g.Nodes, graph.Node{
				ID:       id,
				Kind:     graph.KindDatacenter,
				Position: place(),
				Data: map[string]any{
					"label":        label,
					"clusterCount": dc.ClusterCount,
					"hostCount":    dc.HostCount,
					"vmCount":      dc.VMCount,
				},
			})
		}
	}

	if opts.IncludeClusters {
		for _, c := range inv.Clusters {
			id := naming.Prefixed(prefixCluster, c.Name)
			label := opts.display(c.Name)
			if !clusters.add(id, label) {
				collisions = append(collisions, graph.Collision{ID: id, Kind: graph.KindCluster, Dropped: c.Name})
				continue
			}
			g.Nodes = append(g.Nodes, graph.Node{
				ID:       id,
				Kind:     graph.KindCluster,
				Position: place(),
				Data: map[string]any{
					"label":      label,
					"hostCount":  c.HostCount,
					"vmCount":    c.VMCount,
					"drsEnabled": c.DRSEnabled,
					"haEnabled":  c.HAEnabled,
				},
			})
			if c.DatacenterName != "" {
				parent := naming.Prefixed(prefixDatacenter, c.DatacenterName)
				if datacenters.has(parent) {
					g.Edges = append(g.Edges, graph.ContainsEdge(parent, id, datacenters.label(parent), label))
				}
			}
		}
	}

	for _, h := range inv.Hosts {
		id := naming.Prefixed(prefixHost, h.Name)
		label := opts.display(h.Name)
		if !hosts.add(id, label) {
			collisions = append(collisions, graph.Collision{ID: id, Kind: graph.KindHost, Dropped: h.Name})
			continue
		}
		g.Nodes = append(g.Nodes, graph.Node{
			ID:       id,
			Kind:     graph.KindHost,
			Position: place(),
			Data: map[string]any{
				"label":      label,
				"vendor":     string(classify.VendorOf(h.Vendor, h.Model)),
				"model":      h.Model,
				"cpuModel":   h.CPUModel,
				"cpuCores":   h.CPUCores,
				"cpuThreads": h.CPUThreads,
				"memoryMB":   h.MemoryMB,
			},
		})
		if h.ClusterName != "" {
			parent := naming.Prefixed(prefixCluster, h.ClusterName)
			if clusters.has(parent) {
				g.Edges = append(g.Edges, graph.ContainsEdge(parent, id, clusters.label(parent), label))
			}
		}
	}

	for _, vm := range inv.VirtualMachines {
		id := naming.Prefixed(prefixVM, vm.Name)
		label := opts.display(vm.Name)
		if !vms.add(id, label) {
			collisions = append(collisions, graph.Collision{ID: id, Kind: graph.KindVM, Dropped: vm.Name})
			continue
		}
		g.Nodes = append(g.Nodes, graph.Node{
			ID:       id,
			Kind:     graph.KindVM,
			Position: place(),
			Data: map[string]any{
				"label":         label,
				"powerState":    string(classify.PowerStateOf(vm.PowerState)),
				"vcpus":         vm.VCPUs,
				"memoryMB":      vm.MemoryMB,
				"provisionedGB": vm.ProvisionedGB,
				"usedGB":        vm.UsedGB,
				"guestOS":       vm.GuestOS,
				"ipAddress":     vm.IPAddress,
			},
		})
		if vm.HostName != "" {
			parent := naming.Prefixed(prefixHost, vm.HostName)
			if hosts.has(parent) {
				g.Edges = append(g.Edges, graph.ContainsEdge(parent, id, hosts.label(parent), label))
			}
		}
	}

	return Result{Graph: g, Collisions: collisions}
}
