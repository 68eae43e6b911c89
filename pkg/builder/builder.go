// Package builder assembles typed topology graphs from inventory records.
//
// This is the core transformation of the planning backend: heterogeneous
// inventory datasets (virtualization exports, hardware-pool catalogs) go in,
// a node/edge graph with initial positions comes out, ready for a rendering
// surface. The builder is pure and synchronous: it holds no state across
// calls, performs no I/O, and never mutates its input records.
//
// # Assembly
//
// Each dataset is processed top-down through its containment hierarchy
// (datacenter, cluster, host, virtual machine for vSphere exports; location,
// server for hardware pools). Levels are processed in that fixed order so
// that a child can look up its parent's id in the per-level registry built by
// the earlier pass. A parent reference that does not resolve produces an
// orphan node with no containment edge, never a fabricated parent and never
// an error.
//
// # Identity and collisions
//
// Node ids derive from the naming package and are stable across uploads.
// When two records collapse onto one id, the first occurrence wins — within
// a dataset, and across datasets during merging — and the suppressed
// occurrence is reported in Result.Collisions so callers can surface the
// ambiguity instead of losing it silently.
package builder

import (
	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/layout"
	"github.com/planvista/topograph/pkg/naming"
)

// Options configures one transformation call. The zero value is not useful;
// start from DefaultOptions and override fields.
type Options struct {
	// IncludeDatacenters and IncludeClusters toggle whether those hierarchy
	// levels produce nodes and edges at all. Disabling a level leaves the
	// level below it orphaned, which is intentional.
	IncludeDatacenters bool
	IncludeClusters    bool

	// NormalizeNames strips known domain suffixes from display labels.
	// Identity is never affected; ids always derive from the raw name.
	NormalizeNames bool

	// GroupByLocation selects grouped grid placement for hardware-pool
	// sources. Flat column placement is used when false. Ignored by the
	// vSphere transformer, which always lays out flat.
	GroupByLocation bool

	// IncludeStatuses is an allow-list filter on hardware-pool availability
	// statuses, matched case-insensitively before any node is created.
	// Empty means all statuses pass.
	IncludeStatuses []string

	// NodeSpacing is the layout spacing in surface units. Zero or negative
	// selects the per-source default (200 for vSphere, 150 for hardware).
	NodeSpacing float64

	// Columns is the grid width for grouped placement. Zero or negative
	// selects layout.DefaultColumns.
	Columns int

	// Start is the top-left anchor of this source's layout region.
	Start graph.Position
}

// DefaultOptions returns the documented defaults: all levels included, name
// normalization on, grouped placement for hardware pools, no status filter,
// per-source spacing, origin start.
func DefaultOptions() Options {
	return Options{
		IncludeDatacenters: true,
		IncludeClusters:    true,
		NormalizeNames:     true,
		GroupByLocation:    true,
	}
}

// spacing resolves the effective node spacing against a per-source default.
func (o Options) spacing(fallback float64) float64 {
	if o.NodeSpacing > 0 {
		return o.NodeSpacing
	}
	return fallback
}

// columns resolves the effective grid width.
func (o Options) columns() int {
	if o.Columns > 0 {
		return o.Columns
	}
	return layout.DefaultColumns
}

// display resolves an entity's display label per the NormalizeNames option.
func (o Options) display(name string) string {
	if o.NormalizeNames {
		return naming.NormalizeDisplayName(name)
	}
	return name
}

// Result is the output of one transformation: the graph plus every
// identifier collision observed while building it.
type Result struct {
	Graph      graph.Graph       `json:"graph"`
	Collisions []graph.Collision `json:"collisions,omitempty"`
}

// registry tracks ids created at one hierarchy level of one dataset, and the
// display labels needed when a lower level links back to them.
type registry struct {
	seen   map[string]bool
	labels map[string]string
}

func newRegistry() *registry {
	return &registry{seen: make(map[string]bool), labels: make(map[string]string)}
}

// add registers an id. It reports false when the id is already present, in
// which case the caller records a collision and skips the duplicate.
func (r *registry) add(id, label string) bool {
	if r.seen[id] {
		return false
	}
	r.seen[id] = true
	r.labels[id] = label
	return true
}

func (r *registry) has(id string) bool { return r.seen[id] }

func (r *registry) label(id string) string { return r.labels[id] }
