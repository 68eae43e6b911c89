package builder

import (
	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/inventory"
	"github.com/planvista/topograph/pkg/layout"
)

// Source is one inventory upload awaiting transformation. Exactly one of
// VSphere or Hardware is set, matching Kind.
type Source struct {
	Kind     inventory.SourceKind
	VSphere  *inventory.VSphere
	Hardware *inventory.HardwarePool
}

// Build dispatches one source to its transformer.
func Build(src Source, opts Options) Result {
	if src.Kind == inventory.SourceHardware {
		return BuildHardware(src.Hardware, opts)
	}
	return BuildVSphere(src.VSphere, opts)
}

// BuildSources transforms an ordered list of sources and merges them into
// one graph.
//
// Each source is laid out in its own vertical region: the next source starts
// one spacing below the lowest node of the previous one, so regions stack
// instead of overlapping. After layout the graphs are merged with
// first-occurrence-wins identity (see graph.Merge), making the result
// order-sensitive for colliding ids. Collisions from per-source assembly and
// from the merge are returned together.
//
// Per-source assembly is pure, so callers needing throughput may build
// sources concurrently themselves and hand the graphs to graph.Merge; this
// helper keeps the common sequential path simple.
func BuildSources(sources []Source, opts Options) Result {
	graphs := make([]graph.Graph, 0, len(sources))
	var collisions []graph.Collision

	y := opts.Start.Y
	for _, src := range sources {
		o := opts
		o.Start.Y = y

		res := Build(src, o)
		graphs = append(graphs, res.Graph)
		collisions = append(collisions, res.Collisions...)

		if len(res.Graph.Nodes) > 0 {
			fallback := layout.DefaultSpacing
			if src.Kind == inventory.SourceHardware {
				fallback = layout.DefaultHardwareSpacing
			}
			y = res.Graph.MaxY(y) + o.spacing(fallback)
		}
	}

	merged, dropped := graph.Merge(graphs...)
	return Result{Graph: merged, Collisions: append(collisions, dropped...)}
}
