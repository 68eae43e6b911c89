// Package layout assigns initial 2-D coordinates to topology nodes.
//
// Placement is a pure function of configuration: there is no layout cursor or
// other package state, accumulating offsets are threaded through parameters
// and return values. This keeps per-source layout reusable and safe to run
// concurrently before the sequential merge step.
//
// Two placement schemes exist. Flat stacks entities in a single column at a
// fixed vertical spacing, in input order. Grouped partitions entities into
// location groups, placing each group's members in a fixed-width grid beside
// a group anchor, and advancing the vertical offset past the whole group so
// groups never overlap. Coordinates are advisory initial placement only.
package layout

import "github.com/planvista/topograph/pkg/graph"

// DefaultColumns is the grid width used by grouped placement.
const DefaultColumns = 5

// Spacing defaults per source kind. Hardware-pool assets render as denser
// cards, so they pack tighter.
const (
	DefaultSpacing         = 200.0
	DefaultHardwareSpacing = 150.0
)

// Column returns the position of the index-th entity in a flat vertical
// column starting at start.
func Column(start graph.Position, spacing float64, index int) graph.Position {
	return graph.Position{X: start.X, Y: start.Y + float64(index)*spacing}
}

// Cell returns the position of the index-th entity in a grid of the given
// column count anchored at origin. Entities fill rows left to right, wrapping
// after columns entries.
func Cell(origin graph.Position, spacing float64, columns, index int) graph.Position {
	if columns < 1 {
		columns = 1
	}
	col := index % columns
	row := index / columns
	return graph.Position{
		X: origin.X + float64(col)*spacing,
		Y: origin.Y + float64(row)*spacing,
	}
}

// Rows returns the number of grid rows needed for count entities at the
// given column width.
func Rows(count, columns int) int {
	if columns < 1 {
		columns = 1
	}
	return (count + columns - 1) / columns
}

// GroupAdvance returns the vertical offset at which the next group may start,
// given a group of count entities laid out at groupY. The extra spacing row
// keeps consecutive groups visually separated, so the next group's offset is
// strictly greater than the current group's lowest row.
func GroupAdvance(groupY float64, count, columns int, spacing float64) float64 {
	rows := Rows(count, columns)
	if rows < 1 {
		rows = 1
	}
	return groupY + float64(rows)*spacing + spacing
}
