/*
Package grid maps a sectioned flat list onto a fixed-column visual grid and
answers keyboard navigation queries over it.

Each section starts at column 0 on a fresh row, even when the previous
section's last row is not full. Within a section, items fill rows left to
right. Left and right movement is plain flat-index movement clamped to the
list bounds (flat order is the wrap). Up and down movement is positional:
the same column one row away, scanning leftward when the target row is
shorter, and no vertical wrap-around ever.
*/
package grid

import "fmt"

// NoSelection is the sentinel index for an empty composition. Navigation
// on it is a no-op.
const NoSelection = -1

// Direction is a navigation direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

type cell struct {
	row int
	col int
}

// Navigator answers movement queries for one composition. It is built once
// per composition from the section sizes and is immutable afterwards; all
// methods are pure reads.
type Navigator struct {
	columns int
	cells   []cell  // flat index -> visual position
	rows    [][]int // visual row -> occupied flat indices by column
}

// NewNavigator builds a navigator for sections of the given sizes laid out
// over a fixed column count. A non-positive column count is a host
// programming error and panics.
func NewNavigator(sectionSizes []int, columns int) *Navigator {
	if columns <= 0 {
		panic(fmt.Sprintf("grid: column count must be positive, got %d", columns))
	}

	n := &Navigator{columns: columns}

	row := 0
	started := false
	for _, size := range sectionSizes {
		if size <= 0 {
			continue
		}
		if started {
			// A new section always starts on a fresh row.
			row++
		}
		for i := 0; i < size; i++ {
			col := i % columns
			if i > 0 && col == 0 {
				row++
			}
			for len(n.rows) <= row {
				n.rows = append(n.rows, nil)
			}
			n.rows[row] = append(n.rows[row], len(n.cells))
			n.cells = append(n.cells, cell{row: row, col: col})
		}
		started = true
	}

	return n
}

// Len returns the number of cells (the flat list length).
func (n *Navigator) Len() int {
	return len(n.cells)
}

// Rows returns the number of visual rows.
func (n *Navigator) Rows() int {
	return len(n.rows)
}

// Position returns the visual row and column for a flat index.
func (n *Navigator) Position(index int) (row, col int, ok bool) {
	if index < 0 || index >= len(n.cells) {
		return 0, 0, false
	}
	c := n.cells[index]
	return c.row, c.col, true
}

// InitialSelection returns the starting selection for a fresh composition:
// the first flat index, or NoSelection for an empty list.
func (n *Navigator) InitialSelection() int {
	if len(n.cells) == 0 {
		return NoSelection
	}
	return 0
}

// Move computes the new selected index for a movement from current. It is
// total over valid inputs and never returns an out-of-range index. An
// out-of-range current index is a host programming error and panics.
func (n *Navigator) Move(dir Direction, current int) int {
	if len(n.cells) == 0 || current == NoSelection {
		return NoSelection
	}
	if current < 0 || current >= len(n.cells) {
		panic(fmt.Sprintf("grid: selected index %d out of range [0, %d)", current, len(n.cells)))
	}

	switch dir {
	case Left:
		if current > 0 {
			return current - 1
		}
		return current
	case Right:
		if current < len(n.cells)-1 {
			return current + 1
		}
		return current
	case Up:
		return n.moveVertical(current, -1)
	case Down:
		return n.moveVertical(current, +1)
	}
	return current
}

// moveVertical targets the same column one row away, scanning leftward for
// the nearest occupied cell when the target row is shorter. Out-of-range
// target rows keep the current selection.
func (n *Navigator) moveVertical(current, delta int) int {
	pos := n.cells[current]
	target := pos.row + delta
	if target < 0 || target >= len(n.rows) {
		return current
	}

	// Occupied cells in a row are contiguous from column 0, so the
	// leftward scan lands on the row's last cell when the column is
	// unoccupied.
	row := n.rows[target]
	col := pos.col
	if col >= len(row) {
		col = len(row) - 1
	}
	return row[col]
}
