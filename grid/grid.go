/*
Package grid maps between pixel coordinates in the palette editor display and
linear palette indices.

The display is a square of 16 by 16 cells, one per color, with each row of
cells showing one sub-palette.
*/
package grid

import "image"

const (
	// CellSize is the default width and height of a cell in pixels
	CellSize = 16
	// Columns is the default number of cells per row
	Columns = 16
)

// Grid describes the cell geometry of a palette display. A Grid with a
// non-positive CellSize or Columns behaves as Default.
type Grid struct {
	CellSize int
	Columns  int
}

func (g Grid) valid() Grid {
	if g.CellSize <= 0 || g.Columns <= 0 {
		return Default
	}
	return g
}

// Default is the 16 by 16 grid of 16 pixel cells.
var Default = Grid{
	CellSize: CellSize,
	Columns:  Columns,
}

// Resolve returns the cell containing the pixel at x, y. No clamping is
// performed; the caller guarantees the point lies within the grid.
func (g Grid) Resolve(x, y int) (col, row int) {
	g = g.valid()
	return x / g.CellSize, y / g.CellSize
}

// Index returns the linear index of the cell at col, row.
func (g Grid) Index(col, row int) int {
	g = g.valid()
	return row*g.Columns + col
}

// Cell is the inverse of Index.
func (g Grid) Cell(index int) (col, row int) {
	g = g.valid()
	return index % g.Columns, index / g.Columns
}

// Bounds returns the pixel rectangle occupied by the cell at index.
func (g Grid) Bounds(index int) image.Rectangle {
	g = g.valid()
	col, row := g.Cell(index)
	min := image.Pt(col*g.CellSize, row*g.CellSize)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(g.CellSize, g.CellSize))}
}

// Size returns the pixel extent of a grid with the given number of rows.
func (g Grid) Size(rows int) image.Point {
	g = g.valid()
	return image.Pt(g.Columns*g.CellSize, rows*g.CellSize)
}

// Resolve resolves x, y using the Default grid.
func Resolve(x, y int) (col, row int) {
	return Default.Resolve(x, y)
}

// Index returns the linear index of col, row using the Default grid.
func Index(col, row int) int {
	return Default.Index(col, row)
}

// PointToIndex resolves x, y directly to a linear index using the Default grid.
func PointToIndex(x, y int) int {
	return Default.Index(Default.Resolve(x, y))
}
