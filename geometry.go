package termatlas

import (
	"errors"
	"math"
)

// Geometry is the dimensions of an atlas grid, in cells.
type Geometry struct {
	Nx, Ny int
}

// Slots returns the total number of cells in the grid.
func (g Geometry) Slots() int { return g.Nx * g.Ny }

// PlanGeometry computes a grid of reservedSlots cells of cellWidth by
// cellHeight pixels whose overall pixel dimensions are as close to a square
// as the cell aspect ratio allows.
//
// The grid is seeded from the square root of the total pixel area and grown
// one row or column at a time, always extending the shorter pixel side, until
// it holds reservedSlots cells. Ties extend Ny. Cell coordinates must fit in
// a single byte, so a grid needing more than 255 cells in either direction
// fails with *OverflowError.
func PlanGeometry(reservedSlots, cellWidth, cellHeight int) (Geometry, error) {
	if reservedSlots < 1 || cellWidth < 1 || cellHeight < 1 {
		return Geometry{}, errors.New("termatlas: geometry inputs must be positive")
	}

	totalPixels := float64(reservedSlots) * float64(cellWidth) * float64(cellHeight)
	side := math.Sqrt(totalPixels)
	nx := int(side / float64(cellWidth))
	ny := int(side / float64(cellHeight))
	for nx*ny < reservedSlots {
		if cellWidth*nx < cellHeight*ny {
			nx++
		} else {
			ny++
		}
	}

	if nx > 255 || ny > 255 {
		return Geometry{}, &OverflowError{Nx: nx, Ny: ny}
	}
	return Geometry{Nx: nx, Ny: ny}, nil
}
