package bucket

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// GeoCellDegrees is the edge length of a geo cell, roughly 1.1 km.
const GeoCellDegrees = 0.01

// Cell is a coarse, privacy-preserving location bucket.
// It deliberately cannot be reversed to anything finer than the grid.
type Cell struct {
	ID       string
	LatCenti int
	LngCenti int
}

// GeoCell quantizes a coordinate pair to the nearest 0.01 degree.
// ok is false for NaN, infinite or out-of-range coordinates.
func GeoCell(lat, lng float64) (cell Cell, ok bool) {
	if !s2.LatLngFromDegrees(lat, lng).IsValid() {
		return Cell{}, false
	}

	latCenti := centi(lat)
	lngCenti := centi(lng)
	return Cell{
		ID:       fmt.Sprintf("%d_%d", latCenti, lngCenti),
		LatCenti: latCenti,
		LngCenti: lngCenti,
	}, true
}

// Center returns the grid point the cell was rounded to.
func (c Cell) Center() (lat, lng float64) {
	return float64(c.LatCenti) * GeoCellDegrees, float64(c.LngCenti) * GeoCellDegrees
}

// Label renders the cell center for display, e.g. "52.52, 13.40".
func (c Cell) Label() string {
	lat, lng := c.Center()
	return fmt.Sprintf("%.2f, %.2f", lat, lng)
}

func centi(v float64) int {
	n := int(math.Round(v * 100))
	if n == 0 {
		// avoid "-0" from tiny negative inputs
		return 0
	}
	return n
}
