package entity

import "github.com/paulmach/orb"

// Coordinate is a geographic point with explicit presence. The zero value is
// "unresolved", which is distinct from a resolved point at (0, 0).
type Coordinate struct {
	Point orb.Point // lon, lat
	Valid bool
}

// NewCoordinate builds a resolved coordinate from longitude and latitude.
func NewCoordinate(lon, lat float64) Coordinate {
	return Coordinate{Point: orb.Point{lon, lat}, Valid: true}
}

// Lon returns the longitude component.
func (c Coordinate) Lon() float64 {
	return c.Point.Lon()
}

// Lat returns the latitude component.
func (c Coordinate) Lat() float64 {
	return c.Point.Lat()
}
