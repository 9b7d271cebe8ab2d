// Package grid provides the sparse occupancy index and footprint placement
// for the tile map.
package grid

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is a shorthand constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by the given offset.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a half-open rectangle of grid cells: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Dimensions in cells
}

// RectAt builds a rectangle from an origin point and a size.
func RectAt(origin, size Point) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.X, H: size.Y}
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Both rectangles are half-open, so rectangles that merely touch do not
// intersect.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X+r.W <= other.X ||
		other.X+other.W <= r.X ||
		r.Y+r.H <= other.Y ||
		other.Y+other.H <= r.Y)
}

// Cells returns every cell in the rectangle in row-major order.
func (r Rect) Cells() []Point {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	cells := make([]Point, 0, r.W*r.H)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}
