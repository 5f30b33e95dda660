package raycast

import (
	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-maze/model"
)

// Side is the family of grid line a ray struck.
type Side int

const (
	// Vertical means the ray crossed an x grid line (a wall face running north-south).
	Vertical Side = iota
	// Horizontal means the ray crossed a y grid line.
	Horizontal
)

func (s Side) String() string {
	if s == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Ray is the result of casting one column. Distance is measured along the
// camera's view axis, not along the ray, so walls do not bow outward toward the
// screen edges.
type Ray struct {
	Column   int
	Angle    float64
	Distance float64
	Hit      geom.Vector2
	Wall     model.Cell
	Side     Side
}

// Frame holds every ray cast for one tick. It is built once and only read
// afterwards; the accessors hand out copies so consumers cannot change it.
type Frame struct {
	columns int
	rays    []Ray
	index   []int
}

func newFrame(columns int) Frame {
	index := make([]int, columns)
	for i := range index {
		index[i] = -1
	}
	return Frame{columns: columns, rays: make([]Ray, 0, columns), index: index}
}

func (f *Frame) add(r Ray) {
	f.index[r.Column] = len(f.rays)
	f.rays = append(f.rays, r)
}

// Columns is the number of columns requested, including those that missed.
func (f Frame) Columns() int { return f.columns }

// Len is the number of rays that hit a wall.
func (f Frame) Len() int { return len(f.rays) }

// Column returns the ray cast for a screen column, false if that ray found no
// wall within the step limit.
func (f Frame) Column(col int) (Ray, bool) {
	if col < 0 || col >= len(f.index) || f.index[col] < 0 {
		return Ray{}, false
	}
	return f.rays[f.index[col]], true
}

func (f Frame) Each(fn func(Ray)) {
	for _, r := range f.rays {
		fn(r)
	}
}

// Rays returns a copy of the hit rays in column order.
func (f Frame) Rays() []Ray {
	out := make([]Ray, len(f.rays))
	copy(out, f.rays)
	return out
}
