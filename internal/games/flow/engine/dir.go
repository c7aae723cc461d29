// Package engine implements the Neural Flow tile-rotation puzzle: a square
// grid of pipe segments that must be turned until the source tile in the
// top-left corner connects to the sink tile in the bottom-right corner.
//
// This package is UI-agnostic and deterministic. Randomness is always
// injected by the caller.
package engine

// Dir is one of the four compass edges of a tile.
// The numeric order (Top, Right, Bottom, Left) is also the index order of Edges.
type Dir uint8

const (
	DirTop Dir = iota
	DirRight
	DirBottom
	DirLeft
)

// AllDirs lists directions in the order the flood fill checks them.
var AllDirs = [4]Dir{DirTop, DirRight, DirBottom, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirTop:
		return "Top"
	case DirRight:
		return "Right"
	case DirBottom:
		return "Bottom"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset of the neighboring cell in this direction.
// Top decreases Y, Bottom increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirTop:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirBottom:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the edge facing this one on the neighboring tile.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}
