package engine

import (
	"fmt"
	"strings"
)

// Shape identifies a pipe segment kind. Shapes are a closed set.
type Shape uint8

const (
	ShapeStraight Shape = iota
	ShapeCorner
	ShapeTee
	ShapeCross
)

// Edges holds the open state of each edge, indexed by Dir.
type Edges [4]bool

// canonical masks at rotation 0; index is the Shape value.
var canonical = [...]Edges{
	ShapeStraight: {DirRight: true, DirLeft: true},
	ShapeCorner:   {DirRight: true, DirBottom: true},
	ShapeTee:      {DirRight: true, DirBottom: true, DirLeft: true},
	ShapeCross:    {true, true, true, true},
}

// Valid reports whether s is one of the four known shapes.
func (s Shape) Valid() bool {
	return int(s) < len(canonical)
}

func (s Shape) String() string {
	switch s {
	case ShapeStraight:
		return "straight"
	case ShapeCorner:
		return "corner"
	case ShapeTee:
		return "tee"
	case ShapeCross:
		return "cross"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Code returns the one-letter code used by level files.
func (s Shape) Code() string {
	switch s {
	case ShapeStraight:
		return "S"
	case ShapeCorner:
		return "C"
	case ShapeTee:
		return "T"
	case ShapeCross:
		return "X"
	default:
		return "?"
	}
}

// ParseShape accepts a full shape name or its one-letter code, in any case.
func ParseShape(s string) (Shape, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "straight":
		return ShapeStraight, true
	case "c", "corner":
		return ShapeCorner, true
	case "t", "tee":
		return ShapeTee, true
	case "x", "cross":
		return ShapeCross, true
	default:
		return 0, false
	}
}

// OpenEdges returns the canonical open-edge mask of a shape at rotation 0.
// Passing an unknown shape is a programming error and panics.
func OpenEdges(s Shape) Edges {
	if !s.Valid() {
		panic(fmt.Sprintf("engine: unknown shape %d", uint8(s)))
	}
	return canonical[s]
}

// RotateEdges rotates a mask clockwise by n quarter turns:
// the edge open at Top moves to Right after one step.
func RotateEdges(e Edges, n int) Edges {
	n = ((n % 4) + 4) % 4
	var out Edges
	for d := 0; d < 4; d++ {
		out[(d+n)%4] = e[d]
	}
	return out
}

// Count returns the number of open edges.
func (e Edges) Count() int {
	n := 0
	for _, open := range e {
		if open {
			n++
		}
	}
	return n
}

// Mask packs the edges into 4 bits: Top=1, Right=2, Bottom=4, Left=8.
func (e Edges) Mask() uint8 {
	var m uint8
	for d, open := range e {
		if open {
			m |= 1 << d
		}
	}
	return m
}
