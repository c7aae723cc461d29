package engine

import "fmt"

// LayoutCell is one authored cell of a level.
type LayoutCell struct {
	Shape    Shape
	Rotation int
}

// Layout is an authored board. Cells are row-major.
// Rotations of movable cells are the reference orientation and are replaced
// when a session scrambles the board; source and sink rotations are kept.
type Layout struct {
	ID       string
	Name     string
	Size     int
	Cells    []LayoutCell
	Metadata map[string]string
}

// Validate checks the structural rules a playable layout must satisfy.
func (l Layout) Validate() error {
	if l.Size < 2 {
		return ValidationError{Code: CodeBadSize, Message: fmt.Sprintf("size must be at least 2, got %d", l.Size)}
	}
	if len(l.Cells) != l.Size*l.Size {
		return ValidationError{
			Code:    CodeCellCount,
			Message: fmt.Sprintf("size %d needs %d cells, got %d", l.Size, l.Size*l.Size, len(l.Cells)),
		}
	}
	for i, c := range l.Cells {
		if !c.Shape.Valid() {
			return ValidationError{Code: CodeBadShape, Message: fmt.Sprintf("cell %d has unknown shape %d", i, uint8(c.Shape))}
		}
		if c.Rotation < 0 || c.Rotation > 3 {
			return ValidationError{Code: CodeBadRotation, Message: fmt.Sprintf("cell %d has rotation %d outside 0..3", i, c.Rotation)}
		}
	}

	source := l.Cells[0]
	edges := RotateEdges(OpenEdges(source.Shape), source.Rotation)
	if !edges[DirRight] && !edges[DirBottom] {
		return ValidationError{Code: CodeSourceSealed, Message: "source has no open edge facing the board"}
	}
	sink := l.Cells[len(l.Cells)-1]
	edges = RotateEdges(OpenEdges(sink.Shape), sink.Rotation)
	if !edges[DirLeft] && !edges[DirTop] {
		return ValidationError{Code: CodeSinkSealed, Message: "sink has no open edge facing the board"}
	}
	return nil
}

// Cell returns the authored cell at (x, y).
func (l Layout) Cell(x, y int) LayoutCell {
	return l.Cells[y*l.Size+x]
}

// Grid builds a board in the authored orientation.
func (l Layout) Grid() (*Grid, error) {
	return gridFromCells(l.Size, l.Cells)
}

// Title returns the display name, falling back to the id.
func (l Layout) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// DefaultLayout returns the 4×4 Neural Flow board.
func DefaultLayout() Layout {
	c := func(s Shape, r int) LayoutCell { return LayoutCell{Shape: s, Rotation: r} }
	return Layout{
		ID:   "lvl02",
		Name: "Neural Flow",
		Size: 4,
		Cells: []LayoutCell{
			c(ShapeCorner, 0), c(ShapeTee, 1), c(ShapeStraight, 0), c(ShapeCorner, 1),
			c(ShapeStraight, 1), c(ShapeCross, 0), c(ShapeCorner, 2), c(ShapeStraight, 1),
			c(ShapeCorner, 0), c(ShapeStraight, 0), c(ShapeTee, 3), c(ShapeStraight, 1),
			c(ShapeTee, 0), c(ShapeCorner, 3), c(ShapeStraight, 0), c(ShapeCorner, 2),
		},
	}
}
