package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrImmutable is returned when a rotation targets the source or sink tile.
	ErrImmutable = errors.New("engine: tile is fixed")
	// ErrAlreadySolved is returned when a rotation is attempted after the sink was powered.
	ErrAlreadySolved = errors.New("engine: puzzle already solved")
	// ErrUnknownTile is returned for a tile id outside the grid.
	ErrUnknownTile = errors.New("engine: unknown tile")
	// ErrUnsolvable is returned when no rotation assignment connects source and sink.
	ErrUnsolvable = errors.New("engine: layout has no solution")
	// ErrSearchLimit is returned when the solver gives up before finding a path.
	ErrSearchLimit = errors.New("engine: solver search limit reached")
)

// ValidationError represents a layout validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeBadSize      = "BAD_SIZE"
	CodeCellCount    = "CELL_COUNT"
	CodeBadShape     = "BAD_SHAPE"
	CodeBadRotation  = "BAD_ROTATION"
	CodeSourceSealed = "SOURCE_SEALED"
	CodeSinkSealed   = "SINK_SEALED"
)
