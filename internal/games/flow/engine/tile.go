package engine

// TileID is the linear index of a tile: y*N + x.
type TileID int

// Tile is one cell of the board.
type Tile struct {
	ID       TileID
	Shape    Shape
	Rotation int // quarter turns clockwise, 0..3
	X, Y     int
	Fixed    bool // source and sink never rotate
}

// EffectiveEdges returns the tile's open edges after rotation.
func (t Tile) EffectiveEdges() Edges {
	return RotateEdges(OpenEdges(t.Shape), t.Rotation)
}

// Rotate returns the tile turned one quarter clockwise.
// Fixed tiles come back unchanged together with ErrImmutable.
func (t Tile) Rotate() (Tile, error) {
	if t.Fixed {
		return t, ErrImmutable
	}
	t.Rotation = (t.Rotation + 1) % 4
	return t, nil
}
