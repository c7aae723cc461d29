package engine

// RotateAt turns the tile with the given id one quarter clockwise.
// It is the only mutation path for tile rotations.
func RotateAt(g *Grid, id TileID) error {
	t, ok := g.Tile(id)
	if !ok {
		return ErrUnknownTile
	}
	rotated, err := t.Rotate()
	if err != nil {
		return err
	}
	g.setRotation(id, rotated.Rotation)
	return nil
}
