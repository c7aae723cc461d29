package engine

import "fmt"

// Grid is a square board of N×N tiles stored row-major.
// Tile membership never changes after construction; only rotations do.
type Grid struct {
	size  int
	tiles []Tile
}

// NewGrid builds a grid from exactly size*size tiles in row-major order.
// IDs and coordinates must match the tile's position; Fixed is forced on
// the source and sink and off everywhere else.
func NewGrid(size int, tiles []Tile) (*Grid, error) {
	if size < 0 {
		return nil, fmt.Errorf("engine: negative grid size %d", size)
	}
	if len(tiles) != size*size {
		return nil, fmt.Errorf("engine: grid of size %d needs %d tiles, got %d", size, size*size, len(tiles))
	}

	g := &Grid{size: size, tiles: make([]Tile, len(tiles))}
	last := len(tiles) - 1
	for i, t := range tiles {
		x, y := i%size, i/size
		if t.ID != TileID(i) || t.X != x || t.Y != y {
			return nil, fmt.Errorf("engine: tile %d at (%d,%d) does not match index %d", t.ID, t.X, t.Y, i)
		}
		if !t.Shape.Valid() {
			return nil, fmt.Errorf("engine: tile %d has unknown shape %d", i, uint8(t.Shape))
		}
		if t.Rotation < 0 || t.Rotation > 3 {
			return nil, fmt.Errorf("engine: tile %d has rotation %d outside 0..3", i, t.Rotation)
		}
		t.Fixed = i == 0 || i == last
		g.tiles[i] = t
	}
	return g, nil
}

// gridFromCells lays cells out row-major, assigning ids and coordinates.
func gridFromCells(size int, cells []LayoutCell) (*Grid, error) {
	tiles := make([]Tile, len(cells))
	for i, c := range cells {
		tiles[i] = Tile{
			ID:       TileID(i),
			Shape:    c.Shape,
			Rotation: c.Rotation,
			X:        i % max(size, 1),
			Y:        i / max(size, 1),
		}
	}
	return NewGrid(size, tiles)
}

// Size returns N.
func (g *Grid) Size() int { return g.size }

// Len returns the number of tiles (N*N).
func (g *Grid) Len() int { return len(g.tiles) }

// SourceID is the top-left tile.
func (g *Grid) SourceID() TileID { return 0 }

// SinkID is the bottom-right tile. On an empty grid it is -1.
func (g *Grid) SinkID() TileID { return TileID(len(g.tiles) - 1) }

// InBounds reports whether (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Index converts coordinates to a tile id.
func (g *Grid) Index(x, y int) TileID {
	return TileID(y*g.size + x)
}

// Valid reports whether id names a tile of this grid.
func (g *Grid) Valid(id TileID) bool {
	return id >= 0 && int(id) < len(g.tiles)
}

// Tile returns the tile with the given id.
func (g *Grid) Tile(id TileID) (Tile, bool) {
	if !g.Valid(id) {
		return Tile{}, false
	}
	return g.tiles[id], true
}

// TileAt returns the tile at (x, y).
func (g *Grid) TileAt(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.tiles[g.Index(x, y)], true
}

// Neighbor returns the id of the tile adjacent to (x, y) in direction d.
// There is no wrap-around: off-board neighbors report false.
func (g *Grid) Neighbor(x, y int, d Dir) (TileID, bool) {
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if !g.InBounds(nx, ny) {
		return 0, false
	}
	return g.Index(nx, ny), true
}

// AllTiles returns a row-major copy of every tile.
func (g *Grid) AllTiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Rotations returns the current rotation of every tile, row-major.
func (g *Grid) Rotations() []int {
	out := make([]int, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.Rotation
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, tiles: g.AllTiles()}
}

func (g *Grid) setRotation(id TileID, rotation int) {
	g.tiles[id].Rotation = ((rotation % 4) + 4) % 4
}
