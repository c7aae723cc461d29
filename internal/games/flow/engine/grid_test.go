package engine

import "testing"

func TestNewGridRejectsWrongTileCount(t *testing.T) {
	if _, err := NewGrid(2, make([]Tile, 3)); err == nil {
		t.Error("NewGrid(2, 3 tiles) succeeded, want error")
	}
}

func TestNewGridForcesFixedEnds(t *testing.T) {
	g := mustGrid(t, 3, "C0 S0 S0  S0 X0 S0  S0 S0 C2")
	for _, tile := range g.AllTiles() {
		want := tile.ID == 0 || tile.ID == 8
		if tile.Fixed != want {
			t.Errorf("tile %d Fixed = %v, want %v", tile.ID, tile.Fixed, want)
		}
	}
	if g.SourceID() != 0 || g.SinkID() != 8 {
		t.Errorf("source/sink = %d/%d, want 0/8", g.SourceID(), g.SinkID())
	}
}

func TestLinearIndex(t *testing.T) {
	g := mustGrid(t, 3, "C0 S0 S0  S0 X0 S0  S0 S0 C2")
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			tile, ok := g.TileAt(x, y)
			if !ok {
				t.Fatalf("TileAt(%d,%d) missing", x, y)
			}
			if want := TileID(y*3 + x); tile.ID != want {
				t.Errorf("TileAt(%d,%d).ID = %d, want %d", x, y, tile.ID, want)
			}
		}
	}
}

func TestNeighborNoWrap(t *testing.T) {
	g := mustGrid(t, 3, "C0 S0 S0  S0 X0 S0  S0 S0 C2")
	tests := []struct {
		x, y int
		d    Dir
		want TileID
		ok   bool
	}{
		{2, 0, DirRight, 0, false},
		{0, 1, DirLeft, 0, false},
		{1, 0, DirTop, 0, false},
		{1, 2, DirBottom, 0, false},
		{1, 1, DirTop, 1, true},
		{1, 1, DirRight, 5, true},
		{1, 1, DirBottom, 7, true},
		{1, 1, DirLeft, 3, true},
	}

	for _, tt := range tests {
		got, ok := g.Neighbor(tt.x, tt.y, tt.d)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Neighbor(%d,%d,%s) = (%d, %v), want (%d, %v)", tt.x, tt.y, tt.d, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRotateAt(t *testing.T) {
	g := mustGrid(t, 2, "S0 C1 S1 C2")

	if err := RotateAt(g, 1); err != nil {
		t.Fatalf("RotateAt(1): %v", err)
	}
	if tile, _ := g.Tile(1); tile.Rotation != 2 {
		t.Errorf("tile 1 rotation = %d, want 2", tile.Rotation)
	}

	for _, id := range []TileID{0, 3} {
		if err := RotateAt(g, id); err != ErrImmutable {
			t.Errorf("RotateAt(%d) = %v, want ErrImmutable", id, err)
		}
	}
	if tile, _ := g.Tile(3); tile.Rotation != 2 {
		t.Errorf("sink rotation changed to %d", tile.Rotation)
	}

	for _, id := range []TileID{-1, 4} {
		if err := RotateAt(g, id); err != ErrUnknownTile {
			t.Errorf("RotateAt(%d) = %v, want ErrUnknownTile", id, err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 2, "S0 C1 S1 C2")
	c := g.Clone()
	if err := RotateAt(c, 1); err != nil {
		t.Fatal(err)
	}
	if tile, _ := g.Tile(1); tile.Rotation != 1 {
		t.Errorf("original rotation = %d after rotating clone, want 1", tile.Rotation)
	}
}
