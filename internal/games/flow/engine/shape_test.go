package engine

import "testing"

func TestOpenEdgesCanonical(t *testing.T) {
	tests := []struct {
		shape Shape
		want  Edges
	}{
		{ShapeStraight, Edges{false, true, false, true}},
		{ShapeCorner, Edges{false, true, true, false}},
		{ShapeTee, Edges{false, true, true, true}},
		{ShapeCross, Edges{true, true, true, true}},
	}

	for _, tt := range tests {
		if got := OpenEdges(tt.shape); got != tt.want {
			t.Errorf("OpenEdges(%s) = %v, want %v", tt.shape, got, tt.want)
		}
	}
}

func TestOpenEdgesReturnsCopy(t *testing.T) {
	e := OpenEdges(ShapeStraight)
	e[DirTop] = true
	if OpenEdges(ShapeStraight)[DirTop] {
		t.Error("mutating a returned mask changed the catalog")
	}
}

func TestOpenEdgesPanicsOnUnknownShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("OpenEdges(99) did not panic")
		}
	}()
	OpenEdges(Shape(99))
}

func TestRotateEdgesClockwise(t *testing.T) {
	tests := []struct {
		name string
		in   Edges
		n    int
		want Edges
	}{
		{"top to right", Edges{DirTop: true}, 1, Edges{DirRight: true}},
		{"corner once", OpenEdges(ShapeCorner), 1, Edges{DirBottom: true, DirLeft: true}},
		{"corner twice", OpenEdges(ShapeCorner), 2, Edges{DirTop: true, DirLeft: true}},
		{"corner thrice", OpenEdges(ShapeCorner), 3, Edges{DirTop: true, DirRight: true}},
		{"straight once", OpenEdges(ShapeStraight), 1, Edges{DirTop: true, DirBottom: true}},
		{"tee once", OpenEdges(ShapeTee), 1, Edges{DirTop: true, DirBottom: true, DirLeft: true}},
		{"negative", Edges{DirTop: true}, -1, Edges{DirLeft: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateEdges(tt.in, tt.n); got != tt.want {
				t.Errorf("RotateEdges(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestRotationCycle(t *testing.T) {
	for _, shape := range []Shape{ShapeStraight, ShapeCorner, ShapeTee, ShapeCross} {
		tile := Tile{Shape: shape}
		start := tile.EffectiveEdges()
		for i := 0; i < 4; i++ {
			var err error
			tile, err = tile.Rotate()
			if err != nil {
				t.Fatalf("Rotate(%s): %v", shape, err)
			}
		}
		if tile.Rotation != 0 {
			t.Errorf("%s rotation after 4 turns = %d, want 0", shape, tile.Rotation)
		}
		if got := tile.EffectiveEdges(); got != start {
			t.Errorf("%s edges after 4 turns = %v, want %v", shape, got, start)
		}
	}
}

func TestFixedTileRotate(t *testing.T) {
	tile := Tile{Shape: ShapeCorner, Rotation: 2, Fixed: true}
	got, err := tile.Rotate()
	if err != ErrImmutable {
		t.Errorf("Rotate() error = %v, want ErrImmutable", err)
	}
	if got != tile {
		t.Errorf("Rotate() = %+v, want unchanged %+v", got, tile)
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
		ok   bool
	}{
		{"S", ShapeStraight, true},
		{"corner", ShapeCorner, true},
		{"t", ShapeTee, true},
		{"CROSS", ShapeCross, true},
		{"Q", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseShape(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseShape(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOpposite(t *testing.T) {
	for _, d := range AllDirs {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s.Opposite().Opposite() = %s", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%s delta (%d,%d) is not the inverse of (%d,%d)", d, dx, dy, ox, oy)
		}
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		edges Edges
		want  rune
	}{
		{OpenEdges(ShapeStraight), '─'},
		{RotateEdges(OpenEdges(ShapeStraight), 1), '│'},
		{OpenEdges(ShapeCorner), '┌'},
		{RotateEdges(OpenEdges(ShapeCorner), 2), '┘'},
		{OpenEdges(ShapeTee), '┬'},
		{OpenEdges(ShapeCross), '┼'},
		{Edges{}, '·'},
	}

	for _, tt := range tests {
		if got := Glyph(tt.edges); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.edges, got, tt.want)
		}
	}
}
