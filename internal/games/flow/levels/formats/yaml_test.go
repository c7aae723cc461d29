package formats

import (
	"testing"

	"github.com/vovakirdan/flowgrid/internal/games/flow/engine"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: lvl-x
name: Example
size: 2
rows:
  - "C0 t3"
  - "X S1"
metadata:
  author: someone
`)
	l, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	want := []engine.LayoutCell{
		{Shape: engine.ShapeCorner, Rotation: 0},
		{Shape: engine.ShapeTee, Rotation: 3},
		{Shape: engine.ShapeCross, Rotation: 0},
		{Shape: engine.ShapeStraight, Rotation: 1},
	}
	if len(l.Cells) != len(want) {
		t.Fatalf("len(Cells) = %d, want %d", len(l.Cells), len(want))
	}
	for i := range want {
		if l.Cells[i] != want[i] {
			t.Errorf("Cells[%d] = %+v, want %+v", i, l.Cells[i], want[i])
		}
	}
	if l.Metadata["author"] != "someone" {
		t.Errorf("Metadata[author] = %q, want someone", l.Metadata["author"])
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no id", "size: 1\nrows: [\"X\"]\n"},
		{"row count", "id: a\nsize: 2\nrows: [\"X X\"]\n"},
		{"row width", "id: a\nsize: 2\nrows: [\"X\", \"X X\"]\n"},
		{"bad shape", "id: a\nsize: 1\nrows: [\"Q0\"]\n"},
		{"bad rotation", "id: a\nsize: 1\nrows: [\"C5\"]\n"},
		{"not yaml", "id: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.data)); err == nil {
				t.Error("ParseYAML() succeeded, want error")
			}
		})
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	in := engine.DefaultLayout()
	data, err := MarshalYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML(MarshalYAML()) error = %v", err)
	}
	if out.ID != in.ID || out.Size != in.Size {
		t.Errorf("round trip = %s/%d, want %s/%d", out.ID, out.Size, in.ID, in.Size)
	}
	for i := range in.Cells {
		if out.Cells[i] != in.Cells[i] {
			t.Errorf("Cells[%d] = %+v, want %+v", i, out.Cells[i], in.Cells[i])
		}
	}
}
