// Package formats provides level file format parsers.
package formats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/flowgrid/internal/games/flow/engine"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     int               `yaml:"size"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file. Each row holds Size tokens of the form
// <shape letter><rotation digit>, e.g. "C0 T1 S X3"; a missing digit means 0.
func ParseYAML(data []byte) (engine.Layout, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return engine.Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return engine.Layout{}, fmt.Errorf("level has no id")
	}
	if len(yl.Rows) != yl.Size {
		return engine.Layout{}, fmt.Errorf("level %s: size %d but %d rows", yl.ID, yl.Size, len(yl.Rows))
	}

	layout := engine.Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Size:     yl.Size,
		Cells:    make([]engine.LayoutCell, 0, yl.Size*yl.Size),
		Metadata: yl.Metadata,
	}
	for y, row := range yl.Rows {
		tokens := strings.Fields(row)
		if len(tokens) != yl.Size {
			return engine.Layout{}, fmt.Errorf("level %s row %d: want %d cells, got %d", yl.ID, y, yl.Size, len(tokens))
		}
		for x, tok := range tokens {
			cell, err := ParseCell(tok)
			if err != nil {
				return engine.Layout{}, fmt.Errorf("level %s cell (%d,%d): %w", yl.ID, x, y, err)
			}
			layout.Cells = append(layout.Cells, cell)
		}
	}
	return layout, nil
}

// ParseCell parses a single cell token.
func ParseCell(tok string) (engine.LayoutCell, error) {
	if tok == "" {
		return engine.LayoutCell{}, fmt.Errorf("empty cell")
	}
	shape, ok := engine.ParseShape(tok[:1])
	if !ok {
		return engine.LayoutCell{}, fmt.Errorf("unknown shape %q", tok[:1])
	}
	rot := 0
	if len(tok) > 1 {
		n, err := strconv.Atoi(tok[1:])
		if err != nil || n < 0 || n > 3 {
			return engine.LayoutCell{}, fmt.Errorf("bad rotation %q", tok[1:])
		}
		rot = n
	}
	return engine.LayoutCell{Shape: shape, Rotation: rot}, nil
}

// FormatCell is the inverse of ParseCell.
func FormatCell(c engine.LayoutCell) string {
	return c.Shape.Code() + strconv.Itoa(c.Rotation)
}

// MarshalYAML renders a layout in the level file format.
func MarshalYAML(l engine.Layout) ([]byte, error) {
	yl := YAMLLevel{ID: l.ID, Name: l.Name, Size: l.Size, Metadata: l.Metadata}
	for y := 0; y < l.Size; y++ {
		tokens := make([]string, l.Size)
		for x := 0; x < l.Size; x++ {
			tokens[x] = FormatCell(l.Cell(x, y))
		}
		yl.Rows = append(yl.Rows, strings.Join(tokens, " "))
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
