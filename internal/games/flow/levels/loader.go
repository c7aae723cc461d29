// Package levels loads Neural Flow level catalogs from disk or from the
// embedded campaign.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/flowgrid/internal/games/flow/engine"
	"github.com/vovakirdan/flowgrid/internal/games/flow/levels/formats"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Level is a validated layout plus where it came from.
type Level struct {
	engine.Layout
	FilePath string
}

// Loader loads levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader rooted at a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the embedded campaign.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			log.Warn("skipping level file", "root", l.Root, "file", p, "err", err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	slices.SortFunc(levels, func(a, b Level) int {
		return strings.Compare(a.ID, b.ID)
	})
	return levels, nil
}

// LoadFile loads and validates a single level file relative to Root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	layout, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if err := layout.Validate(); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", p, err)
	}
	return Level{Layout: layout, FilePath: p}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadPath reads and validates one level file from anywhere on disk.
func LoadPath(file string) (Level, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", file, err)
	}
	ext := strings.ToLower(path.Ext(file))
	layout, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", file, err)
	}
	if err := layout.Validate(); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", file, err)
	}
	return Level{Layout: layout, FilePath: file}, nil
}

// Layouts strips file information from a slice of levels.
func Layouts(levels []Level) []engine.Layout {
	out := make([]engine.Layout, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.Layout
	}
	return out
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

func parseByExtension(data []byte, ext string) (engine.Layout, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return engine.Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
