package engine

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// PoweredSet is an immutable snapshot of the tiles reached by the flow.
type PoweredSet struct {
	ids []TileID // sorted ascending
}

func newPoweredSet(ids []TileID) PoweredSet {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return PoweredSet{ids: slices.Compact(sorted)}
}

// Has reports whether id is powered.
func (p PoweredSet) Has(id TileID) bool {
	_, found := slices.BinarySearch(p.ids, id)
	return found
}

// Len returns the number of powered tiles.
func (p PoweredSet) Len() int { return len(p.ids) }

// IDs returns the powered tile ids in ascending order.
func (p PoweredSet) IDs() []TileID { return slices.Clone(p.ids) }

// Equal reports whether both sets hold the same ids.
func (p PoweredSet) Equal(other PoweredSet) bool {
	return slices.Equal(p.ids, other.ids)
}

// Reach is the outcome of a flood fill.
type Reach struct {
	Powered     PoweredSet
	SinkReached bool
}

// Connected reports whether tile a and its neighbor in direction d both have
// their facing edges open. It returns the neighbor id when they do.
func Connected(g *Grid, a TileID, d Dir) (TileID, bool) {
	t, ok := g.Tile(a)
	if !ok || !t.EffectiveEdges()[d] {
		return 0, false
	}
	nid, ok := g.Neighbor(t.X, t.Y, d)
	if !ok {
		return 0, false
	}
	n := g.tiles[nid]
	if !n.EffectiveEdges()[d.Opposite()] {
		return 0, false
	}
	return nid, true
}

// ComputeReachable floods outward from the source through mutually open
// edges and reports every powered tile and whether the sink was reached.
func ComputeReachable(g *Grid) Reach {
	if g == nil || g.Len() == 0 {
		return Reach{}
	}

	source := g.SourceID()
	visited := mapset.New[TileID]()
	visited.Put(source)
	queue := []TileID{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range AllDirs {
			next, ok := Connected(g, current, d)
			if !ok || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	ids := make([]TileID, 0, visited.Size())
	visited.Each(func(id TileID) {
		ids = append(ids, id)
	})
	powered := newPoweredSet(ids)
	return Reach{Powered: powered, SinkReached: powered.Has(g.SinkID())}
}
