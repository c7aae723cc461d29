package engine

// maxSolveSteps bounds the number of tiles the solver may enter.
const maxSolveSteps = 500_000

// Solution is a witness that a board can connect source to sink.
type Solution struct {
	// Path lists tile ids from source to sink.
	Path []TileID
	// Rotations holds the target rotation of every movable tile on the path.
	Rotations map[TileID]int
	// Moves is the number of clockwise quarter turns needed to reach the
	// witness from the grid's current rotations.
	Moves int
}

// Apply sets every path tile of g to its witness rotation.
func (s Solution) Apply(g *Grid) {
	for id, r := range s.Rotations {
		if g.Valid(id) && !g.tiles[id].Fixed {
			g.setRotation(id, r)
		}
	}
}

// Solve validates the layout and searches its authored board for a
// source-to-sink path.
func Solve(l Layout) (Solution, error) {
	if err := l.Validate(); err != nil {
		return Solution{}, err
	}
	g, err := l.Grid()
	if err != nil {
		return Solution{}, err
	}
	return SolveGrid(g)
}

// SolveGrid searches simple paths from source to sink where each
// intermediate tile's shape can be turned to open both its entry and exit
// sides. Off-path tiles never need to change: opening extra edges only adds
// connections. Among the paths found it keeps the one needing the fewest
// clockwise turns from the current rotations.
func SolveGrid(g *Grid) (Solution, error) {
	if g.Len() == 0 {
		return Solution{}, ErrUnsolvable
	}
	s := &solver{
		g:       g,
		visited: make([]bool, g.Len()),
		rots:    make([]int, g.Len()),
		best:    -1,
	}
	source := g.SourceID()
	if source == g.SinkID() {
		return Solution{Path: []TileID{source}, Rotations: map[TileID]int{}}, nil
	}

	s.visited[source] = true
	s.path = append(s.path, source)
	src := g.tiles[source]
	for _, d := range AllDirs {
		if src.EffectiveEdges()[d] {
			s.step(src, d, 0)
		}
	}

	if s.best < 0 {
		if s.steps >= maxSolveSteps {
			return Solution{}, ErrSearchLimit
		}
		return Solution{}, ErrUnsolvable
	}
	return s.bestSolution, nil
}

type solver struct {
	g       *Grid
	visited []bool
	path    []TileID
	rots    []int
	steps   int

	best         int
	bestSolution Solution
}

// step leaves tile from through side out, having spent cost turns so far.
func (s *solver) step(from Tile, out Dir, cost int) {
	if s.steps >= maxSolveSteps {
		return
	}
	nid, ok := s.g.Neighbor(from.X, from.Y, out)
	if !ok || s.visited[nid] {
		return
	}
	s.steps++
	next := s.g.tiles[nid]
	in := out.Opposite()

	if nid == s.g.SinkID() {
		if next.EffectiveEdges()[in] && (s.best < 0 || cost < s.best) {
			s.record(nid, cost)
		}
		return
	}
	if next.Fixed {
		return
	}

	s.visited[nid] = true
	s.path = append(s.path, nid)
	for _, exit := range AllDirs {
		if exit == in {
			continue
		}
		rot, turns, ok := joinRotation(next, in, exit)
		if !ok {
			continue
		}
		if s.best >= 0 && cost+turns >= s.best {
			continue
		}
		s.rots[nid] = rot
		s.step(Tile{ID: nid, X: next.X, Y: next.Y}, exit, cost+turns)
	}
	s.path = s.path[:len(s.path)-1]
	s.visited[nid] = false
}

func (s *solver) record(sink TileID, cost int) {
	path := make([]TileID, 0, len(s.path)+1)
	path = append(path, s.path...)
	path = append(path, sink)
	rots := make(map[TileID]int, len(path))
	for _, id := range path {
		if !s.g.tiles[id].Fixed {
			rots[id] = s.rots[id]
		}
	}
	s.best = cost
	s.bestSolution = Solution{Path: path, Rotations: rots, Moves: cost}
}

// joinRotation finds the rotation of t closest clockwise to its current one
// that opens both a and b.
func joinRotation(t Tile, a, b Dir) (rot, turns int, ok bool) {
	base := OpenEdges(t.Shape)
	for k := 0; k < 4; k++ {
		r := (t.Rotation + k) % 4
		e := RotateEdges(base, r)
		if e[a] && e[b] {
			return r, k, true
		}
	}
	return 0, 0, false
}
