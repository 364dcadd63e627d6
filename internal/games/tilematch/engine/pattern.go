package engine

import (
	"fmt"
	"math"
	"strings"
)

// Pattern names a geometric silhouette that tiles are laid out on.
type Pattern string

const (
	PatternX            Pattern = "x"
	PatternSquare       Pattern = "square"
	PatternDiamond      Pattern = "diamond"
	PatternPlus         Pattern = "plus"
	PatternCircle       Pattern = "circle"
	PatternConcentric   Pattern = "concentric-circles"
	PatternHollowSquare Pattern = "hollow-square"
	PatternSpiral       Pattern = "spiral"
	PatternScattered    Pattern = "scattered"
)

// allPatterns is the cycling order used by the level catalog.
var allPatterns = []Pattern{
	PatternX,
	PatternSquare,
	PatternDiamond,
	PatternPlus,
	PatternCircle,
	PatternConcentric,
	PatternHollowSquare,
	PatternSpiral,
	PatternScattered,
}

// Patterns returns every supported pattern in catalog order.
func Patterns() []Pattern {
	out := make([]Pattern, len(allPatterns))
	copy(out, allPatterns)
	return out
}

// ParsePattern resolves a pattern name (case-insensitive).
func ParsePattern(name string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range allPatterns {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown pattern %q", name)
}

// Coord is a 0-indexed board position.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// GeneratePattern returns the unique coordinates of pattern p on a size x size grid,
// in row-major order. Sparse mode yields the outline of the shape; filled mode
// yields its whole silhouette.
//
// Only PatternScattered consumes rng. Its coordinate count depends on size and
// mode alone, so callers that only need the count may pass any generator.
func GeneratePattern(p Pattern, size int, filled bool, rng *SimpleRNG) []Coord {
	if size <= 0 {
		return nil
	}
	if rng == nil {
		rng = NewRNG(uint64(size))
	}

	m := newMask(size)
	if filled {
		m.fill(p, rng)
	} else {
		m.outline(p, rng)
	}
	return m.coords()
}

// mask collects unique in-bounds cells of a square grid.
type mask struct {
	size  int
	cells []bool
}

func newMask(size int) *mask {
	return &mask{size: size, cells: make([]bool, size*size)}
}

func (m *mask) add(r, c int) {
	if r < 0 || r >= m.size || c < 0 || c >= m.size {
		return
	}
	m.cells[r*m.size+c] = true
}

func (m *mask) coords() []Coord {
	out := make([]Coord, 0, len(m.cells))
	for i, on := range m.cells {
		if on {
			out = append(out, Coord{Row: i / m.size, Col: i % m.size})
		}
	}
	return out
}

func (m *mask) outline(p Pattern, rng *SimpleRNG) {
	n := m.size
	mid := n / 2

	switch p {
	case PatternX:
		for i := 0; i < n; i++ {
			m.add(i, i)
			m.add(i, n-1-i)
		}
	case PatternSquare:
		m.frame(0)
	case PatternDiamond:
		for i := 0; i < n; i++ {
			k := mid - abs(i-mid)
			m.add(i, mid-k)
			m.add(i, mid+k)
		}
	case PatternPlus:
		for i := 0; i < n; i++ {
			m.add(mid, i)
			m.add(i, mid)
		}
	case PatternCircle:
		m.ring(float64(n-1)/2, 0.8)
		m.add(0, 0)
		m.add(0, n-1)
		m.add(n-1, 0)
		m.add(n-1, n-1)
	case PatternConcentric:
		m.ring(float64(mid-1), 0.8)
		m.ring(float64(mid), 0.8)
	case PatternHollowSquare:
		m.frame(0)
		m.frame(2)
	case PatternSpiral:
		m.spiral(n * n / 2)
	case PatternScattered:
		m.scatter(n*n*2/5, rng)
	}
}

func (m *mask) fill(p Pattern, rng *SimpleRNG) {
	n := m.size
	mid := n / 2

	switch p {
	case PatternX:
		m.each(func(r, c int) bool {
			return abs(r-c) <= 1 || abs(r+c-(n-1)) <= 1
		})
	case PatternSquare:
		m.each(func(int, int) bool { return true })
	case PatternDiamond:
		for i := 0; i < n; i++ {
			d := abs(i - mid)
			for j := d; j < n-d; j++ {
				m.add(i, j)
			}
		}
	case PatternPlus:
		m.each(func(r, c int) bool {
			return abs(r-mid) <= 1 || abs(c-mid) <= 1
		})
	case PatternCircle:
		limit := float64(n)/2 + 0.5
		m.each(func(r, c int) bool { return m.dist(r, c) <= limit })
	case PatternConcentric:
		limit := float64(n)/2 + 0.5
		m.each(func(r, c int) bool {
			d := m.dist(r, c)
			return d <= limit && int(math.Round(d))%2 == 0
		})
	case PatternHollowSquare:
		width := max(1, n/3)
		m.each(func(r, c int) bool { return m.edgeDistance(r, c) < width })
	case PatternSpiral:
		m.spiral(n * n)
	case PatternScattered:
		m.scatter(n*n*7/10, rng)
	}
}

func (m *mask) each(keep func(r, c int) bool) {
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if keep(r, c) {
				m.add(r, c)
			}
		}
	}
}

// dist is the Euclidean distance from the grid center.
func (m *mask) dist(r, c int) float64 {
	center := float64(m.size-1) / 2
	return math.Hypot(float64(r)-center, float64(c)-center)
}

func (m *mask) edgeDistance(r, c int) int {
	n := m.size
	return min(r, c, n-1-r, n-1-c)
}

// ring adds cells whose distance from the center is within tol of radius.
func (m *mask) ring(radius, tol float64) {
	m.each(func(r, c int) bool { return math.Abs(m.dist(r, c)-radius) < tol })
}

// frame adds the square ring inset cells from the border.
func (m *mask) frame(inset int) {
	m.each(func(r, c int) bool { return m.edgeDistance(r, c) == inset })
}

// spiral walks clockwise from the top-left corner, adding the first limit cells.
func (m *mask) spiral(limit int) {
	n := m.size
	limit = min(limit, n*n)
	visited := make([]bool, n*n)

	r, c, dr, dc := 0, 0, 0, 1
	for taken := 0; taken < limit; taken++ {
		visited[r*n+c] = true
		m.add(r, c)

		nr, nc := r+dr, c+dc
		if nr < 0 || nr >= n || nc < 0 || nc >= n || visited[nr*n+nc] {
			dr, dc = dc, -dr
			nr, nc = r+dr, c+dc
		}
		r, c = nr, nc
	}
}

// scatter adds count distinct random cells.
func (m *mask) scatter(count int, rng *SimpleRNG) {
	order := make([]int, m.size*m.size)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, idx := range order[:min(count, len(order))] {
		m.add(idx/m.size, idx%m.size)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
