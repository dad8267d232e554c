// Package geometry maps cell indices to rows, columns, and blocks for a
// Sudoku board of block width w, and enumerates peers and houses. Every
// function here is a pure function of w; results are cached per w since the
// same board size is solved/generated repeatedly.
package geometry

import "sync"

// Geometry is the precomputed peer/house layout for one block width w.
type Geometry struct {
	W int // block width
	N int // side length and digit count, N = w^2
	C int // cell count, C = w^4

	peers  [][]int // peers[i] = unique cells sharing a row, column or block with i
	houses [][]int // the 3N rows/columns/blocks, each N cells
}

var (
	cacheMu sync.Mutex
	cache   = map[int]*Geometry{}
)

// For returns the Geometry for block width w, building and caching it on
// first use.
func For(w int) *Geometry {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if g, ok := cache[w]; ok {
		return g
	}
	g := build(w)
	cache[w] = g
	return g
}

func build(w int) *Geometry {
	n := w * w
	c := n * n
	g := &Geometry{W: w, N: n, C: c}

	g.houses = make([][]int, 0, 3*n)

	// Row houses.
	for r := 0; r < n; r++ {
		house := make([]int, n)
		for col := 0; col < n; col++ {
			house[col] = r*n + col
		}
		g.houses = append(g.houses, house)
	}

	// Column houses.
	for col := 0; col < n; col++ {
		house := make([]int, n)
		for r := 0; r < n; r++ {
			house[r] = r*n + col
		}
		g.houses = append(g.houses, house)
	}

	// Block houses.
	for br := 0; br < w; br++ {
		for bc := 0; bc < w; bc++ {
			house := make([]int, 0, n)
			for r := br * w; r < br*w+w; r++ {
				for col := bc * w; col < bc*w+w; col++ {
					house = append(house, r*n+col)
				}
			}
			g.houses = append(g.houses, house)
		}
	}

	g.peers = make([][]int, c)
	for i := 0; i < c; i++ {
		seen := make(map[int]struct{})
		r, col, b := g.RowOf(i), g.ColOf(i), g.BlockOf(i)
		var peers []int
		add := func(j int) {
			if j == i {
				return
			}
			if _, ok := seen[j]; ok {
				return
			}
			seen[j] = struct{}{}
			peers = append(peers, j)
		}
		for _, j := range g.houses[r] {
			add(j)
		}
		for _, j := range g.houses[n+col] {
			add(j)
		}
		for _, j := range g.houses[2*n+b] {
			add(j)
		}
		g.peers[i] = peers
	}

	return g
}

// RowOf returns the row of cell i.
func (g *Geometry) RowOf(i int) int { return i / g.N }

// ColOf returns the column of cell i.
func (g *Geometry) ColOf(i int) int { return i % g.N }

// BlockOf returns the block of cell i.
func (g *Geometry) BlockOf(i int) int {
	r, c := g.RowOf(i), g.ColOf(i)
	return (r/g.W)*g.W + c/g.W
}

// Peers returns the unique cells sharing a row, column or block with i,
// excluding i itself. The returned slice must not be mutated by callers.
func (g *Geometry) Peers(i int) []int {
	return g.peers[i]
}

// Houses returns all 3N houses (rows, then columns, then blocks). The
// returned slice must not be mutated by callers.
func (g *Geometry) Houses() [][]int {
	return g.houses
}
