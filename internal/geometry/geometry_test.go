package geometry

import "testing"

func TestPeerCountStandardBoard(t *testing.T) {
	g := For(3)
	want := 3*(g.N-1) - 2*(g.W-1) // 20 for w=3
	for i := 0; i < g.C; i++ {
		if got := len(g.Peers(i)); got != want {
			t.Fatalf("cell %d has %d peers, want %d", i, got, want)
		}
	}
}

func TestPeersUnique(t *testing.T) {
	g := For(3)
	for i := 0; i < g.C; i++ {
		seen := make(map[int]bool)
		for _, p := range g.Peers(i) {
			if seen[p] {
				t.Fatalf("cell %d has duplicate peer %d", i, p)
			}
			if p == i {
				t.Fatalf("cell %d lists itself as a peer", i)
			}
			seen[p] = true
		}
	}
}

func TestHousesCountAndSize(t *testing.T) {
	g := For(2)
	houses := g.Houses()
	if len(houses) != 3*g.N {
		t.Fatalf("got %d houses, want %d", len(houses), 3*g.N)
	}
	for _, h := range houses {
		if len(h) != g.N {
			t.Fatalf("house has %d cells, want %d", len(h), g.N)
		}
	}
}

func TestRowColBlockOf(t *testing.T) {
	g := For(3)
	tests := []struct {
		cell, row, col, block int
	}{
		{0, 0, 0, 0},
		{8, 0, 8, 2},
		{40, 4, 4, 4},
		{80, 8, 8, 8},
	}
	for _, tt := range tests {
		if r := g.RowOf(tt.cell); r != tt.row {
			t.Errorf("RowOf(%d) = %d, want %d", tt.cell, r, tt.row)
		}
		if c := g.ColOf(tt.cell); c != tt.col {
			t.Errorf("ColOf(%d) = %d, want %d", tt.cell, c, tt.col)
		}
		if b := g.BlockOf(tt.cell); b != tt.block {
			t.Errorf("BlockOf(%d) = %d, want %d", tt.cell, b, tt.block)
		}
	}
}

func TestForCachesByWidth(t *testing.T) {
	a := For(3)
	b := For(3)
	if a != b {
		t.Errorf("For(3) returned distinct instances; expected a cached pointer")
	}
}
