package bitset

import "testing"

func TestPopcountMatchesBitsToDigits(t *testing.T) {
	tables := For(9)
	for x := 0; x < 1<<9; x++ {
		got := tables.Popcount(uint32(x))
		want := len(tables.BitsToDigits(uint32(x)))
		if got != want {
			t.Fatalf("Popcount(%d)=%d but len(BitsToDigits(%d))=%d", x, got, x, want)
		}
	}
}

func TestBitsToDigitsOrder(t *testing.T) {
	tables := For(9)
	got := tables.BitsToDigits(0b000001011)
	want := []int{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFallsBackPastTableLimit(t *testing.T) {
	tables := For(25)
	x := uint32(1<<25 - 1)
	if got := tables.Popcount(x); got != 25 {
		t.Errorf("Popcount(all-ones 25 bits) = %d, want 25", got)
	}
}

func TestAllUnique(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		want bool
	}{
		{"unique", []int{1, 2, 3, 4}, true},
		{"duplicate", []int{1, 2, 2, 3}, false},
		{"empty", nil, true},
	}
	for _, tt := range tests {
		if got := AllUnique(tt.seq); got != tt.want {
			t.Errorf("AllUnique(%v) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}
