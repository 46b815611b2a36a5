package model

import (
	"fmt"
	"testing"
)

// boardWith returns an empty board with the given cells alive
func boardWith(cells ...[2]int) *Board {
	b := NewEmptyBoard()
	for _, c := range cells {
		b.Write(wrap(c[0]), wrap(c[1]), true)
	}
	return b
}

func shifted(cells [][2]int, dx, dy int) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c[0] + dx, c[1] + dy}
	}
	return out
}

func generations(b *Board, n int) *Board {
	cur, next := NewEmptyBoard(), NewEmptyBoard()
	cur.CopyFrom(b)
	for range n {
		next.Update(cur)
		cur, next = next, cur
	}
	return cur
}

func assertMatchesReference(t *testing.T, src *Board) {
	t.Helper()
	for y := range Size {
		for x := range Size {
			total := src.NeighborhoodSumAt(x, y)
			centre := 0
			if src.Read(x, y) {
				centre = 1
			}
			if got, want := total-centre, src.NeighborCount(x, y); got != want {
				t.Fatalf("neighbour count at (%d,%d): bitwise %d, reference %d", x, y, got, want)
			}
		}
	}

	bitwise, reference := NewEmptyBoard(), NewEmptyBoard()
	bitwise.Update(src)
	reference.UpdateReference(src)
	if !bitwise.Equal(reference) {
		t.Fatalf("bitwise update differs from reference update")
	}
}

// Every 3x3 neighbourhood, placed both inside the board and across the corner.
func TestExhaustiveNeighborhoods(t *testing.T) {
	for _, centre := range [][2]int{{1, 1}, {0, 0}, {Size - 1, 30}} {
		for mask := range 1 << 9 {
			var cells [][2]int
			for i := range 9 {
				if mask>>i&1 == 1 {
					cells = append(cells, [2]int{centre[0] + i%3 - 1, centre[1] + i/3 - 1})
				}
			}
			src := boardWith(cells...)
			cx, cy := centre[0], centre[1]

			total := src.NeighborhoodSumAt(cx, cy)
			alive := mask>>4&1 == 1
			neighbors := total
			if alive {
				neighbors--
			}
			if want := src.NeighborCount(cx, cy); neighbors != want {
				t.Fatalf("mask %09b at %v: bitwise count %d, reference %d", mask, centre, neighbors, want)
			}

			bitwise, reference := NewEmptyBoard(), NewEmptyBoard()
			bitwise.Update(src)
			reference.UpdateReference(src)
			if !bitwise.Equal(reference) {
				t.Fatalf("mask %09b at %v: bitwise update differs from reference", mask, centre)
			}
		}
	}
}

func TestRandomBoardsMatchReference(t *testing.T) {
	seed := DefaultSeed
	for i := range 8 {
		t.Run(fmt.Sprintf("seed_%d", i), func(t *testing.T) {
			assertMatchesReference(t, NewBoard(seed))
		})
		seed = NextSeed(seed ^ Word(i)<<40)
	}
}

func TestEvolvedBoardsMatchReference(t *testing.T) {
	b := NewBoard(DefaultSeed)
	for range 32 {
		assertMatchesReference(t, b)
		next := NewEmptyBoard()
		next.Update(b)
		b = next
	}
}

func TestUpdateParallelMatchesUpdate(t *testing.T) {
	src := NewBoard(DefaultSeed)
	want := NewEmptyBoard()
	want.Update(src)

	for _, workers := range []int{0, 1, 2, 3, 7, 8, Size, 100} {
		got := NewBoard(1)
		got.UpdateParallel(src, workers)
		if !got.Equal(want) {
			t.Fatalf("workers=%d: parallel update differs from serial", workers)
		}
	}
}

func TestUpdateInPlace(t *testing.T) {
	src := NewBoard(DefaultSeed)
	want := NewEmptyBoard()
	want.Update(src)

	b := NewBoard(DefaultSeed)
	b.Update(b)
	if !b.Equal(want) {
		t.Fatalf("in-place update differs from buffered update")
	}

	p := NewBoard(DefaultSeed)
	p.UpdateParallel(p, 4)
	if !p.Equal(want) {
		t.Fatalf("in-place parallel update differs from buffered update")
	}
}

func TestWraparound(t *testing.T) {
	cols := boardWith([2]int{0, 5}, [2]int{Size - 1, 5})
	if got := cols.NeighborCount(0, 5); got != 1 {
		t.Fatalf("expected column 0 to see column %d, got %d neighbours", Size-1, got)
	}
	if got := cols.NeighborhoodSumAt(0, 5); got != 2 {
		t.Fatalf("expected neighbourhood total 2 at column 0, got %d", got)
	}
	if got := cols.NeighborhoodSumAt(Size-1, 5); got != 2 {
		t.Fatalf("expected neighbourhood total 2 at column %d, got %d", Size-1, got)
	}

	rows := boardWith([2]int{5, 0}, [2]int{5, Size - 1})
	if got := rows.NeighborCount(5, 0); got != 1 {
		t.Fatalf("expected row 0 to see row %d, got %d neighbours", Size-1, got)
	}
	if got := rows.NeighborhoodSumAt(5, 0); got != 2 {
		t.Fatalf("expected neighbourhood total 2 at row 0, got %d", got)
	}
	if got := rows.NeighborhoodSumAt(5, Size-1); got != 2 {
		t.Fatalf("expected neighbourhood total 2 at row %d, got %d", Size-1, got)
	}
}

func TestBlockIsStable(t *testing.T) {
	for _, origin := range [][2]int{{0, 0}, {Size - 1, Size - 1}, {20, 33}} {
		block := boardWith(shifted([][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, origin[0], origin[1])...)
		if next := generations(block, 1); !next.Equal(block) {
			t.Fatalf("block at %v changed after one generation", origin)
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := boardWith([2]int{10, 10}, [2]int{11, 10}, [2]int{12, 10})
	vertical := boardWith([2]int{11, 9}, [2]int{11, 10}, [2]int{11, 11})

	if next := generations(horizontal, 1); !next.Equal(vertical) {
		t.Fatalf("expected vertical blinker after one generation")
	}
	if next := generations(horizontal, 2); !next.Equal(horizontal) {
		t.Fatalf("expected horizontal blinker after two generations")
	}
}

func TestGliderTranslates(t *testing.T) {
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	for _, origin := range [][2]int{{5, 5}, {Size - 2, Size - 2}} {
		start := boardWith(shifted(glider, origin[0], origin[1])...)
		want := boardWith(shifted(glider, origin[0]+1, origin[1]+1)...)
		if got := generations(start, 4); !got.Equal(want) {
			t.Fatalf("glider at %v did not move one cell diagonally in 4 generations", origin)
		}
		if got := generations(start, 4*Size); !got.Equal(start) {
			t.Fatalf("glider at %v did not return after circling the torus", origin)
		}
	}
}

func TestEmptyStaysEmpty(t *testing.T) {
	if next := generations(NewEmptyBoard(), 1); next.Population() != 0 {
		t.Fatalf("expected empty board, got %d cells", next.Population())
	}
}

func TestFullBoardDies(t *testing.T) {
	full := NewEmptyBoard()
	for y := range Size {
		full.SetRow(y, ^Word(0))
	}
	if got := full.NeighborCount(3, 3); got != 8 {
		t.Fatalf("expected 8 neighbours, got %d", got)
	}
	if next := generations(full, 1); next.Population() != 0 {
		t.Fatalf("expected every cell to die, got %d alive", next.Population())
	}
}

func TestNextRowFromSumIgnoresEightsPlaneInPractice(t *testing.T) {
	// Every reachable total has the eights plane set only for total 9,
	// where the remaining terms are already zero.
	sum := Count{S1: ^Word(0), S8: ^Word(0)}
	if got := NextRowFromSum(sum, ^Word(0)); got != 0 {
		t.Fatalf("expected no survivors at total 9, got %x", got)
	}
	guarded := Count{S1: ^Word(0), S2: ^Word(0), S8: ^Word(0)}
	if got := NextRowFromSum(guarded, 0); got != 0 {
		t.Fatalf("expected the eights plane to mask births, got %x", got)
	}
}

func BenchmarkUpdate(b *testing.B) {
	cur, next := NewBoard(DefaultSeed), NewEmptyBoard()
	for i := 0; i < b.N; i++ {
		next.Update(cur)
		cur, next = next, cur
	}
}

func BenchmarkUpdateParallel(b *testing.B) {
	cur, next := NewBoard(DefaultSeed), NewEmptyBoard()
	for i := 0; i < b.N; i++ {
		next.UpdateParallel(cur, 4)
		cur, next = next, cur
	}
}

func BenchmarkUpdateReference(b *testing.B) {
	cur, next := NewBoard(DefaultSeed), NewEmptyBoard()
	for i := 0; i < b.N; i++ {
		next.UpdateReference(cur)
		cur, next = next, cur
	}
}
