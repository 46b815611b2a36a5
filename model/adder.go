package model

import "math/bits"

// Partial is the per-column count (0-3) of one row's three horizontal cells,
// split into its 1s and 2s bit planes.
type Partial struct {
	S1, S2 Word
}

// Count is the per-column 3x3 neighbourhood total (0-9) as four bit planes.
type Count struct {
	S1, S2, S4, S8 Word
}

// At decodes the total for column x
func (c Count) At(x int) int {
	shift := uint(x)
	return int(c.S1>>shift&1) +
		int(c.S2>>shift&1)<<1 +
		int(c.S4>>shift&1)<<2 +
		int(c.S8>>shift&1)<<3
}

// HalfAdd adds two bit planes column by column
func HalfAdd(a, b Word) (sum, carry Word) {
	return a ^ b, a & b
}

// FullAdd adds three bit planes column by column. sum is the parity of the
// inputs and carry their majority.
func FullAdd(a, b, c Word) (sum, carry Word) {
	s1, c1 := HalfAdd(a, b)
	sum, c2 := HalfAdd(s1, c)
	return sum, c1 | c2
}

// PartialSum counts, for every column, the live cells among the column itself
// and its left and right neighbours. Columns wrap around the word.
func PartialSum(row Word) Partial {
	s1, s2 := FullAdd(row, bits.RotateLeft64(row, 1), bits.RotateLeft64(row, -1))
	return Partial{S1: s1, S2: s2}
}

// SumOfPartials combines three row partials into a four-plane total.
func SumOfPartials(above, here, below Partial) Count {
	// ones column: weight 1 with a carry of weight 2
	s1, c2 := FullAdd(above.S1, here.S1, below.S1)
	// twos column: weight 2 with a carry of weight 4
	t2, c4 := FullAdd(above.S2, here.S2, below.S2)
	s2, d4 := HalfAdd(c2, t2)
	s4, s8 := HalfAdd(c4, d4)
	return Count{S1: s1, S2: s2, S4: s4, S8: s8}
}

// FullSum returns the 3x3 neighbourhood total of every column in the middle row.
// The total includes each cell's own state.
func FullSum(above, here, below Word) Count {
	return SumOfPartials(PartialSum(above), PartialSum(here), PartialSum(below))
}
