package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Word holds one board row, one bit per column.
type Word = uint64

// Size is the side length of the board. It is tied to the bit width of Word:
// rows and columns share the same modulus so that column wraparound is a
// plain rotate.
const Size = 64

const (
	// DefaultSeed is the seed used when none is configured.
	DefaultSeed Word = 383289243938892398

	seedMultiplier Word = 123
	seedIncrement  Word = 561
)

// Board is a Size x Size toroidal grid of cells
type Board struct {
	rows [Size]Word
}

// NextSeed advances the pseudo-random row recurrence by one step.
// Overflow wraps modulo 2^64.
func NextSeed(acc Word) Word {
	return acc*seedMultiplier + seedIncrement
}

// NewBoard creates a board filled from the row recurrence starting at seed.
// The same seed always produces the same board.
func NewBoard(seed Word) *Board {
	b := &Board{}
	b.Fill(seed)
	return b
}

// NewEmptyBoard creates a board with every cell dead
func NewEmptyBoard() *Board {
	return &Board{}
}

// Fill overwrites every row from the recurrence starting at seed
func (b *Board) Fill(seed Word) {
	acc := seed
	for y := range Size {
		acc = NextSeed(acc)
		b.rows[y] = acc
	}
}

// Read returns the state of cell (x, y). Both coordinates must be in [0, Size).
func (b *Board) Read(x, y int) bool {
	return b.rows[y]>>uint(x)&1 == 1
}

// Write sets cell (x, y) to alive (true) or dead (false)
func (b *Board) Write(x, y int, alive bool) {
	if alive {
		b.rows[y] |= 1 << uint(x)
	} else {
		b.rows[y] &^= 1 << uint(x)
	}
}

// Row returns the raw word for row y
func (b *Board) Row(y int) Word {
	return b.rows[y]
}

// SetRow replaces the raw word for row y
func (b *Board) SetRow(y int, w Word) {
	b.rows[y] = w
}

// Clear kills every cell
func (b *Board) Clear() {
	b.rows = [Size]Word{}
}

// CopyFrom overwrites b with the contents of src
func (b *Board) CopyFrom(src *Board) {
	b.rows = src.rows
}

// Equal reports whether both boards hold the same cells
func (b *Board) Equal(other *Board) bool {
	return b.rows == other.rows
}

// Population returns the total number of living cells
func (b *Board) Population() (count int) {
	for _, row := range b.rows {
		count += bits.OnesCount64(row)
	}
	return
}

// Hash returns an MD5 digest of the board rows
func (b *Board) Hash() string {
	h := md5.New()
	var buf [8]byte
	for _, row := range b.rows {
		binary.LittleEndian.PutUint64(buf[:], row)
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// wrap maps any row index onto [0, Size)
func wrap(i int) int {
	return ((i % Size) + Size) % Size
}
