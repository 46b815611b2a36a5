package model

import "github.com/sheikhrachel/go-bitlife/rules"

// NeighborCount counts the live cells around (x, y) one cell at a time,
// wrapping at every edge. It exists to check the bitwise engine.
func (b *Board) NeighborCount(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			if b.Read(wrap(x+dx), wrap(y+dy)) {
				count++
			}
		}
	}
	return count
}

// UpdatePoint writes the next state of (x, y) computed from src's scalar count
func (b *Board) UpdatePoint(src *Board, x, y int) {
	b.Write(x, y, rules.ApplyConwayRules(src.NeighborCount(x, y), src.Read(x, y)))
}

// UpdateReference applies UpdatePoint to every cell. src must not be b.
func (b *Board) UpdateReference(src *Board) {
	for y := range Size {
		for x := range Size {
			b.UpdatePoint(src, x, y)
		}
	}
}
