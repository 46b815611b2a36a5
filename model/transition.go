package model

import (
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-bitlife/rules"
)

// NextRowFromSum applies the Life rule to a whole row given its neighbourhood total
func NextRowFromSum(sum Count, state Word) Word {
	return rules.ApplyBitPlaneRules(sum.S1, sum.S2, sum.S4, sum.S8, state)
}

// neighborhood returns the 3x3 totals for row y, wrapping rows at the edges
func (b *Board) neighborhood(y int) Count {
	return FullSum(b.rows[wrap(y-1)], b.rows[y], b.rows[wrap(y+1)])
}

// NextRowState computes the next generation of row y
func (b *Board) NextRowState(y int) Word {
	return NextRowFromSum(b.neighborhood(y), b.rows[y])
}

// NeighborhoodSumAt returns the 3x3 total at (x, y), the cell included
func (b *Board) NeighborhoodSumAt(x, y int) int {
	return b.neighborhood(y).At(x)
}

// Update overwrites b with the generation that follows src
func (b *Board) Update(src *Board) {
	if src == b {
		snapshot := *src
		src = &snapshot
	}
	for y := range Size {
		b.rows[y] = src.NextRowState(y)
	}
}

// UpdateParallel is Update with rows split into bands across workers.
// workers <= 0 uses runtime.NumCPU().
func (b *Board) UpdateParallel(src *Board, workers int) {
	if src == b {
		snapshot := *src
		src = &snapshot
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (Size + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, Size)
		)
		if startRow >= Size {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				b.rows[y] = src.NextRowState(y)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Printf("Error in parallel update: %v", err)
	}
}
