package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles board buffers between restarts
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get returns an empty board
func (p *BoardPool) Get() *Board {
	b := p.pool.Get().(*Board)
	b.Clear()
	return b
}

func (p *BoardPool) Put(b *Board) {
	p.pool.Put(b)
}
