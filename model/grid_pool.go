package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grid buffers when the board is regenerated
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a blank grid from the pool, resized to rows x cols
func (p *GridPool) Get(rows, cols int) (*Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, errors.Wrap(err, "[GridPool.Get] invalid dimensions")
	}
	g := p.pool.Get().(*Grid)
	g.reset(rows, cols)
	return g, nil
}

// Random retrieves a pooled grid and fills it like NewGrid
func (p *GridPool) Random(rows, cols int, aliveProbability float64, src Source) (*Grid, error) {
	g, err := p.Get(rows, cols)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource()
	}
	g.Randomize(aliveProbability, src)
	return g, nil
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
