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

// GridPool recycles step buffers so a running world does not reallocate
// a grid every generation
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

// Get retrieves a cleared grid of the given size
func (p *GridPool) Get(size int) (*Grid, error) {
	if size < MinGridSize {
		return nil, errors.Wrapf(ErrInvalidDimension, "[GridPool.Get] size %d is below minimum %d", size, MinGridSize)
	}
	g := p.pool.Get().(*Grid)
	g.reset(size)
	return g, nil
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
