package PD4

import (
	"fmt"
	"runtime"
)

const WarpSize = 32

const (
	maxGridDim  = 65535
	maxBlockDim = 1024
)

// Launch fixes the shape of one counting run: Grid blocks, each of
// Block threads grouped into warps of Warp lanes. The shape is a tuning
// knob only; the count is identical for every valid configuration.
type Launch struct {
	Grid  int
	Block int
	Warp  int
}

func DefaultLaunch() Launch {
	return Launch{
		Grid:  2 * runtime.GOMAXPROCS(0),
		Block: 8 * WarpSize,
		Warp:  WarpSize,
	}
}

func (cfg Launch) Check() error {
	if cfg.Grid < 1 || cfg.Grid > maxGridDim {
		return fmt.Errorf("%w: grid dimension %v outside [1, %v]", ErrLaunch, cfg.Grid, maxGridDim)
	}
	if cfg.Warp < 1 {
		return fmt.Errorf("%w: warp width %v", ErrLaunch, cfg.Warp)
	}
	if cfg.Block < cfg.Warp || cfg.Block > maxBlockDim {
		return fmt.Errorf("%w: block dimension %v outside [%v, %v]", ErrLaunch, cfg.Block, cfg.Warp, maxBlockDim)
	}
	if cfg.Block%cfg.Warp != 0 {
		return fmt.Errorf("%w: block dimension %v not a multiple of warp width %v", ErrLaunch, cfg.Block, cfg.Warp)
	}
	return nil
}

func (cfg Launch) warpsPerBlock() int {
	return cfg.Block / cfg.Warp
}

func (cfg Launch) totalWarps() int {
	return cfg.Grid * cfg.warpsPerBlock()
}
