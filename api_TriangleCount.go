package PD4

import (
	"sync"

	"github.com/intel/forGoParallel/parallel"
)

// TriangleCount returns the exact number of triangles in the undirected
// graph A, using the launch shape cfg. A must hold a symmetric matrix with
// ascending column indices per row and no diagonal entries; this
// precondition is not verified here (see CheckSymmetry for the debug
// validator).
func TriangleCount(A *CSR, cfg Launch) (int, error) {
	var sum Counter
	sum.Reset()
	if err := TriangleCountLaunch(A, cfg, &sum); err != nil {
		return 0, err
	}
	return int(sum.Value()) / 3, nil
}

// TriangleCountLaunch runs one counting pass with a caller-owned
// accumulator. For every edge (r, c) of the upper triangle it adds the
// number of common neighbors of r and c, so every triangle contributes
// once per closing edge: the triangle count is the accumulated total
// divided by 3. The caller is responsible for zeroing total before the
// launch; launches without an intervening Reset accumulate.
func TriangleCountLaunch(A *CSR, cfg Launch, total *Counter) error {
	if err := cfg.Check(); err != nil {
		return err
	}
	if err := A.Check(); err != nil {
		return err
	}
	warps := cfg.warpsPerBlock()
	stride := cfg.totalWarps()
	parallel.Range(0, cfg.Grid, func(low, high int) {
		for block := low; block < high; block++ {
			countBlock(A, block, warps, cfg.Warp, stride, total)
		}
	})
	return nil
}

func countBlock(A *CSR, block, warps, width, stride int, total *Counter) {
	slots := make([]int64, ceilPow2(warps))
	var barrier sync.WaitGroup
	barrier.Add(warps)
	for w := 0; w < warps; w++ {
		go func(w int) {
			defer barrier.Done()
			countRows(A, block*warps+w, width, stride, &slots[w])
		}(w)
	}
	barrier.Wait()
	for half := len(slots) / 2; half > 0; half /= 2 {
		for i := 0; i < half; i++ {
			slots[i] += slots[i+half]
		}
	}
	total.Add(slots[0])
}

func countRows(A *CSR, warp, width, stride int, slot *int64) {
	var g laneGroup
	for row := warp; row < A.NRows; row += stride {
		start := A.RowPtr[row]
		end := A.RowPtr[row+1]
		for base := start; base < end; base += width {
			g.reset()
			for lane := 0; lane < width && base+lane < end; lane++ {
				col := A.ColInd[base+lane]
				if col <= row {
					continue
				}
				if m := closures(A, row, col); m > 0 {
					g.Contribute(m)
				}
			}
			if g.ActiveCount() > 0 {
				*slot += g.sum
			}
		}
	}
}

// closures returns the size of the intersection of the neighbor lists of
// row and col, the number of triangles closing over that edge.
func closures(A *CSR, row, col int) int64 {
	pr := A.RowPtr[row]
	rowEnd := A.RowPtr[row+1]
	matches := int64(0)
	for pc, colEnd := A.RowPtr[col], A.RowPtr[col+1]; pc < colEnd; pc++ {
		x := A.ColInd[pc]
		for pr < rowEnd && A.ColInd[pr] < x {
			pr++
		}
		if pr == rowEnd {
			break
		}
		if A.ColInd[pr] == x {
			matches++
		}
	}
	return matches
}

// laneGroup coalesces the contributions of the lanes active in one
// lock-step iteration into a single warp slot update.
type laneGroup struct {
	active int
	sum    int64
}

func (g *laneGroup) reset() {
	g.active = 0
	g.sum = 0
}

func (g *laneGroup) Contribute(v int64) {
	g.active++
	g.sum += v
}

func (g *laneGroup) ActiveCount() int {
	return g.active
}

func ceilPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// TriangleCountSerial is the sequential reference: the same upper-triangle
// merge walk without the launch machinery. Used by the demo driver and the
// tests to cross-check the parallel kernel.
func TriangleCountSerial(A *CSR) int {
	total := int64(0)
	for row := 0; row < A.NRows; row++ {
		for p := A.RowPtr[row]; p < A.RowPtr[row+1]; p++ {
			if col := A.ColInd[p]; col > row {
				total += closures(A, row, col)
			}
		}
	}
	return int(total) / 3
}
