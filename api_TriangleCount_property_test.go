package PD4_test

import (
	"math/rand"
	"testing"

	PD4 "github.com/Iasonaspg/PD4"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func randomGraph(n int, nedges int, seed int64) *PD4.CSR {
	rnd := rand.New(rand.NewSource(seed))
	rows := make([]int, 0, 2*nedges)
	cols := make([]int, 0, 2*nedges)
	for k := 0; k < nedges; k++ {
		u := rnd.Intn(n)
		v := rnd.Intn(n)
		if u == v {
			continue
		}
		rows = append(rows, u, v)
		cols = append(cols, v, u)
	}
	A, err := PD4.NewCSR(n, rows, cols, nil)
	if err != nil {
		panic(err)
	}
	return A
}

func TestTriangleCountProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("parallel count agrees with serial reference for any launch", prop.ForAll(
		func(n, nedges int, seed int64, grid, warp, mult int) bool {
			A := randomGraph(n, nedges, seed)
			if err := A.CheckSymmetry(); err != nil {
				return false
			}
			cfg := PD4.Launch{Grid: grid, Block: warp * mult, Warp: warp}
			nt, err := PD4.TriangleCount(A, cfg)
			if err != nil {
				return false
			}
			return nt == PD4.TriangleCountSerial(A)
		},
		gen.IntRange(1, 48),
		gen.IntRange(0, 200),
		gen.Int64(),
		gen.IntRange(1, 24),
		gen.IntRange(1, 32),
		gen.IntRange(1, 8),
	))

	properties.Property("count is independent of the launch shape", prop.ForAll(
		func(n, nedges int, seed int64, grid1, warp1, grid2, warp2 int) bool {
			A := randomGraph(n, nedges, seed)
			nt1, err := PD4.TriangleCount(A, PD4.Launch{Grid: grid1, Block: 4 * warp1, Warp: warp1})
			if err != nil {
				return false
			}
			nt2, err := PD4.TriangleCount(A, PD4.Launch{Grid: grid2, Block: 4 * warp2, Warp: warp2})
			if err != nil {
				return false
			}
			return nt1 == nt2
		},
		gen.IntRange(1, 48),
		gen.IntRange(0, 200),
		gen.Int64(),
		gen.IntRange(1, 16),
		gen.IntRange(1, 32),
		gen.IntRange(1, 16),
		gen.IntRange(1, 32),
	))

	properties.Property("parallel count agrees with the GraphBLAS check", prop.ForAll(
		func(n, nedges int, seed int64) bool {
			A := randomGraph(n, nedges, seed)
			nt, err := PD4.TriangleCount(A, PD4.DefaultLaunch())
			if err != nil {
				return false
			}
			return nt == PD4.TriangleCountCheck(A)
		},
		gen.IntRange(1, 32),
		gen.IntRange(0, 100),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
