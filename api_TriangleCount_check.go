package PD4

import (
	GrB "github.com/intel/forGraphBLASGo"
)

func plusOne[T GrB.Number, Din1, Din2 any]() (addition GrB.Monoid[T], multiplication GrB.BinaryOp[T, Din1, Din2], identity T) {
	return GrB.PlusMonoid[T], GrB.Oneb[T, Din1, Din2], 0
}

// TriangleCountCheck recomputes the triangle count of A with GraphBLAS,
// via the Burkhardt method: ntriangles = sum(B .* (B * B)) / 6. It shares
// no code with the CSR kernel, which makes it a useful cross-check, but it
// is far too slow for the hot path.
func TriangleCountCheck(A *CSR) int {
	n := A.NRows
	if n == 0 || A.NNZ == 0 {
		return 0
	}
	rows := make([]int, 0, A.NNZ)
	cols := make([]int, 0, A.NNZ)
	vals := make([]int8, A.NNZ)
	for row := 0; row < n; row++ {
		for p := A.RowPtr[row]; p < A.RowPtr[row+1]; p++ {
			rows = append(rows, row)
			cols = append(cols, A.ColInd[p])
		}
	}
	for i := range vals {
		vals[i] = 1
	}
	RA, err := GrB.MatrixNew[int8](n, n)
	try(err)
	try(RA.Build(rows, cols, vals, nil))
	B, err := GrB.MatrixNew[bool](n, n)
	try(err)
	try(GrB.MatrixApply(B, nil, nil, func(i int8) bool { return i != 0 }, RA, nil))
	try(B.Wait(GrB.Materialize))
	C, err := GrB.MatrixNew[int](n, n)
	try(err)
	semiring := plusOne[int, bool, bool]
	try(GrB.MxM(C, B, nil, semiring, B, B, GrB.DescS))
	var ntriangles int
	try(GrB.MatrixReduce(&ntriangles, nil, GrB.PlusMonoid[int], C, nil))
	return ntriangles / 6
}
