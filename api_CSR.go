package PD4

import "fmt"

// CSR is an adjacency matrix in compressed sparse row form. RowPtr has
// NRows+1 entries with RowPtr[i] the start offset of row i's entries in
// ColInd and Val, and RowPtr[NRows] == NNZ. For an undirected graph every
// edge appears twice, once per direction, and the matrix is symmetric.
//
// The triangle counting kernels additionally require the column indices of
// each row to be sorted ascending and the diagonal to be empty (no
// self-loops). EdgeList.Read guarantees both; callers constructing a CSR by
// hand can verify with CheckSymmetry.
type CSR struct {
	NRows  int
	NNZ    int
	RowPtr []int
	ColInd []int
	Val    []float32
}

// NewCSR builds a CSR matrix from coordinate tuples. The tuples need not be
// sorted; duplicate coordinates are collapsed, keeping the first value. When
// vals is nil every entry gets the value 1.
func NewCSR(nrows int, rows, cols []int, vals []float32) (*CSR, error) {
	if len(rows) != len(cols) {
		return nil, fmt.Errorf("%w: %v row indices vs %v column indices", ErrMalformed, len(rows), len(cols))
	}
	if vals != nil && len(vals) != len(rows) {
		return nil, fmt.Errorf("%w: %v values for %v coordinates", ErrMalformed, len(vals), len(rows))
	}
	nvals := len(rows)
	r := make([]int, nvals)
	c := make([]int, nvals)
	v := make([]float32, nvals)
	copy(r, rows)
	copy(c, cols)
	if vals == nil {
		for i := range v {
			v[i] = 1
		}
	} else {
		copy(v, vals)
	}
	for i := 0; i < nvals; i++ {
		if r[i] < 0 || r[i] >= nrows || c[i] < 0 || c[i] >= nrows {
			return nil, fmt.Errorf("%w: coordinate (%v, %v) outside %v by %v matrix", ErrMalformed, r[i], c[i], nrows, nrows)
		}
	}

	cooSort(r, c, v)

	nnz := 0
	for i := 0; i < nvals; i++ {
		if i > 0 && r[i] == r[nnz-1] && c[i] == c[nnz-1] {
			continue
		}
		r[nnz] = r[i]
		c[nnz] = c[i]
		v[nnz] = v[i]
		nnz++
	}
	r = r[:nnz]

	rowPtr := make([]int, nrows+1)
	for _, row := range r {
		rowPtr[row+1]++
	}
	for i := 0; i < nrows; i++ {
		rowPtr[i+1] += rowPtr[i]
	}
	return &CSR{
		NRows:  nrows,
		NNZ:    nnz,
		RowPtr: rowPtr,
		ColInd: c[:nnz],
		Val:    v[:nnz],
	}, nil
}

// Neighbors returns the column indices of row as a view into ColInd.
func (A *CSR) Neighbors(row int) []int {
	return A.ColInd[A.RowPtr[row]:A.RowPtr[row+1]]
}

func (A *CSR) Degree(row int) int {
	return A.RowPtr[row+1] - A.RowPtr[row]
}
