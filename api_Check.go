package PD4

import (
	"fmt"
	"sort"
)

// Check validates the row pointer and column index ranges. It runs once,
// outside the parallel region, and is cheap: O(NRows + NNZ).
func (A *CSR) Check() error {
	n := A.NRows
	if len(A.RowPtr) != n+1 {
		return fmt.Errorf("%w: row pointer has %v entries, expected %v", ErrMalformed, len(A.RowPtr), n+1)
	}
	if A.RowPtr[0] != 0 {
		return fmt.Errorf("%w: row pointer starts at %v", ErrMalformed, A.RowPtr[0])
	}
	if A.RowPtr[n] != A.NNZ || len(A.ColInd) != A.NNZ {
		return fmt.Errorf("%w: row pointer ends at %v, column indices %v, nnz %v", ErrMalformed, A.RowPtr[n], len(A.ColInd), A.NNZ)
	}
	for i := 0; i < n; i++ {
		if A.RowPtr[i] > A.RowPtr[i+1] {
			return fmt.Errorf("%w: row pointer decreases at row %v", ErrMalformed, i)
		}
	}
	for p, col := range A.ColInd {
		if col < 0 || col >= n {
			return fmt.Errorf("%w: column index %v at position %v outside [0, %v)", ErrMalformed, col, p, n)
		}
	}
	return nil
}

// CheckSymmetry is the debug validator for the kernel preconditions the hot
// path assumes without checking: ascending column order within each row, no
// diagonal entries, and symmetric presence of every entry. O(NNZ log NNZ).
func (A *CSR) CheckSymmetry() error {
	if err := A.Check(); err != nil {
		return err
	}
	for row := 0; row < A.NRows; row++ {
		cols := A.Neighbors(row)
		for k, col := range cols {
			if k > 0 && cols[k-1] >= col {
				return fmt.Errorf("%w: row %v column indices not strictly ascending at position %v", ErrMalformed, row, k)
			}
			if col == row {
				return fmt.Errorf("%w: self-loop at row %v", ErrMalformed, row)
			}
			mirror := A.Neighbors(col)
			i := sort.SearchInts(mirror, row)
			if i == len(mirror) || mirror[i] != row {
				return fmt.Errorf("%w: entry (%v, %v) present but (%v, %v) missing", ErrMalformed, row, col, col, row)
			}
		}
	}
	return nil
}
