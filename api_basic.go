package PD4

import "errors"

var (
	// ErrMalformed reports a structurally invalid CSR matrix: a
	// non-monotone row pointer or a column index outside [0, NRows).
	ErrMalformed = errors.New("malformed CSR structure")

	// ErrLaunch reports a launch configuration outside the supported
	// grid/block/warp limits. It is surfaced before any parallel work runs.
	ErrLaunch = errors.New("invalid launch configuration")
)

func try(err error) {
	if err != nil {
		panic(err)
	}
}
