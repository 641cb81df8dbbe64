package EdgeList_test

import (
	"strings"
	"testing"

	PD4 "github.com/Iasonaspg/PD4"
	"github.com/Iasonaspg/PD4/EdgeList"
)

func TestRead(t *testing.T) {
	const input = `# a triangle with a pendant vertex
% comment styles of both SNAP and Matrix Market exports

0 1
1,2
2;0
2	3
`
	A, err := EdgeList.Read(strings.NewReader(input), 0)
	if err != nil {
		t.Fatal(err)
	}
	if A.NRows != 4 {
		t.Errorf("nrows is %v, expected 4", A.NRows)
	}
	if A.NNZ != 8 {
		t.Errorf("nnz is %v, expected 8", A.NNZ)
	}
	if err = A.CheckSymmetry(); err != nil {
		t.Error(err)
	}
	if nt := PD4.TriangleCountSerial(A); nt != 1 {
		t.Errorf("ntriangles is %v, expected 1", nt)
	}
}

func TestReadOneBased(t *testing.T) {
	const input = "1 2\n2 3\n3 1\n"
	A, err := EdgeList.Read(strings.NewReader(input), 1)
	if err != nil {
		t.Fatal(err)
	}
	if A.NRows != 3 {
		t.Errorf("nrows is %v, expected 3", A.NRows)
	}
	if nt := PD4.TriangleCountSerial(A); nt != 1 {
		t.Errorf("ntriangles is %v, expected 1", nt)
	}
}

func TestReadWeightsSelfLoopsDuplicates(t *testing.T) {
	const input = `0 1 0.5
1 0 2.5
1 1 1.0
1 2 1.0
`
	A, err := EdgeList.Read(strings.NewReader(input), 0)
	if err != nil {
		t.Fatal(err)
	}
	// the duplicate 0-1 edge and the 1-1 self-loop are dropped
	if A.NNZ != 4 {
		t.Errorf("nnz is %v, expected 4", A.NNZ)
	}
	if err = A.CheckSymmetry(); err != nil {
		t.Error(err)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"too many fields", "0 1 2 3\n"},
		{"one field", "7\n"},
		{"not a number", "0 x\n"},
		{"below index base", "0 1\n"},
	}
	for _, c := range cases {
		base := 0
		if c.name == "below index base" {
			base = 1
		}
		if _, err := EdgeList.Read(strings.NewReader(c.input), base); err == nil {
			t.Errorf("%v: expected an error", c.name)
		}
	}
}
