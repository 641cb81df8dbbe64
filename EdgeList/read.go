package EdgeList

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	PD4 "github.com/Iasonaspg/PD4"
)

func isDelimiter(r rune) bool {
	switch r {
	case ',', ';', ' ', '\t':
		return true
	}
	return false
}

// Read parses a delimited text edge list into a symmetric CSR adjacency
// matrix. Every line names one undirected edge as two vertex ids, optionally
// followed by a weight, separated by commas, semicolons, tabs or spaces.
// Lines starting with % or # and blank lines are skipped. indexBase (0 or 1)
// is subtracted from the vertex ids.
//
// Each edge is stored in both directions, self-loops are dropped, and
// duplicate edges collapse, so the result satisfies the preconditions of the
// triangle counting kernels. The node count is the largest vertex id plus one.
func Read(r io.Reader, indexBase int) (*PD4.CSR, error) {
	var rows, cols []int
	n := 0
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 1024*1024), 1024*1024)
	lineno := 0
	for s.Scan() {
		lineno++
		sText := strings.TrimSpace(s.Text())
		if sText == "" || strings.HasPrefix(sText, "%") || strings.HasPrefix(sText, "#") {
			continue
		}
		fields := strings.FieldsFunc(sText, isDelimiter)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("edge list line %v: unexpected number of fields, expected 2 or 3, got %v", lineno, len(fields))
		}
		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edge list line %v: source vertex parse error %w, while parsing %v", lineno, err, fields[0])
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edge list line %v: destination vertex parse error %w, while parsing %v", lineno, err, fields[1])
		}
		src := int(u) - indexBase
		dst := int(v) - indexBase
		if src < 0 || dst < 0 {
			return nil, fmt.Errorf("edge list line %v: vertex id below index base %v", lineno, indexBase)
		}
		if src == dst {
			continue
		}
		if src >= n {
			n = src + 1
		}
		if dst >= n {
			n = dst + 1
		}
		rows = append(rows, src, dst)
		cols = append(cols, dst, src)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return PD4.NewCSR(n, rows, cols, nil)
}
