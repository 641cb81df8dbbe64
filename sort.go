package PD4

import (
	"github.com/intel/forGoParallel/parallel"
	"github.com/intel/forGoParallel/psort"
	"sort"
)

type cooSorter struct {
	rows, cols []int
	vals       []float32
}

func (s cooSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(cooSorter)
	return func(i, j, len int) {
		parallel.Do(func() {
			copy(s.rows[i:i+len], src.rows[j:j+len])
		}, func() {
			copy(s.cols[i:i+len], src.cols[j:j+len])
		}, func() {
			copy(s.vals[i:i+len], src.vals[j:j+len])
		})
	}
}

func (s cooSorter) Len() int {
	return len(s.rows)
}

func (s cooSorter) Less(i, j int) bool {
	ri := s.rows[i]
	rj := s.rows[j]
	if ri < rj {
		return true
	}
	if ri > rj {
		return false
	}
	return s.cols[i] < s.cols[j]
}

func (s cooSorter) NewTemp() psort.StableSorter {
	return cooSorter{
		rows: make([]int, len(s.rows)),
		cols: make([]int, len(s.cols)),
		vals: make([]float32, len(s.vals)),
	}
}

func (s cooSorter) SequentialSort(i, j int) {
	sort.Stable(cooSorter{
		rows: s.rows[i:j],
		cols: s.cols[i:j],
		vals: s.vals[i:j],
	})
}

func (s cooSorter) Swap(i, j int) {
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

func cooSort(rows, cols []int, vals []float32) {
	psort.StableSort(cooSorter{rows: rows, cols: cols, vals: vals})
}
