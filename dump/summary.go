package dump

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

//A TypeCount is the number of atoms of one type in the first frame.
type TypeCount struct {
	Type  int
	Count int
}

//A Summary reports what a decode did: the per-type atom census of the
//first frame, the input and output sizes and the wall-clock time spent.
//It is meant for operators, not parsers; the exact text layout is not a
//compatibility surface.
type Summary struct {
	TypeCounts  []TypeCount //sorted by type code
	InputBytes  int64
	OutputBytes int64
	Elapsed     time.Duration
}

func newSummary(census map[int]int, in, out int64, elapsed time.Duration) *Summary {
	S := &Summary{InputBytes: in, OutputBytes: out, Elapsed: elapsed}
	for t, c := range census {
		S.TypeCounts = append(S.TypeCounts, TypeCount{t, c})
	}
	sort.Slice(S.TypeCounts, func(i, j int) bool { return S.TypeCounts[i].Type < S.TypeCounts[j].Type })
	return S
}

//CompressionRatio returns 1 - output/input, i.e. the fraction of the
//input size saved by the dense representation. It can be negative for
//trajectories that were already compressed on disk.
func (S *Summary) CompressionRatio() float64 {
	if S.InputBytes == 0 {
		return 0
	}
	return 1 - float64(S.OutputBytes)/float64(S.InputBytes)
}

const gib = float64(1 << 30)

//String renders the summary report.
func (S *Summary) String() string {
	var b strings.Builder
	for _, tc := range S.TypeCounts {
		b.WriteString(fmt.Sprintf("Number of atoms of type %d:\t%d\n", tc.Type, tc.Count))
	}
	b.WriteString(fmt.Sprintf("Dump file size:\t\t%.2f GB\n", float64(S.InputBytes)/gib))
	b.WriteString(fmt.Sprintf("Array size:\t\t%.2f GB\n", float64(S.OutputBytes)/gib))
	b.WriteString(fmt.Sprintf("Compression level:\t%.2f%%\n", S.CompressionRatio()*100))
	b.WriteString(fmt.Sprintf("Conversion time:\t%.1f seconds\n", S.Elapsed.Seconds()))
	return b.String()
}

//WriteFile writes the report to the named file.
func (S *Summary) WriteFile(name string) error {
	if err := os.WriteFile(name, []byte(S.String()), 0644); err != nil {
		return Error{err.Error(), name, []string{"Summary.WriteFile"}, true}
	}
	return nil
}
