package lammps

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

//The format rule is per value, not per column: ids and type codes must
//come out without decimal points, fractional coordinates with them.
func TestFormatValue(Te *testing.T) {
	cases := map[float64]string{
		3.0:   "3",
		3.5:   "3.5",
		-3.25: "-3.25",
		0.0:   "0",
		-60.9: "-60.9",
		120:   "120",
	}
	for in, want := range cases {
		if got := formatValue(in); got != want {
			Te.Errorf("formatValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteRow(Te *testing.T) {
	var b strings.Builder
	writeRow(&b, []float64{1, 1, 2, 3.0, -3.25, 0.0})
	if b.String() != "1 1 2 3 -3.25 0\n" {
		Te.Errorf("row rendered as %q", b.String())
	}
}

func TestSectionString(Te *testing.T) {
	T := Table{{1, 1, 1, 2}, {2, 1, 2, 3}}
	s := &Section{Name: "bonds", Table: T}
	got := s.String()
	want := "Bonds\n\n1 1 1 2\n2 1 2 3\n\n"
	if got != want {
		Te.Errorf("section rendered as %q, want %q", got, want)
	}
	styled := &Section{Name: "Atoms", Style: "ANGLE", Table: Table{{1, 1, 1, 0, 0, 0}}}
	if !strings.HasPrefix(styled.String(), "Atoms # angle\n\n") {
		Te.Errorf("styled section rendered as %q", styled.String())
	}
	var absent *Section
	if absent.String() != "" {
		Te.Error("nil section should render to nothing")
	}
	if (&Section{Name: "Bonds"}).String() != "" {
		Te.Error("empty section should render to nothing")
	}
}

func TestTypeCount(Te *testing.T) {
	T := Table{{1, 1}, {2, 2}, {3, 3}, {4, 1}, {5, 2}}
	if n := T.TypeCount(); n != 3 {
		Te.Errorf("TypeCount = %d, want 3", n)
	}
	if n := (Table{}).TypeCount(); n != 0 {
		Te.Errorf("empty table TypeCount = %d, want 0", n)
	}
}

func TestDenseRoundTrip(Te *testing.T) {
	T := Table{{1, 1, 1, 0.5, -0.5, 0}, {2, 2, 2, 1.5, -2, 3}}
	back := TableFromDense(T.Dense())
	if len(back) != len(T) {
		Te.Fatalf("row count changed: %d vs %d", len(back), len(T))
	}
	for i := range T {
		if !floats.Equal(T[i], back[i]) {
			Te.Errorf("row %d changed: %v vs %v", i, T[i], back[i])
		}
	}
}

func TestTableCheck(Te *testing.T) {
	ragged := Table{{1, 1, 2}, {2, 1}}
	if err := ragged.check(); err == nil {
		Te.Error("ragged table should not pass check")
	}
	thin := Table{{1}}
	if err := thin.check(); err == nil {
		Te.Error("single-column table should not pass check")
	}
}
