package dumplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zkosar/golammps/dump"
)

func TestTypeCounts(Te *testing.T) {
	S := &dump.Summary{
		TypeCounts: []dump.TypeCount{{Type: 1, Count: 18000}, {Type: 2, Count: 1000}, {Type: 3, Count: 1000}},
	}
	plotname := filepath.Join(Te.TempDir(), "census")
	if err := TypeCounts(S, "Atoms per type", plotname); err != nil {
		Te.Error(err)
	}
	fi, err := os.Stat(plotname + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Error("an empty png came out")
	}
}
