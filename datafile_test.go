/*
 * datafile_test.go, part of golammps.
 *
 * Copyright 2022 Zafer Kosar <zkosar{at}itudotedudottr>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package lammps

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats"
)

//ringPolymer builds the tables for a closed bead chain laid out on a
//circle, the same shape used to set up circular-DNA runs: n atoms, and
//n bonds/angles/dihedrals wrapping around the ring.
func ringPolymer(n int) (atoms, bonds, angles, dihedrals Table) {
	r := float64(n) / (2 * math.Pi) //circumference == n, so neighbor beads sit ~1 apart
	atoms = make(Table, n)
	bonds = make(Table, n)
	angles = make(Table, n)
	dihedrals = make(Table, n)
	wrap := func(id int) float64 {
		if id > n {
			id -= n
		}
		return float64(id)
	}
	for i := 0; i < n; i++ {
		a := -math.Pi + 2*math.Pi*float64(i)/float64(n)
		typ := 1.0
		if i < n/10 {
			typ = 2
		} else if i >= n-n/10 {
			typ = 3
		}
		atoms[i] = []float64{float64(i + 1), typ, typ, r * math.Cos(a), r * math.Sin(a), 0}
		bonds[i] = []float64{float64(i + 1), 1, wrap(i + 1), wrap(i + 2)}
		angles[i] = []float64{float64(i + 1), 1, wrap(i + 1), wrap(i + 2), wrap(i + 3)}
		dihedrals[i] = []float64{float64(i + 1), 1, wrap(i + 1), wrap(i + 2), wrap(i + 3), wrap(i + 4)}
	}
	return atoms, bonds, angles, dihedrals
}

func TestDescribe(Te *testing.T) {
	atoms := make(Table, 20000)
	for i := range atoms {
		typ := float64(1 + i%3)
		atoms[i] = []float64{float64(i + 1), typ, typ, 0, 0, 0}
	}
	D, err := New(atoms, nil, nil, nil, "angle", Explicit{-1, 1, -1, 1, -1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	desc := D.Describe()
	if !strings.Contains(desc, "20000 atoms\n") {
		Te.Errorf("no atoms count line in %q", desc)
	}
	if !strings.Contains(desc, "3 atom types\n") {
		Te.Errorf("no atom types line in %q", desc)
	}
	if strings.Contains(desc, "bonds") {
		Te.Errorf("absent bonds got a count line in %q", desc)
	}
}

func TestDocument(Te *testing.T) {
	atoms := Table{
		{1, 1, 1, 0, 0, 0},
		{2, 2, 2, 1.5, -2, 3},
	}
	D, err := New(atoms, nil, nil, nil, "angle", Explicit{-5, 5, -5, 5, -5, 5})
	if err != nil {
		Te.Fatal(err)
	}
	D.SetDate(time.Date(2022, 11, 7, 0, 0, 0, 0, time.UTC))
	want := "LAMMPS Data file -- Created in:2022-11-07\n\n" +
		"2 atoms\n2 atom types\n\n" +
		"-5 5 xlo xhi\n-5 5 ylo yhi\n-5 5 zlo zhi\n\n" +
		"Atoms # angle\n\n" +
		"1 1 1 0 0 0\n2 2 2 1.5 -2 3\n\n"
	if got := D.String(); got != want {
		Te.Errorf("document is\n%q\nwant\n%q", got, want)
	}
	if D.Lines() != 15 {
		Te.Errorf("Lines() = %d, want 15", D.Lines())
	}
}

func TestSectionOrder(Te *testing.T) {
	atoms, bonds, angles, dihedrals := ringPolymer(60)
	D, err := New(atoms, bonds, angles, dihedrals, "angle", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if err := D.AddSection("Impropers", "", Table{{1, 1, 1, 2, 3, 4}}); err != nil {
		Te.Fatal(err)
	}
	doc := D.String()
	last := -1
	for _, name := range []string{"Atoms", "Bonds", "Angles", "Dihedrals", "Impropers"} {
		i := strings.Index(doc, "\n"+name)
		if i < 0 {
			Te.Fatalf("section %s missing from document", name)
		}
		if i < last {
			Te.Errorf("section %s out of order", name)
		}
		last = i
	}
}

func TestAbsentSections(Te *testing.T) {
	atoms, _, angles, _ := ringPolymer(30)
	D, err := New(atoms, nil, angles, nil, "angle", nil)
	if err != nil {
		Te.Fatal(err)
	}
	doc := D.String()
	if strings.Contains(doc, "Bonds") || strings.Contains(doc, "bond") {
		Te.Error("absent bonds section leaked into the document")
	}
	if !strings.Contains(doc, "Angles") {
		Te.Error("angles section missing")
	}
}

func TestMissingAtoms(Te *testing.T) {
	if _, err := New(nil, nil, nil, nil, "", nil); err == nil {
		Te.Error("a data file without atoms should not construct")
	}
}

//Encoding with integer coordinates and parsing the result back must
//recover the tables element for element.
func TestRoundTrip(Te *testing.T) {
	atoms := Table{
		{1, 1, 1, -3, 0, 2},
		{2, 1, 1, 4, 1, -2},
		{3, 2, 2, 0, -5, 0},
	}
	bonds := Table{{1, 1, 1, 2}, {2, 1, 2, 3}}
	D, err := New(atoms, bonds, nil, nil, "angle", nil)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "ring.data")
	if err := D.WriteFile(name); err != nil {
		Te.Fatal(err)
	}
	back, err := ReadData(name)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Atoms.Style != "angle" {
		Te.Errorf("style came back as %q", back.Atoms.Style)
	}
	compareTables(Te, "atoms", atoms, back.Atoms.Table)
	compareTables(Te, "bonds", bonds, back.Bonds.Table)
	if back.Box != D.Box {
		Te.Errorf("box came back as %+v, want %+v", back.Box, D.Box)
	}
	if back.Dihedrals != nil {
		Te.Error("dihedrals appeared out of nowhere")
	}
}

func TestCompressedRoundTrip(Te *testing.T) {
	atoms, bonds, angles, dihedrals := ringPolymer(120)
	D, err := New(atoms, bonds, angles, dihedrals, "angle", nil)
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, ext := range []string{"data", "data.gz", "data.zst", "data.lzw"} {
		name := filepath.Join(dir, "ring."+ext)
		if err := D.WriteFile(name); err != nil {
			Te.Errorf("%s: %v", ext, err)
			continue
		}
		back, err := ReadData(name)
		if err != nil {
			Te.Errorf("%s: %v", ext, err)
			continue
		}
		if back.String() != D.String() {
			Te.Errorf("%s: document changed across the round trip", ext)
		}
	}
}

func TestParseDataRejects(Te *testing.T) {
	headless := "LAMMPS Data file -- Created in:2022-11-07\n\n1 atoms\n1 atom types\n\n" +
		"-1 1 xlo xhi\n-1 1 ylo yhi\n-1 1 zlo zhi\n\nAtoms\n\n1 1 1 0 0 oops\n"
	if _, err := ParseData(strings.NewReader(headless)); err == nil {
		Te.Error("a non-numeric record field should be rejected")
	}
	wrongCount := "LAMMPS Data file -- Created in:2022-11-07\n\n2 atoms\n1 atom types\n\n" +
		"-1 1 xlo xhi\n-1 1 ylo yhi\n-1 1 zlo zhi\n\nAtoms\n\n1 1 1 0 0 0\n"
	if _, err := ParseData(strings.NewReader(wrongCount)); err == nil {
		Te.Error("a count mismatch should be rejected")
	}
	noBox := "LAMMPS Data file -- Created in:2022-11-07\n\n1 atoms\n1 atom types\n\nAtoms\n\n1 1 1 0 0 0\n"
	if _, err := ParseData(strings.NewReader(noBox)); err == nil {
		Te.Error("a missing box block should be rejected")
	}
}

func compareTables(Te *testing.T, what string, want, got Table) {
	Te.Helper()
	if len(want) != len(got) {
		Te.Errorf("%s: %d rows came back, want %d", what, len(got), len(want))
		return
	}
	for i := range want {
		if !floats.Equal(want[i], got[i]) {
			Te.Errorf("%s row %d: %v came back as %v", what, i, want[i], got[i])
		}
	}
}

func BenchmarkEncode(B *testing.B) {
	atoms, bonds, angles, dihedrals := ringPolymer(20000)
	B.ResetTimer()
	for i := 0; i < B.N; i++ {
		D, err := New(atoms, bonds, angles, dihedrals, "angle", nil)
		if err != nil {
			B.Fatal(err)
		}
		_ = D.String()
	}
}

func ExampleDataFile() {
	atoms := Table{
		{1, 1, 1, -1, 0, 0},
		{2, 1, 1, 1, 0, 0},
	}
	bonds := Table{{1, 1, 1, 2}}
	D, err := New(atoms, bonds, nil, nil, "angle", Mirrored{5, 5, 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	D.SetDate(time.Date(2022, 11, 7, 0, 0, 0, 0, time.UTC))
	fmt.Print(D.Describe())
	// Output:
	// LAMMPS Data file -- Created in:2022-11-07
	//
	// 2 atoms
	// 1 atom types
	// 1 bonds
	// 1 bond types
}
