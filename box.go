/*
 * box.go, part of golammps.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

//Box holds the axis-aligned simulation domain bounds.
//The invariant lo < hi holds on every axis for any Box produced by a
//BoxSpec; a Box built by hand is the caller's responsibility.
type Box struct {
	XLo, XHi float64
	YLo, YHi float64
	ZLo, ZHi float64
}

//String renders the box block of a data file: one line per axis in the
//"<lo> <hi> xlo xhi" layout, plus the blank line separating the block
//from the first section.
func (B Box) String() string {
	var b strings.Builder
	axes := [3][3]interface{}{
		{B.XLo, B.XHi, "x"},
		{B.YLo, B.YHi, "y"},
		{B.ZLo, B.ZHi, "z"},
	}
	for _, ax := range axes {
		lo, hi, name := ax[0].(float64), ax[1].(float64), ax[2].(string)
		b.WriteString(fmt.Sprintf("%s %s %slo %shi\n", formatValue(lo), formatValue(hi), name, name))
	}
	b.WriteByte('\n')
	return b.String()
}

func (B Box) check(caller string) error {
	if B.XLo >= B.XHi || B.YLo >= B.YHi || B.ZLo >= B.ZHi {
		return CError{fmt.Sprintf("%s: %+v", WrongBoxBounds, B), "", []string{caller}, true}
	}
	return nil
}

//A BoxSpec produces the simulation box for a data file. The three
//implementations cover the three ways a box can be requested: mirrored
//from the high bounds, fully explicit, or derived from the atom
//coordinates. A spec that would produce a box violating lo < hi on any
//axis resolves to an error.
type BoxSpec interface {
	Resolve(atoms Table) (Box, error)
}

//Mirrored is a box given by its high bounds, with each low bound the
//negative of the corresponding high bound. All high bounds must be
//positive for the box to make sense.
type Mirrored struct {
	XHi, YHi, ZHi float64
}

func (M Mirrored) Resolve(_ Table) (Box, error) {
	B := Box{-M.XHi, M.XHi, -M.YHi, M.YHi, -M.ZHi, M.ZHi}
	return B, B.check("Mirrored.Resolve")
}

//Explicit is a box given by all six bounds.
type Explicit struct {
	XLo, XHi float64
	YLo, YHi float64
	ZLo, ZHi float64
}

func (E Explicit) Resolve(_ Table) (Box, error) {
	B := Box{E.XLo, E.XHi, E.YLo, E.YHi, E.ZLo, E.ZHi}
	return B, B.check("Explicit.Resolve")
}

//FromAtoms derives the box from the coordinate extrema of the atoms
//table: per axis, the minimum minus Margin floored to an integer, and
//the maximum plus Margin ceiled to an integer. Every atom therefore
//lies strictly inside the box. This is the default box mode.
type FromAtoms struct {
	Margin float64
}

func (F FromAtoms) Resolve(atoms Table) (Box, error) {
	if len(atoms) == 0 {
		return Box{}, CError{MissingAtoms, "", []string{"FromAtoms.Resolve"}, true}
	}
	if len(atoms[0]) < 6 {
		return Box{}, CError{NotEnoughFields, "", []string{"FromAtoms.Resolve"}, true}
	}
	var lo, hi [3]float64
	col := make([]float64, len(atoms))
	for ax := 0; ax < 3; ax++ {
		for i, row := range atoms {
			col[i] = row[3+ax] //coordinates start at column 3
		}
		lo[ax] = math.Floor(floats.Min(col) - F.Margin)
		hi[ax] = math.Ceil(floats.Max(col) + F.Margin)
	}
	B := Box{lo[0], hi[0], lo[1], hi[1], lo[2], hi[2]}
	return B, B.check("FromAtoms.Resolve")
}
