/*
 * table.go, part of golammps.
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
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//A Table is an ordered sequence of numeric records, one row per record.
//Column 0 holds the 1-based record id and column 1 the integer type code.
//An Atoms table has 6 columns (id, type, molecule-type, x, y, z); a
//topology table (Bonds, Angles, ...) has 2+k columns, k being the number
//of atoms the relation connects.
type Table [][]float64

//TableFromDense copies the contents of a gonum matrix into a new Table.
func TableFromDense(d *mat.Dense) Table {
	r, c := d.Dims()
	T := make(Table, r)
	for i := 0; i < r; i++ {
		T[i] = make([]float64, c)
		mat.Row(T[i], i, d)
	}
	return T
}

//Dense returns a copy of the table as a gonum matrix.
//It panics on an empty table, as gonum does not allow empty matrices.
func (T Table) Dense() *mat.Dense {
	if len(T) == 0 {
		panic("golammps: can't build a Dense from an empty table")
	}
	cols := len(T[0])
	data := make([]float64, 0, len(T)*cols)
	for _, row := range T {
		data = append(data, row...)
	}
	return mat.NewDense(len(T), cols, data)
}

//check verifies that the table is rectangular and each record carries
//at least an id and a type.
func (T Table) check() error {
	if len(T) == 0 {
		return nil
	}
	cols := len(T[0])
	if cols < 2 {
		return CError{NotEnoughFields, "", []string{"Table.check"}, true}
	}
	for _, row := range T {
		if len(row) != cols {
			return CError{MalformedTable, "", []string{"Table.check"}, true}
		}
	}
	return nil
}

//TypeCount returns the number of distinct values in the type column
//(column 1) of the table. An empty table has zero types.
func (T Table) TypeCount() int {
	seen := make(map[float64]bool)
	for _, row := range T {
		seen[row[1]] = true
	}
	return len(seen)
}

//formatValue renders one numeric value as its canonical data-file token:
//without a decimal point when the value is exactly its integer truncation,
//with Go's shortest float representation otherwise. LAMMPS tolerates extra
//whitespace but not spurious decimal points on ids and type codes, so the
//branch is per value, not per column.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < float64(math.MaxInt64) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

//writeRow renders one record as space-separated tokens plus a line break.
func writeRow(b *strings.Builder, row []float64) {
	for i, v := range row {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatValue(v))
	}
	b.WriteByte('\n')
}

//A Section is a named, optionally styled table within a data file.
//A nil Section, or one with an empty table, renders to nothing and is
//skipped everywhere, including the counts block.
type Section struct {
	Name  string
	Style string
	Table Table
}

//Absent returns true if the section contributes nothing to a data file.
func (S *Section) Absent() bool {
	return S == nil || len(S.Table) == 0
}

//String renders the section in the data-file layout: a title line
//("Name" or "Name # style"), a blank line, the records, and one blank
//line separating the section from whatever follows.
func (S *Section) String() string {
	if S.Absent() {
		return ""
	}
	var b strings.Builder
	name := capitalize(S.Name) //a precaution for format requirements
	if S.Style != "" {
		b.WriteString(name + " # " + strings.ToLower(S.Style) + "\n\n")
	} else {
		b.WriteString(name + "\n\n")
	}
	for _, row := range S.Table {
		writeRow(&b, row)
	}
	b.WriteByte('\n')
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
