/*
 * datafile.go, part of golammps.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

const lzwLitwidth int = 8

//A DataFile is a complete particle system description: the mandatory
//Atoms section, optional topology sections, and the simulation box.
//The document is produced by String in a fixed order: counts block, box
//block, Atoms, Bonds, Angles, Dihedrals, then any appended sections.
//New topology kinds are appended to that order, never inserted.
type DataFile struct {
	Atoms     *Section
	Bonds     *Section
	Angles    *Section
	Dihedrals *Section
	extra     []*Section
	Box       Box
	created   time.Time
}

//New builds a DataFile from the atoms table and the optional topology
//tables, any of which may be nil. style tags the Atoms section ("angle",
//"bond", "full", ...). spec gives the box; a nil spec means the default,
//a box derived from the atom coordinates with a margin of 1.
func New(atoms, bonds, angles, dihedrals Table, style string, spec BoxSpec) (*DataFile, error) {
	if len(atoms) == 0 {
		return nil, CError{MissingAtoms, "", []string{"New"}, true}
	}
	D := new(DataFile)
	D.created = time.Now()
	for _, t := range []Table{atoms, bonds, angles, dihedrals} {
		if err := t.check(); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	D.Atoms = &Section{Name: "Atoms", Style: style, Table: atoms}
	if bonds != nil {
		D.Bonds = &Section{Name: "Bonds", Table: bonds}
	}
	if angles != nil {
		D.Angles = &Section{Name: "Angles", Table: angles}
	}
	if dihedrals != nil {
		D.Dihedrals = &Section{Name: "Dihedrals", Table: dihedrals}
	}
	if spec == nil {
		spec = FromAtoms{Margin: 1}
	}
	var err error
	D.Box, err = spec.Resolve(atoms)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	return D, nil
}

//AddSection appends one more topology section (say, Impropers) after
//the fixed ones. Sections are rendered in the order they are added.
func (D *DataFile) AddSection(name, style string, T Table) error {
	if err := T.check(); err != nil {
		return errDecorate(err, "AddSection")
	}
	D.extra = append(D.extra, &Section{Name: name, Style: style, Table: T})
	return nil
}

//SetDate overrides the creation date stamped in the counts block.
func (D *DataFile) SetDate(t time.Time) {
	D.created = t
}

//sections returns all sections in the fixed document order. Absent ones
//are included; they render to nothing.
func (D *DataFile) sections() []*Section {
	s := []*Section{D.Atoms, D.Bonds, D.Angles, D.Dihedrals}
	return append(s, D.extra...)
}

//Describe renders the counts block: a header line with the creation
//date, a blank line, and, for each non-absent section in document
//order, its record count and its distinct-type count. An absent section
//contributes no lines at all, not zero-count ones.
func (D *DataFile) Describe() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("LAMMPS Data file -- Created in:%s\n\n", D.created.Format("2006-01-02")))
	for _, s := range D.sections() {
		if s.Absent() {
			continue
		}
		name := strings.ToLower(s.Name)
		b.WriteString(fmt.Sprintf("%d %s\n", len(s.Table), name))
		b.WriteString(fmt.Sprintf("%d %s types\n", s.Table.TypeCount(), strings.TrimSuffix(name, "s")))
	}
	b.WriteByte('\n')
	return b.String()
}

//String yields the full data-file document.
func (D *DataFile) String() string {
	parts := []string{D.Describe(), D.Box.String()}
	for _, s := range D.sections() {
		parts = append(parts, s.String()) //"" for absent sections
	}
	return strings.Join(parts, "")
}

//Lines returns the number of lines in the rendered document.
func (D *DataFile) Lines() int {
	return strings.Count(D.String(), "\n") + 1
}

//WriteFile writes the document to the named file. The file extension
//selects the compression: .gz for gzip, .zst for zstd, .lzw for lzw,
//anything else is written plain. LAMMPS itself reads gzipped data files.
//The optional compressionLevel applies to gzip only.
func (D *DataFile) WriteFile(name string, compressionLevel ...int) error {
	level := flate.DefaultCompression
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return CError{UnableToCreate + ": " + err.Error(), name, []string{"WriteFile"}, true}
	}
	defer f.Close()
	var h io.Writer = f
	var closer io.Closer //only the compressors need closing besides the file itself
	switch extension(name) {
	case "gz":
		zw, err := gzip.NewWriterLevel(f, level)
		if err != nil {
			return CError{err.Error(), name, []string{"WriteFile"}, true}
		}
		h, closer = zw, zw
	case "zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return CError{err.Error(), name, []string{"WriteFile"}, true}
		}
		h, closer = zw, zw
	case "lzw":
		lw := lzw.NewWriter(f, lzw.MSB, lzwLitwidth)
		h, closer = lw, lw
	}
	w := bufio.NewWriter(h)
	if _, err := w.WriteString(D.String()); err != nil {
		return CError{err.Error(), name, []string{"WriteFile"}, true}
	}
	if err := w.Flush(); err != nil {
		return CError{err.Error(), name, []string{"WriteFile"}, true}
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return CError{err.Error(), name, []string{"WriteFile"}, true}
		}
	}
	return nil
}

//extension returns the lowercased last dot-separated token of a file name.
func extension(name string) string {
	temp := strings.Split(name, ".")
	return strings.ToLower(temp[len(temp)-1])
}
