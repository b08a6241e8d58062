/*
 * datafile_read.go, part of golammps.
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
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

//ReadData parses the named data file into a DataFile. The extension
//selects the decompression, as in WriteFile.
func ReadData(name string) (*DataFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{UnableToOpen + ": " + err.Error(), name, []string{"ReadData"}, true}
	}
	defer f.Close()
	var h io.Reader = f
	switch extension(name) {
	case "gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, CError{err.Error(), name, []string{"ReadData"}, true}
		}
		defer zr.Close()
		h = zr
	case "zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, CError{err.Error(), name, []string{"ReadData"}, true}
		}
		defer zr.Close()
		h = zr
	case "lzw":
		lr := lzw.NewReader(f, lzw.MSB, lzwLitwidth)
		defer lr.Close()
		h = lr
	case "flate":
		fr := flate.NewReader(f)
		defer fr.Close()
		h = fr
	}
	D, err := ParseData(h)
	if err != nil {
		return nil, errDecorate(err, "ReadData: "+name)
	}
	return D, nil
}

//ParseData parses a data-file document from r. The counts block is
//checked against the actual section lengths; a mismatch is an error,
//not a warning. The Atoms section is mandatory.
func ParseData(r io.Reader) (*DataFile, error) {
	br := bufio.NewReader(r)
	D := new(DataFile)
	D.created = time.Now()
	counts := make(map[string]int)
	var current *Section
	headerSeen := false
	boxAxes := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			break //EOF with nothing pending
		}
		line = strings.TrimRight(line, "\n")
		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			//blank lines separate blocks; nothing to do
		case !headerSeen:
			headerSeen = true
			if i := strings.Index(line, "Created in:"); i >= 0 {
				if t, perr := time.Parse("2006-01-02", strings.TrimSpace(line[i+len("Created in:"):])); perr == nil {
					D.created = t
				}
			}
		case isCountLine(fields):
			n, _ := strconv.Atoi(fields[0])
			if fields[len(fields)-1] == "types" {
				continue //type counts are derived, not stored
			}
			counts[strings.ToLower(fields[1])] = n
		case isBoxLine(fields):
			lo, err1 := strconv.ParseFloat(fields[0], 64)
			hi, err2 := strconv.ParseFloat(fields[1], 64)
			if err1 != nil || err2 != nil {
				return nil, CError{MalformedData + ": bad box line: " + line, "", []string{"ParseData"}, true}
			}
			switch fields[2] {
			case "xlo":
				D.Box.XLo, D.Box.XHi = lo, hi
			case "ylo":
				D.Box.YLo, D.Box.YHi = lo, hi
			case "zlo":
				D.Box.ZLo, D.Box.ZHi = lo, hi
			}
			boxAxes++
		case isTitleLine(fields):
			current = &Section{Name: fields[0]}
			if len(fields) >= 3 && fields[1] == "#" {
				current.Style = fields[2]
			}
			D.attach(current)
		case current != nil:
			row := make([]float64, len(fields))
			for i, tok := range fields {
				v, perr := strconv.ParseFloat(tok, 64)
				if perr != nil {
					return nil, CError{MalformedData + ": bad record line: " + line, "", []string{"ParseData"}, true}
				}
				row[i] = v
			}
			current.Table = append(current.Table, row)
		default:
			return nil, CError{MalformedData + ": unexpected line: " + line, "", []string{"ParseData"}, true}
		}
		if err != nil {
			break //EOF after a final unterminated line
		}
	}
	if D.Atoms.Absent() {
		return nil, CError{MissingAtoms, "", []string{"ParseData"}, true}
	}
	if boxAxes != 3 {
		return nil, CError{MalformedData + ": incomplete box block", "", []string{"ParseData"}, true}
	}
	for _, s := range D.sections() {
		if s.Absent() {
			continue
		}
		if err := s.Table.check(); err != nil {
			return nil, errDecorate(err, "ParseData")
		}
		name := strings.ToLower(s.Name)
		if declared, ok := counts[name]; ok && declared != len(s.Table) {
			m := fmt.Sprintf("%s: %d %s declared, %d found", MalformedData, declared, name, len(s.Table))
			return nil, CError{m, "", []string{"ParseData"}, true}
		}
	}
	return D, nil
}

//attach stores a parsed section in its fixed slot, or appends it for
//topology kinds beyond the standard four.
func (D *DataFile) attach(s *Section) {
	switch strings.ToLower(s.Name) {
	case "atoms":
		D.Atoms = s
	case "bonds":
		D.Bonds = s
	case "angles":
		D.Angles = s
	case "dihedrals":
		D.Dihedrals = s
	default:
		D.extra = append(D.extra, s)
	}
}

//A counts-block line reads "<int> atoms" or "<int> atom types".
func isCountLine(fields []string) bool {
	if len(fields) != 2 && len(fields) != 3 {
		return false
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return false
	}
	if len(fields) == 3 {
		return fields[2] == "types"
	}
	return !isNumeric(fields[1])
}

//A box line reads "<lo> <hi> xlo xhi" (or the y/z equivalents).
func isBoxLine(fields []string) bool {
	if len(fields) != 4 {
		return false
	}
	switch fields[2] {
	case "xlo", "ylo", "zlo":
		return strings.HasSuffix(fields[3], "hi")
	}
	return false
}

//A title line starts a section: a leading non-numeric word, optionally
//followed by "# <style>".
func isTitleLine(fields []string) bool {
	return !isNumeric(fields[0])
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
