/*
 * dump.go, part of golammps.
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

package dump

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	lammps "github.com/zkosar/golammps"
)

//Every frame of a dump starts with this many description lines; the
//fourth one declares the atom count.
const HeaderLines = 9

const lzwLitwidth int = 8

//A Frame is one timestep's snapshot. Data holds natoms records of
//(type, x, y, z), indexed by atom id minus one, regardless of the order
//in which the atoms appeared in the text.
type Frame struct {
	Timestep int
	Box      [6]float64 //xlo xhi ylo yhi zlo zhi; zero when the header didn't carry them
	Data     []float32
}

//Natoms returns the number of atoms in the frame.
func (F *Frame) Natoms() int {
	return len(F.Data) / 4
}

//At returns the field (0 type, 1 x, 2 y, 3 z) for the atom with id atom+1.
//Panics if out of range.
func (F *Frame) At(atom, field int) float32 {
	return F.Data[atom*4+field]
}

//DumpR reads a LAMMPS trajectory dump, one frame at a time, through a
//forward-only line cursor. Memory use is bounded by one frame, not the
//whole file.
type DumpR struct {
	f         *os.File
	z         io.ReadCloser //decompressor, nil for plain files
	h         *bufio.Reader
	natoms    int //0 until the first header has been read
	filename  string
	readable  bool
	inputSize int64
}

//New opens the named dump file for reading. The optional format string
//overrides the compression deduced from the file extension: "gz", "zst"
//and "lzw" are understood, anything else is read as plain text. Nothing
//is read from the file until the first call to Next.
func New(name string, format ...string) (*DumpR, error) {
	D := new(DumpR)
	D.filename = name
	var err error
	D.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"os.Open", "New"}, true}
	}
	if fi, err := D.f.Stat(); err == nil {
		D.inputSize = fi.Size()
	}
	fk := extension(name)
	if len(format) > 0 && format[0] != "" {
		fk = strings.ToLower(format[0])
	}
	reader := bufio.NewReader(D.f)
	switch fk {
	case "gz":
		zr, err := gzip.NewReader(reader)
		if err != nil {
			D.f.Close()
			return nil, Error{err.Error(), name, []string{"gzip.NewReader", "New"}, true}
		}
		D.z = zr
	case "zst":
		zr, err := zstd.NewReader(reader)
		if err != nil {
			D.f.Close()
			return nil, Error{err.Error(), name, []string{"zstd.NewReader", "New"}, true}
		}
		D.z = zr.IOReadCloser()
	case "lzw":
		D.z = lzw.NewReader(reader, lzw.MSB, lzwLitwidth)
	case "flate":
		D.z = flate.NewReader(reader)
	default:
		if len(format) > 0 && format[0] != "" {
			//asked for something we don't know; plain text it is.
			log.Printf("Format string %s not supported. %s will be assumed to be a plain dump file", fk, name)
		}
	}
	if D.z != nil {
		D.h = bufio.NewReader(D.z)
	} else {
		D.h = reader
	}
	D.readable = true
	return D, nil
}

//Readable returns true if it is possible to call Next on the handle.
func (D *DumpR) Readable() bool {
	return D.readable
}

//Len returns the number of atoms per frame. It is zero until the first
//frame header has been read.
func (D *DumpR) Len() int {
	return D.natoms
}

//InputSize returns the on-disk size of the dump file, in bytes.
func (D *DumpR) InputSize() int64 {
	return D.inputSize
}

//Close closes the handle and marks it as unreadable.
func (D *DumpR) Close() {
	if !D.readable {
		return
	}
	if D.z != nil {
		D.z.Close()
	}
	D.f.Close()
	D.readable = false
}

//readLine returns the next line without its terminator. io.EOF comes
//back unwrapped so callers can tell a normal end of trajectory from a
//real failure.
func (D *DumpR) readLine() (string, error) {
	line, err := D.h.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			//a final line without a newline is still a line
			return line, nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}

//readHeader collects the fixed 9-line frame header. An EOF on the very
//first line is the normal end of the trajectory.
func (D *DumpR) readHeader(header []string) error {
	for i := 0; i < HeaderLines; i++ {
		line, err := D.readLine()
		if err != nil {
			if err == io.EOF && i == 0 {
				D.Close()
				return newlastFrameError(D.filename, "readHeader")
			}
			return Error{TruncatedHeader + ": " + err.Error(), D.filename, []string{"readHeader"}, true}
		}
		header[i] = line
	}
	return nil
}

//parseHeader extracts what the frame header declares. Only the atom
//count is mandatory; the timestep and box bounds are taken when present
//and left zero otherwise.
func parseHeader(header []string, filename string) (natoms int, timestep int, box [6]float64, err error) {
	natoms, aerr := strconv.Atoi(strings.TrimSpace(header[3]))
	if aerr != nil || natoms <= 0 {
		err = Error{fmt.Sprintf("%s: %q", MalformedHeader, header[3]), filename, []string{"parseHeader"}, true}
		return
	}
	timestep, _ = strconv.Atoi(strings.TrimSpace(header[1]))
	for ax := 0; ax < 3; ax++ {
		fields := strings.Fields(header[5+ax])
		if len(fields) < 2 {
			continue
		}
		lo, err1 := strconv.ParseFloat(fields[0], 64)
		hi, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 == nil && err2 == nil {
			box[2*ax], box[2*ax+1] = lo, hi
		}
	}
	return natoms, timestep, box, nil
}

//parseAtomLine parses one body line "id type x y z ..." and stores
//(type, x, y, z) at the id's slot in buf. Everything past the first
//five fields is ignored. buf may be nil, in which case the line is
//validated and discarded.
func parseAtomLine(line string, natoms int, buf []float32, filename string) error {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return Error{fmt.Sprintf("%s: %q", TooFewFields, line), filename, []string{"parseAtomLine"}, true}
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Error{fmt.Sprintf("Can't parse atom id %q: %s", fields[0], err.Error()), filename, []string{"parseAtomLine"}, true}
	}
	if id < 1 || id > natoms {
		return Error{fmt.Sprintf("%s: id %d, %d atoms declared", IDOutOfRange, id, natoms), filename, []string{"parseAtomLine"}, true}
	}
	var vals [4]float32
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil {
			return Error{fmt.Sprintf("Can't parse field %d of atom %d: %s", i+1, id, err.Error()), filename, []string{"parseAtomLine"}, true}
		}
		vals[i] = float32(v)
	}
	if buf != nil {
		copy(buf[(id-1)*4:(id-1)*4+4], vals[:])
	}
	return nil
}

//Next reads the next frame of the trajectory into dest. A nil dest
//skips the frame without materializing it; the frame is still checked
//for correctness. A frame declaring a different atom count than the
//first one is a hard error, not a truncation. At the normal end of the
//trajectory the returned error implements lammps.LastFrameError.
func (D *DumpR) Next(dest *Frame) error {
	if !D.readable {
		return Error{TrajUnIniRead, D.filename, []string{"Next"}, true}
	}
	var header [HeaderLines]string
	if err := D.readHeader(header[:]); err != nil {
		return err
	}
	natoms, timestep, box, err := parseHeader(header[:], D.filename)
	if err != nil {
		return err
	}
	if D.natoms == 0 {
		D.natoms = natoms
	} else if natoms != D.natoms {
		m := fmt.Sprintf("%s: first %d, now %d", InconsistentFrames, D.natoms, natoms)
		return Error{m, D.filename, []string{"Next"}, true}
	}
	var buf []float32
	if dest != nil {
		if cap(dest.Data) < natoms*4 {
			dest.Data = make([]float32, natoms*4)
		}
		dest.Data = dest.Data[:natoms*4]
		dest.Timestep = timestep
		dest.Box = box
		buf = dest.Data
	}
	for i := 0; i < natoms; i++ {
		line, err := D.readLine()
		if err != nil {
			return Error{TruncatedFrame + ": " + err.Error(), D.filename, []string{"Next"}, true}
		}
		if err := parseAtomLine(line, natoms, buf, D.filename); err != nil {
			return errDecorate(err, "Next")
		}
	}
	return nil
}

//Decode reads the whole trajectory in the named file, discarding the
//first skip frames, and returns the remaining frames as a dense
//[frames, natoms, 4] array of (type, x, y, z), together with a summary
//of the conversion. The optional workers argument decodes frames
//concurrently when larger than one; the resulting array is identical to
//the sequential one. Any malformed input aborts the decode with no
//array returned.
func Decode(name string, skip int, workers ...int) (*Array, *Summary, error) {
	start := time.Now()
	if skip < 0 {
		return nil, nil, Error{NegativeSkip, name, []string{"Decode"}, true}
	}
	nw := 1
	if len(workers) > 0 && workers[0] > 1 {
		nw = workers[0]
	}
	D, err := New(name)
	if err != nil {
		return nil, nil, errDecorate(err, "Decode")
	}
	defer D.Close()
	//The first frame is always materialized: the summary's type census
	//comes from it even when it is skipped.
	first := new(Frame)
	if err := D.Next(first); err != nil {
		return nil, nil, errDecorate(err, "Decode")
	}
	census := typeCensus(first)
	var data []float32
	var frames int
	if nw > 1 {
		data, frames, err = D.decodeConc(first, skip, nw)
	} else {
		data, frames, err = D.decodeSeq(first, skip)
	}
	if err != nil {
		return nil, nil, err
	}
	arr := &Array{data: data, frames: frames, natoms: D.Len()}
	sum := newSummary(census, D.inputSize, arr.Bytes(), time.Since(start))
	return arr, sum, nil
}

//decodeSeq reads every frame after the already-read first one, keeping
//those past the skip mark.
func (D *DumpR) decodeSeq(first *Frame, skip int) ([]float32, int, error) {
	var data []float32
	var frames int
	if skip == 0 {
		data = append(data, first.Data...)
		frames++
	}
	fr := new(Frame)
	for i := 1; ; i++ {
		var dest *Frame
		if i >= skip {
			dest = fr
		}
		err := D.Next(dest)
		if err != nil {
			if _, ok := err.(lammps.LastFrameError); ok {
				break
			}
			return nil, 0, errDecorate(err, "decodeSeq")
		}
		if dest != nil {
			data = append(data, fr.Data...)
			frames++
		}
	}
	return data, frames, nil
}

//typeCensus counts the atoms of each type in a frame.
func typeCensus(F *Frame) map[int]int {
	census := make(map[int]int)
	for i := 0; i < F.Natoms(); i++ {
		census[int(F.At(i, 0))]++
	}
	return census
}

//extension returns the lowercased last dot-separated token of a file name.
func extension(name string) string {
	temp := strings.Split(name, ".")
	return strings.ToLower(temp[len(temp)-1])
}
