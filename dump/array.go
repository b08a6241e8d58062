/*
 * array.go, part of golammps.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//An Array is a decoded trajectory: frames x natoms records of
//(type, x, y, z), stored contiguously as float32. Atom i of frame t
//lives at [t, i, :] where i is the atom id minus one.
type Array struct {
	data   []float32
	frames int
	natoms int
}

//Frames returns the number of frames in the array.
func (A *Array) Frames() int {
	return A.frames
}

//Natoms returns the number of atoms per frame.
func (A *Array) Natoms() int {
	return A.natoms
}

//Raw returns the backing slice, frame-major then atom-major.
func (A *Array) Raw() []float32 {
	return A.data
}

//Bytes returns the in-memory size of the array data.
func (A *Array) Bytes() int64 {
	return int64(len(A.data)) * 4
}

//At returns field (0 type, 1 x, 2 y, 3 z) of the atom with id atom+1 in
//the given frame. Panics if out of range.
func (A *Array) At(frame, atom, field int) float32 {
	if frame >= A.frames {
		panic(fmt.Sprintf("Frame requested (%d) out of range", frame))
	}
	if atom >= A.natoms {
		panic(fmt.Sprintf("Requested atom (%d) out of bounds (%d)", atom, A.natoms))
	}
	return A.data[(frame*A.natoms+atom)*4+field]
}

//FrameView returns a copy of one frame's records, sharing no storage
//with the array.
func (A *Array) FrameView(frame int) []float32 {
	n := A.natoms * 4
	out := make([]float32, n)
	copy(out, A.data[frame*n:(frame+1)*n])
	return out
}

//Frame returns frame t as a natoms x 4 gonum matrix of
//(type, x, y, z), converted to float64.
func (A *Array) Frame(t int) *mat.Dense {
	if t >= A.frames {
		panic(fmt.Sprintf("Frame requested (%d) out of range", t))
	}
	out := make([]float64, A.natoms*4)
	base := t * A.natoms * 4
	for i := range out {
		out[i] = float64(A.data[base+i])
	}
	return mat.NewDense(A.natoms, 4, out)
}

//Coords returns the coordinates of frame t as a natoms x 3 gonum
//matrix, dropping the type column.
func (A *Array) Coords(t int) *mat.Dense {
	if t >= A.frames {
		panic(fmt.Sprintf("Frame requested (%d) out of range", t))
	}
	out := make([]float64, A.natoms*3)
	base := t * A.natoms * 4
	for i := 0; i < A.natoms; i++ {
		out[i*3] = float64(A.data[base+i*4+1])
		out[i*3+1] = float64(A.data[base+i*4+2])
		out[i*3+2] = float64(A.data[base+i*4+3])
	}
	return mat.NewDense(A.natoms, 3, out)
}

//Types returns the type codes of every atom in the first frame, in id
//order. Types are constant along a trajectory, so the first frame is as
//good as any.
func (A *Array) Types() []int {
	out := make([]int, A.natoms)
	for i := 0; i < A.natoms; i++ {
		out[i] = int(A.data[i*4])
	}
	return out
}
