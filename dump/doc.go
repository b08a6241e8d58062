/*
 * doc.go, part of golammps.
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

//Package dump reads LAMMPS trajectory dump files, either one frame at a
//time through DumpR, or wholesale through Decode, which turns a
//trajectory into a dense [frames, natoms, 4] float32 array of
//(type, x, y, z) records plus a summary report. The text stores atoms
//in whatever order LAMMPS felt like writing them; the decoder re-indexes
//every record by atom id, so a slot in the array always means the same
//atom.
//
//Dumps grow large quickly. The reader works through a forward-only line
//cursor, so memory is bounded by one frame, and Decode can spread frame
//parsing over several workers, since frames are independent of each
//other. Compressed dumps (gzip, zstd, lzw) are read transparently,
//selected by the file extension.
package dump
