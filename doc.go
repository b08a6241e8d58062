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

/*
Package lammps builds and parses LAMMPS data files.

A data file describes a particle system to be handed to LAMMPS at
simulation start: a counts block, the simulation box boundaries and one
table per section (Atoms, plus optional Bonds, Angles, Dihedrals and
Impropers). This package assembles those tables into the text layout
LAMMPS read_data expects, and can parse such a file back into tables.

	**golammps capabilities**

    Builds LAMMPS data files from numeric record tables, with the
	simulation box given explicitly, mirrored from the high bounds, or
	computed from the atom coordinates themselves.

    Parses data files back into tables (the inverse operation).

    Writes plain or compressed (gzip, zstd, lzw) data files, selected
	by the file extension.

    Reads LAMMPS trajectory dumps into dense float32 arrays, both
	sequentially and concurrently (subpackage dump), and plots the
	per-type particle counts of a decoded trajectory (subpackage
	dumplot).

Tables interoperate with gonum: any section table can be built from, or
viewed as, a gonum mat.Dense.

The library does not try to validate the physics of the system it
writes. A data file produced here is format-correct; whether the bonds
it declares make chemical sense is the caller's business.
*/
package lammps
