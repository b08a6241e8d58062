/*
 * errors.go, part of golammps.
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

import "fmt"

// Error is the interface for errors that all packages in this library implement. The Decorate
// method allows to add and retrieve info from the error, without changing it's type or wrapping
// it around something else. The decorate slice should contain a list of functions in the calling
// stack, plus, for each function, any relevant information, or nothing. If information is to be
// added to an element of the slice, it should be in this format: "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors associated to one input or output file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so
// they can be filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	FileError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other FileError's
}

//errDecorate is a helper function that asserts that the error implements Error and decorates
//it with the caller's name before returning it. It will panic if used with a non-Error error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//CError is the concrete error type for the data-file side of the library.
//It fullfills Error and FileError.
type CError struct {
	message  string
	filename string //the input/output file with problems, or empty string if none.
	deco     []string
	critical bool
}

func (err CError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("golammps data file error: %s", err.message)
	}
	return fmt.Sprintf("golammps data file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the
	//receiver, it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, or an empty string.
func (err CError) FileName() string { return err.filename }

//Format returns the format of the file associated to the error.
func (err CError) Format() string { return "data" }

//Critical returns true if the error is critical, false otherwise.
func (err CError) Critical() bool { return err.critical }

const (
	MissingAtoms    = "Mandatory Atoms table missing or empty"
	MalformedTable  = "Ill-formed record table"
	WrongBoxBounds  = "Box low bound not smaller than high bound"
	MalformedData   = "Ill-formed data file"
	UnableToCreate  = "Unable to create file"
	UnableToOpen    = "Unable to open file"
	NotEnoughFields = "Too few fields in record line"
)
