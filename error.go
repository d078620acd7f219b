// github.com/ulebule/pdf - a library for assembling PDF files
// Copyright (C) 2026  The ulebule/pdf Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when an object is written to a file after
// the file has been closed.
var ErrClosed = errors.New("PDF file already closed")

// Error is an error with a fixed message.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf returns an [Error] with a formatted message.
func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...))
}

// VersionError is returned when trying to use a feature in a PDF file which
// is not supported by the PDF version used.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("%s requires PDF version %s or newer", err.Operation, err.Earliest)
}

// MalformedObjectError indicates that an object cannot be represented
// in a PDF file.
type MalformedObjectError struct {
	Ref Reference
	Err error
}

func (err *MalformedObjectError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Ref != 0 {
		tail = " (in object " + err.Ref.String() + ")"
	}
	return "invalid PDF object" + middle + tail
}

func (err *MalformedObjectError) Unwrap() error {
	return err.Err
}
