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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// HumanReadable disables stream compression, so that the generated
	// file can be inspected with a text editor.
	HumanReadable bool
}

// Writer represents a PDF file open for writing.
// Use [Create] or [NewWriter] to create a new Writer.
//
// Objects are written to the file as soon as [Writer.Put] is called;
// the cross-reference table and the trailer are written by
// [Writer.Close].
type Writer struct {
	meta MetaInfo

	w         *posWriter
	origW     io.Writer
	closeOrig bool

	nextRef  uint32
	xref     map[uint32]int64
	inStream bool
	closed   bool

	opt WriterOptions
}

var _ Putter = (*Writer)(nil)

// Create creates the named PDF file and opens it for output.  If a previous
// file with the same name exists, it is overwritten.  After writing is
// complete, Close() must be called to write the trailer and to close the
// underlying file.
func Create(name string, ver Version, opt *WriterOptions) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	pdf, err := NewWriter(fd, ver, opt)
	if err != nil {
		fd.Close()
		return nil, err
	}
	pdf.closeOrig = true
	return pdf, nil
}

// NewWriter prepares a PDF file for writing.
//
// The underlying io.Writer is not closed by [Writer.Close].
func NewWriter(w io.Writer, ver Version, opt *WriterOptions) (*Writer, error) {
	versionString, err := ver.ToString()
	if err != nil {
		return nil, err
	}
	if opt == nil {
		opt = &WriterOptions{}
	}

	pdf := &Writer{
		meta: MetaInfo{
			Version: ver,
			Trailer: Dict{},
		},
		w:       &posWriter{w: bufio.NewWriter(w)},
		origW:   w,
		nextRef: 1,
		xref:    make(map[uint32]int64),
		opt:     *opt,
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", versionString)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// GetMeta implements the [Putter] interface.
func (pdf *Writer) GetMeta() *MetaInfo {
	return &pdf.meta
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	res := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return res
}

// Put writes an indirect object to the PDF file.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if err := pdf.startObject(ref); err != nil {
		return err
	}
	err := writeObject(pdf.w, obj)
	if err != nil {
		return wrapObjectError(ref, err)
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	return err
}

// OpenStream starts writing the stream ref.  The caller must write the
// stream data to the returned io.WriteCloser and close it, before any
// other object is written.
//
// If the writer was created with the HumanReadable option, the filters
// are ignored.
func (pdf *Writer) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	if pdf.opt.HumanReadable {
		filters = nil
	}

	streamDict := make(Dict, len(dict)+3)
	for key, val := range dict {
		streamDict[key] = val
	}
	length := pdf.Alloc()
	streamDict["Length"] = length
	streamDict["Filter"], streamDict["DecodeParms"] = filterInfo(filters)

	if err := pdf.startObject(ref); err != nil {
		return nil, err
	}
	err := streamDict.PDF(pdf.w)
	if err != nil {
		return nil, wrapObjectError(ref, err)
	}
	_, err = pdf.w.Write([]byte("\nstream\n"))
	if err != nil {
		return nil, err
	}
	pdf.inStream = true

	stm := &streamWriter{
		parent: pdf,
		length: length,
		start:  pdf.w.pos,
	}
	var w io.Writer = withoutClose{pdf.w}
	for _, f := range filters {
		fw, err := f.Encode(w)
		if err != nil {
			return nil, err
		}
		stm.filters = append(stm.filters, fw)
		w = fw
	}
	stm.w = w
	return stm, nil
}

// Close writes the cross-reference table and the trailer to the file.
// The catalog dictionary is written as an indirect object and becomes the
// /Root of the document.
//
// If the Writer was created using [Create], the underlying file is closed.
func (pdf *Writer) Close(catalog Dict) error {
	if pdf.closed {
		return ErrClosed
	}
	if catalog == nil {
		return errors.New("missing document catalog")
	}
	if catalog["Pages"] == nil {
		return errors.New("document catalog has no /Pages entry")
	}

	err := pdf.writeTrailer(catalog)
	if err != nil {
		pdf.Abort()
		return err
	}

	pdf.closed = true
	return pdf.closeUnderlying()
}

// Abort stops writing without completing the PDF file.  If the Writer was
// created using [Create], the underlying file is closed.  The output is
// not a valid PDF file.
func (pdf *Writer) Abort() error {
	if pdf.closed {
		return ErrClosed
	}
	pdf.closed = true
	pdf.inStream = false
	return pdf.closeUnderlying()
}

func (pdf *Writer) writeTrailer(catalog Dict) error {
	catalogDict := make(Dict, len(catalog)+1)
	for key, val := range catalog {
		catalogDict[key] = val
	}
	catalogDict["Type"] = Name("Catalog")
	root := pdf.Alloc()
	err := pdf.Put(root, catalogDict)
	if err != nil {
		return err
	}

	trailer := Dict{}
	for key, val := range pdf.meta.Trailer {
		trailer[key] = val
	}
	trailer["Size"] = Integer(pdf.nextRef)
	trailer["Root"] = root

	xRefPos := pdf.w.pos
	err = pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}
	return pdf.w.w.(*bufio.Writer).Flush()
}

func (pdf *Writer) closeUnderlying() error {
	if !pdf.closeOrig {
		return nil
	}
	pdf.closeOrig = false
	if closer, ok := pdf.origW.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (pdf *Writer) startObject(ref Reference) error {
	if pdf.closed {
		return ErrClosed
	}
	if pdf.inStream {
		return errors.New("cannot write object while a stream is open")
	}
	if ref.Number() == 0 || ref.Number() >= pdf.nextRef {
		return &MalformedObjectError{Ref: ref, Err: errors.New("reference was not allocated")}
	}
	if _, seen := pdf.xref[ref.Number()]; seen {
		return &MalformedObjectError{Ref: ref, Err: errors.New("object already written")}
	}

	pdf.xref[ref.Number()] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number(), ref.Generation())
	return err
}

// writeXRefTable writes a classic cross-reference table.  Object numbers
// which were allocated but never written are linked into the list of free
// objects, with generation 65535 so that they are never reused.
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}

	var free []uint32
	for i := uint32(1); i < pdf.nextRef; i++ {
		if _, ok := pdf.xref[i]; !ok {
			free = append(free, i)
		}
	}
	free = append(free, 0) // the list of free objects ends at object 0

	nextFree := free
	for i := uint32(0); i < pdf.nextRef; i++ {
		pos, ok := pdf.xref[i]
		if ok {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		} else {
			_, err = fmt.Fprintf(pdf.w, "%010d 65535 f\r\n", nextFree[0])
			nextFree = nextFree[1:]
		}
		if err != nil {
			return err
		}
	}
	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

type streamWriter struct {
	parent  *Writer
	w       io.Writer
	filters []io.WriteCloser
	length  Reference
	start   int64
}

func (s *streamWriter) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *streamWriter) Close() error {
	for i := len(s.filters) - 1; i >= 0; i-- {
		err := s.filters[i].Close()
		if err != nil {
			return err
		}
	}

	pdf := s.parent
	length := pdf.w.pos - s.start
	_, err := pdf.w.Write([]byte("\nendstream\nendobj\n"))
	if err != nil {
		return err
	}
	pdf.inStream = false

	return pdf.Put(s.length, Integer(length))
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

type withoutClose struct {
	io.Writer
}

func wrapObjectError(ref Reference, err error) error {
	var objErr *MalformedObjectError
	if errors.As(err, &objErr) && objErr.Ref == 0 {
		objErr.Ref = ref
	}
	return err
}
