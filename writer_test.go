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
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

// writeTestFile writes a small PDF file and returns its contents.
func writeTestFile(t *testing.T, opt *WriterOptions) string {
	t.Helper()

	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7, opt)
	if err != nil {
		t.Fatal(err)
	}

	pages := w.Alloc()
	stmRef := w.Alloc()
	err = w.Put(pages, Dict{
		"Type":  Name("Pages"),
		"Kids":  Array{},
		"Count": Integer(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	stm, err := w.OpenStream(stmRef, Dict{"Type": Name("Test")}, FilterFlate{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = stm.Write([]byte("Hello, World!"))
	if err != nil {
		t.Fatal(err)
	}
	err = stm.Close()
	if err != nil {
		t.Fatal(err)
	}

	err = w.Close(Dict{"Pages": pages})
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestWriterXRef(t *testing.T) {
	out := writeTestFile(t, nil)

	if !strings.HasPrefix(out, "%PDF-1.7\n") {
		t.Errorf("wrong header %q", out[:9])
	}

	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindStringSubmatch(out)
	if m == nil {
		t.Fatal("startxref not found")
	}
	xrefPos, _ := strconv.Atoi(m[1])
	if !strings.HasPrefix(out[xrefPos:], "xref\n0 5\n") {
		t.Fatalf("no xref table at offset %d", xrefPos)
	}

	// objects: 1 pages, 2 stream, 3 stream length, 4 catalog
	lines := strings.Split(out[xrefPos:], "\r\n")
	for i := 1; i <= 4; i++ {
		var pos int
		_, err := fmt.Sscanf(lines[i], "%010d 00000 n", &pos)
		if err != nil {
			t.Fatalf("xref entry %d: %q", i, lines[i])
		}
		prefix := fmt.Sprintf("%d 0 obj\n", i)
		if !strings.HasPrefix(out[pos:], prefix) {
			t.Errorf("xref entry %d points to %q", i, out[pos:pos+len(prefix)])
		}
	}

	for _, want := range []string{
		"/Root 4 0 R",
		"/Size 5",
		"/Type /Catalog",
		"/Length 3 0 R",
		"/Filter /FlateDecode",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestWriterStreamData(t *testing.T) {
	out := writeTestFile(t, nil)

	start := strings.Index(out, "stream\n") + len("stream\n")
	end := strings.Index(out, "\nendstream")
	r, err := zlib.NewReader(strings.NewReader(out[start:end]))
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Hello, World!" {
		t.Errorf("wrong stream data %q", data)
	}

	m := regexp.MustCompile(`3 0 obj\n(\d+)\nendobj`).FindStringSubmatch(out)
	if m == nil || m[1] != strconv.Itoa(end-start) {
		t.Errorf("wrong stream length %v, want %d", m, end-start)
	}
}

func TestWriterHumanReadable(t *testing.T) {
	out := writeTestFile(t, &WriterOptions{HumanReadable: true})
	if strings.Contains(out, "/Filter") {
		t.Error("stream was compressed")
	}
	if !strings.Contains(out, "stream\nHello, World!\nendstream") {
		t.Error("stream data not found")
	}
}

func TestWriterErrors(t *testing.T) {
	w, err := NewWriter(&bytes.Buffer{}, V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}

	var objErr *MalformedObjectError
	err = w.Put(NewReference(1, 0), Integer(1))
	if !errors.As(err, &objErr) {
		t.Errorf("unallocated reference: got %v", err)
	}

	ref := w.Alloc()
	if err := w.Put(ref, Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(ref, Integer(2)); !errors.As(err, &objErr) {
		t.Errorf("duplicate object: got %v", err)
	}

	stmRef := w.Alloc()
	stm, err := w.OpenStream(stmRef, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Put(w.Alloc(), Integer(3)); err == nil {
		t.Error("object written while stream was open")
	}
	stm.Close()

	if err := w.Close(Dict{}); err == nil {
		t.Error("catalog without /Pages accepted")
	}
	if err := w.Close(Dict{"Pages": ref}); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(w.Alloc(), Integer(4)); !errors.Is(err, ErrClosed) {
		t.Errorf("write after close: got %v", err)
	}
	if err := w.Close(Dict{"Pages": ref}); !errors.Is(err, ErrClosed) {
		t.Errorf("second close: got %v", err)
	}
}

func TestCheckVersion(t *testing.T) {
	w, err := NewWriter(&bytes.Buffer{}, V1_4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckVersion(w, "test", V1_4); err != nil {
		t.Error(err)
	}
	err = CheckVersion(w, "optional content", V1_5)
	var verErr *VersionError
	if !errors.As(err, &verErr) || verErr.Earliest != V1_5 {
		t.Errorf("expected a version error, got %v", err)
	}
	if GetVersion(w) != V1_4 {
		t.Errorf("wrong version %s", GetVersion(w))
	}
}

func TestWriterFreeList(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Alloc() // 1, never written
	pages := w.Alloc()
	w.Alloc() // 3, never written
	err = w.Put(pages, Dict{"Type": Name("Pages"), "Kids": Array{}, "Count": Integer(0)})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(Dict{"Pages": pages})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	xref := out[strings.Index(out, "xref\n"):]
	lines := strings.Split(xref, "\r\n")
	want := []string{
		"xref\n0 5\n0000000001 65535 f",
		"0000000003 65535 f",
		"",
		"0000000000 65535 f",
		"",
	}
	for i, entry := range want {
		if entry == "" {
			if !strings.HasSuffix(lines[i], " 00000 n") {
				t.Errorf("entry %d: expected an in-use object, got %q", i, lines[i])
			}
			continue
		}
		if lines[i] != entry {
			t.Errorf("entry %d: got %q, want %q", i, lines[i], entry)
		}
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestWriterCloseFailure(t *testing.T) {
	out := &closeRecorder{}
	w, err := NewWriter(out, V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.closeOrig = true

	pages := w.Alloc()
	err = w.Close(Dict{"Pages": pages, "Bad": Real(math.Inf(1))})
	if err == nil {
		t.Fatal("malformed catalog accepted")
	}
	if out.closed != 1 {
		t.Errorf("underlying file closed %d times, want 1", out.closed)
	}
	if err := w.Put(w.Alloc(), Integer(1)); !errors.Is(err, ErrClosed) {
		t.Errorf("write after failed close: got %v", err)
	}
	if err := w.Abort(); !errors.Is(err, ErrClosed) {
		t.Errorf("abort after failed close: got %v", err)
	}
	if out.closed != 1 {
		t.Errorf("underlying file closed %d times, want 1", out.closed)
	}
}

func TestWriterAbort(t *testing.T) {
	out := &closeRecorder{}
	w, err := NewWriter(out, V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.closeOrig = true
	if _, err := w.OpenStream(w.Alloc(), nil); err != nil {
		t.Fatal(err)
	}
	if err := w.Abort(); err != nil {
		t.Fatal(err)
	}
	if out.closed != 1 {
		t.Error("underlying file was not closed")
	}
}
