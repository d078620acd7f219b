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

package document

import (
	"github.com/ulebule/pdf"
	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"
)

// PDF 2.0 sections: 14.3.2

var xDefault = language.MustParse("x-default")

// writeMetadata writes the document title and author as an XMP metadata
// stream.
func (d *Document) writeMetadata() (pdf.Reference, error) {
	if err := pdf.CheckVersion(d.Out, "XMP metadata stream", pdf.V1_4); err != nil {
		return 0, err
	}

	dc := &xmp.DublinCore{}
	if d.opt.Title != "" {
		dc.Title.Set(xDefault, d.opt.Title)
	}
	if d.opt.Author != "" {
		dc.Creator.Append(xmp.NewProperName(d.opt.Author))
	}
	now := d.now()
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(now)
	basic.ModifyDate = xmp.NewDate(now)

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic)
	if err != nil {
		return 0, err
	}

	ref := d.Out.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	body, err := d.Out.OpenStream(ref, dict, pdf.FilterFlate{})
	if err != nil {
		return 0, err
	}
	err = packet.Write(body, &xmp.PacketOptions{Pretty: d.opt.HumanReadable})
	if err != nil {
		body.Close()
		return 0, err
	}
	err = body.Close()
	if err != nil {
		return 0, err
	}
	return ref, nil
}
