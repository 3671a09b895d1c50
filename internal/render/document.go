package render

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Letter-size fallback when a page carries no MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Document is a parsed PDF ready for page rasterization
type Document struct {
	reader *pdf.Reader
	pages  int
}

// Open parses PDF bytes into a Document. The parser panics on some
// malformed inputs, so parsing is fenced and surfaces a RenderError instead.
func Open(data []byte) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &RenderError{Message: fmt.Sprintf("malformed PDF: %v", r)}
		}
	}()

	reader, rerr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if rerr != nil {
		return nil, &RenderError{Message: "failed to parse PDF", Cause: rerr}
	}
	return &Document{reader: reader, pages: reader.NumPage()}, nil
}

// NumPages reports the page count
func (d *Document) NumPages() int {
	return d.pages
}

// pageGeometry returns the width and height of page n in PDF points
func (d *Document) pageGeometry(n int) (width, height float64) {
	width, height = defaultPageWidth, defaultPageHeight

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return width, height
	}
	box := p.V.Key("MediaBox")
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return width, height
	}

	x0, y0 := box.Index(0).Float64(), box.Index(1).Float64()
	x1, y1 := box.Index(2).Float64(), box.Index(3).Float64()
	if x1 > x0 && y1 > y0 {
		width, height = x1-x0, y1-y0
	}
	return width, height
}

// pageText extracts the positioned text runs of page n
func (d *Document) pageText(n int) []pdf.Text {
	p := d.reader.Page(n)
	if p.V.IsNull() {
		return nil
	}
	return p.Content().Text
}
