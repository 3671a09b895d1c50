package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Oversample is the rasterization scale factor. Pages render at 2.5x their
// nominal size so the preview stays sharp when scaled down for display.
const Oversample = 2.5

const noPending = 0

// Renderer rasterizes document pages one at a time. Page requests that
// arrive while a render is in flight occupy a single pending slot; the
// latest request wins and runs when the current render completes.
type Renderer struct {
	mu        sync.Mutex
	doc       *Document
	gen       uint64
	rendering bool
	pending   int
	cache     map[int][]byte
	errs      map[int]error

	faceMu sync.Mutex
	font   *truetype.Font
	faces  map[int]font.Face

	// swapped in tests to isolate scheduling from rasterization
	rasterize func(doc *Document, page int) ([]byte, error)
}

// NewRenderer creates a renderer. The bundled font parses from embedded
// bytes, so failure indicates a build problem rather than bad input.
func NewRenderer() (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, &RenderError{Message: "failed to parse embedded font", Cause: err}
	}
	r := &Renderer{
		cache: make(map[int][]byte),
		errs:  make(map[int]error),
		font:  f,
		faces: make(map[int]font.Face),
	}
	r.rasterize = r.rasterizePage
	return r, nil
}

// SetDocument swaps the document being previewed. The page cache clears
// immediately and results from renders already in flight are discarded.
func (r *Renderer) SetDocument(doc *Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = doc
	r.gen++
	r.pending = noPending
	r.cache = make(map[int][]byte)
	r.errs = make(map[int]error)
}

// Page returns the cached PNG for page n, if rendered
func (r *Renderer) Page(n int) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	png, ok := r.cache[n]
	return png, ok
}

// PageErr returns the recorded render failure for page n, if any
func (r *Renderer) PageErr(n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errs[n]
}

// RequestPage asks for page n to be rendered into the cache. If a render is
// already in flight the request parks in the pending slot, displacing any
// earlier parked request, and runs when the current render finishes.
func (r *Renderer) RequestPage(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil || n < 1 || n > r.doc.NumPages() {
		return
	}
	if r.rendering {
		r.pending = n
		return
	}
	r.rendering = true
	go r.renderLoop(r.doc, r.gen, n)
}

// renderLoop renders n, then drains the pending slot until it is empty.
// Results belonging to a superseded document generation are dropped, but a
// parked request always belongs to the current document (SetDocument clears
// the slot), so draining picks up the current doc and generation.
func (r *Renderer) renderLoop(doc *Document, gen uint64, n int) {
	for {
		png, err := r.rasterize(doc, n)

		r.mu.Lock()
		if r.gen == gen {
			if err != nil {
				r.errs[n] = err
			} else {
				r.cache[n] = png
				delete(r.errs, n)
			}
		}
		if r.pending != noPending {
			n = r.pending
			r.pending = noPending
			doc = r.doc
			gen = r.gen
			r.mu.Unlock()
			continue
		}
		r.rendering = false
		r.mu.Unlock()
		return
	}
}

// RenderAll renders every page of the current document sequentially into the
// cache. A page failure is recorded and rendering continues with the next
// page; the combined failures come back as the returned error.
func (r *Renderer) RenderAll(ctx context.Context) error {
	r.mu.Lock()
	doc := r.doc
	gen := r.gen
	r.mu.Unlock()
	if doc == nil {
		return &RenderError{Message: "no document set"}
	}

	var errs []error
	for n := 1; n <= doc.NumPages(); n++ {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		png, err := r.rasterize(doc, n)

		r.mu.Lock()
		if r.gen == gen {
			if err != nil {
				r.errs[n] = err
			} else {
				r.cache[n] = png
				delete(r.errs, n)
			}
		}
		r.mu.Unlock()

		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// rasterizePage draws the positioned text of one page onto an oversampled
// white canvas and encodes it as PNG. The underlying content parser panics
// on some malformed streams, so the draw is fenced.
func (r *Renderer) rasterizePage(doc *Document, page int) (png []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			png = nil
			err = &RenderError{Message: fmt.Sprintf("page content panicked: %v", rec), Page: page}
		}
	}()

	width, height := doc.pageGeometry(page)
	dc := gg.NewContext(int(width*Oversample), int(height*Oversample))

	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	for _, text := range doc.pageText(page) {
		size := text.FontSize
		if size <= 0 {
			size = 10
		}
		dc.SetFontFace(r.faceFor(size * Oversample))
		// PDF y grows upward from the bottom edge; the canvas is top-down
		dc.DrawString(text.S, text.X*Oversample, (height-text.Y)*Oversample)
	}

	var buf bytes.Buffer
	if encErr := dc.EncodePNG(&buf); encErr != nil {
		return nil, &RenderError{Message: "failed to encode PNG", Page: page, Cause: encErr}
	}
	return buf.Bytes(), nil
}

// faceFor returns a cached font face for the given pixel size
func (r *Renderer) faceFor(size float64) font.Face {
	key := int(size + 0.5)
	if key < 1 {
		key = 1
	}

	r.faceMu.Lock()
	defer r.faceMu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(r.font, &truetype.Options{
		Size:    float64(key),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	r.faces[key] = face
	return face
}
