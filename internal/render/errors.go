// Package render rasterizes compiled PDF pages into PNG images for preview.
package render

import "fmt"

// RenderError represents a failure to parse or rasterize a PDF page. A
// failed page affects only that page; other pages render independently.
type RenderError struct {
	Message string
	Page    int
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Page > 0 {
		if e.Cause != nil {
			return fmt.Sprintf("render error: page %d: %s: %v", e.Page, e.Message, e.Cause)
		}
		return fmt.Sprintf("render error: page %d: %s", e.Page, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
