package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/types"
)

// documentFile is the on-disk input format: a document with an optional
// section layout. A bare document object is also accepted.
type documentFile struct {
	Document *types.Document `json:"document"`
	Sections []types.Section `json:"sections"`
}

func loadDocumentFile(path string) (*types.Document, []types.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document file %s: %w", path, err)
	}

	var df documentFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, nil, fmt.Errorf("failed to parse document JSON: %w", err)
	}

	if df.Document == nil {
		var doc types.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("failed to parse document JSON: %w", err)
		}
		df.Document = &doc
	}

	if len(df.Sections) == 0 {
		df.Sections = types.DefaultSections()
	}
	return df.Document, df.Sections, nil
}
