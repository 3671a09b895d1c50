package schemas

import (
	_ "embed"
)

// AIDocumentSchema is the JSON Schema for the list-based document shape
// exchanged with LLM providers. The tailored response must parse against it
// before any field flows back into the editing document.
//
//go:embed ai_document.schema.json
var AIDocumentSchema string

// ValidateAIDocument validates a JSON document string against the
// AI-document schema
func ValidateAIDocument(jsonContent string) error {
	return ValidateJSONString(AIDocumentSchema, jsonContent)
}
