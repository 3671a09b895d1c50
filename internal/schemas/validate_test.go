package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addressSchema = `{
	"type": "object",
	"required": ["street", "city"],
	"properties": {
		"street": { "type": "string" },
		"city": { "type": "string" },
		"zip": { "type": "string" }
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(addressSchema, `{"street": "1 Main St", "city": "Arlington"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(addressSchema, `{"street": "1 Main St"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "city")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(addressSchema, `{"street": 42, "city": "Arlington"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "street", validationErr.Errors[0].Field)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(addressSchema, `{ not json }`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateAIDocument_Valid(t *testing.T) {
	doc := `{
		"personalInfo": {
			"name": "Grace Hopper",
			"contacts": ["grace@example.com"],
			"summary": "Compiler pioneer"
		},
		"experience": [
			{
				"title": "Rear Admiral",
				"company": "US Navy",
				"start": "1943",
				"end": "1986",
				"accomplishments": ["Invented the compiler"]
			}
		],
		"skills": [
			{"category": "Languages", "skills": ["COBOL", "FLOW-MATIC"]}
		]
	}`

	assert.NoError(t, ValidateAIDocument(doc))
}

func TestValidateAIDocument_MissingPersonalInfo(t *testing.T) {
	err := ValidateAIDocument(`{"experience": []}`)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateAIDocument_AccomplishmentsMustBeArray(t *testing.T) {
	doc := `{
		"personalInfo": {"name": "Grace Hopper"},
		"experience": [
			{"title": "Engineer", "accomplishments": "<ul><li>not a list</li></ul>"}
		]
	}`

	err := ValidateAIDocument(doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors[0].Field, "accomplishments")
}

func TestValidateAIDocument_TolerantOfChangesArray(t *testing.T) {
	doc := `{
		"personalInfo": {"name": "Grace Hopper"},
		"changes": [
			{"section": "experience", "field": "title", "itemIndex": 0, "before": "a", "after": "b", "reason": "alignment"}
		]
	}`

	assert.NoError(t, ValidateAIDocument(doc))
}
