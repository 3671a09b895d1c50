package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape_EmptyString(t *testing.T) {
	result := Escape("")
	assert.Equal(t, "", result)
}

func TestEscape_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	result := Escape(text)
	assert.Equal(t, text, result)
}

func TestEscape_Backslash(t *testing.T) {
	result := Escape("test\\backslash")
	assert.Equal(t, "test\\textbackslash{}backslash", result)
}

func TestEscape_CurlyBraces(t *testing.T) {
	result := Escape("text{with}braces")
	assert.Equal(t, "text\\{with\\}braces", result)
}

func TestEscape_DollarSign(t *testing.T) {
	result := Escape("cost $100")
	assert.Equal(t, "cost \\$100", result)
}

func TestEscape_Ampersand(t *testing.T) {
	result := Escape("A & B")
	assert.Equal(t, "A \\& B", result)
}

func TestEscape_Percent(t *testing.T) {
	result := Escape("100% complete")
	assert.Equal(t, "100\\% complete", result)
}

func TestEscape_Hash(t *testing.T) {
	result := Escape("issue #123")
	assert.Equal(t, "issue \\#123", result)
}

func TestEscape_Caret(t *testing.T) {
	result := Escape("x^2")
	assert.Equal(t, "x\\textasciicircum{}2", result)
}

func TestEscape_Underscore(t *testing.T) {
	result := Escape("variable_name")
	assert.Equal(t, "variable\\_name", result)
}

func TestEscape_Tilde(t *testing.T) {
	result := Escape("~approx")
	assert.Equal(t, "\\textasciitilde{}approx", result)
}

func TestEscape_MultipleSpecialCharacters(t *testing.T) {
	result := Escape("test${}~&%#^_\\")
	expected := "test\\$\\{\\}\\textasciitilde{}\\&\\%\\#\\textasciicircum{}\\_\\textbackslash{}"
	assert.Equal(t, expected, result)
}

func TestEscape_UnicodeCharacters(t *testing.T) {
	text := "résumé with unicode: α β γ"
	result := Escape(text)
	// Unicode should pass through unchanged
	assert.Equal(t, text, result)
}

func TestEscape_MixedContent(t *testing.T) {
	text := "Built system handling $1M+ requests/day with 99.9% uptime"
	result := Escape(text)
	assert.Contains(t, result, "\\$1M")
	assert.Contains(t, result, "99.9\\%")
	assert.Contains(t, result, "requests/day")
}

func TestEscapeURL_PlainURLUnchanged(t *testing.T) {
	url := "https://example.com/path?q=1"
	assert.Equal(t, url, EscapeURL(url))
}

func TestEscapeURL_CommentAndParameterCharacters(t *testing.T) {
	result := EscapeURL("https://example.com/100%25/page#section")
	assert.Equal(t, "https://example.com/100\\%25/page\\#section", result)
}

func TestEscapeURL_QueryAmpersandAndBraces(t *testing.T) {
	result := EscapeURL("https://example.com/q?a=1&b={2}")
	assert.Equal(t, "https://example.com/q?a=1\\&b=\\{2\\}", result)
}

func TestEscapeURL_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeURL(""))
}
