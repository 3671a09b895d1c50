// Package latex compiles a resume Document into a complete LaTeX source file.
package latex

import "strings"

// Escape escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func Escape(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeURL escapes characters that would end or corrupt the URL argument of
// \href. The set is narrower than Escape: hyperref reads its argument near
// verbatim, so only comment, parameter, grouping, and alignment characters
// need a backslash, and replacing them with text commands would change the
// link target.
func EscapeURL(url string) string {
	if url == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(url) * 2)

	for _, r := range url {
		switch r {
		case '%', '#', '&', '{', '}':
			result.WriteByte('\\')
			result.WriteRune(r)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
