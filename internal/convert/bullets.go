// Package convert provides bidirectional mapping between the canonical
// Document model and the array-based AIDocument exchange format.
package convert

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BulletsFromMarkup extracts bullet items from a list-markup fragment.
// Item tags may carry attributes; any markup nested inside an item is
// stripped to plain text. Items that are empty after trimming are dropped.
// Malformed fragments (e.g. an unterminated item tag) yield the items the
// parser could recover; this function never returns an error.
func BulletsFromMarkup(markup string) []string {
	if strings.TrimSpace(markup) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		// The HTML parser recovers from malformed input; a hard error only
		// occurs on reader failure, which cannot happen for a string reader.
		return nil
	}

	var bullets []string
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			bullets = append(bullets, text)
		}
	})

	return bullets
}

// BulletsToMarkup wraps each non-empty trimmed item in a list-item tag and
// concatenates them into a single list fragment. An empty or all-blank input
// yields an empty string, not an empty wrapper.
func BulletsToMarkup(bullets []string) string {
	var items []string
	for _, b := range bullets {
		b = strings.TrimSpace(b)
		if b != "" {
			items = append(items, "<li>"+b+"</li>")
		}
	}

	if len(items) == 0 {
		return ""
	}

	return "<ul>" + strings.Join(items, "") + "</ul>"
}

// SplitSkillList splits a comma-separated skill list, trimming each piece and
// dropping empty pieces
func SplitSkillList(skillList string) []string {
	if strings.TrimSpace(skillList) == "" {
		return nil
	}

	var skills []string
	for _, piece := range strings.Split(skillList, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			skills = append(skills, piece)
		}
	}

	return skills
}

// JoinSkillList is the inverse of SplitSkillList
func JoinSkillList(skills []string) string {
	return strings.Join(skills, ", ")
}
