package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletsFromMarkup_Empty(t *testing.T) {
	assert.Empty(t, BulletsFromMarkup(""))
	assert.Empty(t, BulletsFromMarkup("   "))
}

func TestBulletsFromMarkup_SimpleList(t *testing.T) {
	bullets := BulletsFromMarkup("<ul><li>First</li><li>Second</li></ul>")
	assert.Equal(t, []string{"First", "Second"}, bullets)
}

func TestBulletsFromMarkup_AttributesOnItemTag(t *testing.T) {
	bullets := BulletsFromMarkup(`<ul><li class="bullet" data-id="1">Shipped the thing</li></ul>`)
	assert.Equal(t, []string{"Shipped the thing"}, bullets)
}

func TestBulletsFromMarkup_StripsNestedMarkup(t *testing.T) {
	bullets := BulletsFromMarkup("<ul><li>Grew revenue <strong>40%</strong> in <em>one</em> year</li></ul>")
	assert.Equal(t, []string{"Grew revenue 40% in one year"}, bullets)
}

func TestBulletsFromMarkup_DropsEmptyItems(t *testing.T) {
	bullets := BulletsFromMarkup("<ul><li>Kept</li><li>   </li><li></li><li>Also kept</li></ul>")
	assert.Equal(t, []string{"Kept", "Also kept"}, bullets)
}

func TestBulletsFromMarkup_TrimsWhitespace(t *testing.T) {
	bullets := BulletsFromMarkup("<ul><li>  padded  </li></ul>")
	assert.Equal(t, []string{"padded"}, bullets)
}

func TestBulletsFromMarkup_MalformedPartialResult(t *testing.T) {
	// Unterminated trailing item: recovered items are retained, no error
	bullets := BulletsFromMarkup("<ul><li>Complete</li><li>Dangling")
	assert.Contains(t, bullets, "Complete")
}

func TestBulletsToMarkup_Empty(t *testing.T) {
	assert.Equal(t, "", BulletsToMarkup(nil))
	assert.Equal(t, "", BulletsToMarkup([]string{}))
	// All-blank input yields an empty string, not an empty wrapper
	assert.Equal(t, "", BulletsToMarkup([]string{"", "   "}))
}

func TestBulletsToMarkup_WrapsItems(t *testing.T) {
	markup := BulletsToMarkup([]string{"First", " Second "})
	assert.Equal(t, "<ul><li>First</li><li>Second</li></ul>", markup)
}

func TestBullets_RoundTrip(t *testing.T) {
	original := []string{"Led a team of 5", "Cut latency by 30%", "Owned the on-call rotation"}
	assert.Equal(t, original, BulletsFromMarkup(BulletsToMarkup(original)))
}

func TestSplitSkillList(t *testing.T) {
	assert.Equal(t, []string{"Go", "Python", "SQL"}, SplitSkillList("Go, Python , SQL"))
	assert.Empty(t, SplitSkillList(""))
	assert.Equal(t, []string{"Go"}, SplitSkillList("Go,,  ,"))
}

func TestJoinSkillList(t *testing.T) {
	assert.Equal(t, "Go, Python", JoinSkillList([]string{"Go", "Python"}))
	assert.Equal(t, "", JoinSkillList(nil))
}
