package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func testDocument() *types.Document {
	return &types.Document{
		PersonalInfo: types.PersonalInfo{
			Name:     "Grace Hopper",
			Contacts: []string{"grace@example.com", "linkedin.com/in/ghopper", ""},
			Summary:  "Compiler pioneer",
		},
		Experience: []types.Experience{
			{
				Title:           "Rear Admiral",
				Company:         "US Navy",
				Start:           "1943",
				End:             "1986",
				Accomplishments: "<ul><li>Invented the compiler</li><li>Coined the term debugging</li></ul>",
			},
		},
		Education: []types.Education{
			{Degree: "PhD Mathematics", Institution: "Yale", GraduationDate: "1934", GPA: "4.0"},
		},
		Skills: []types.Skill{
			{Category: "Languages", SkillList: "COBOL, FLOW-MATIC"},
		},
	}
}

func TestCompile_Idempotent(t *testing.T) {
	doc := testDocument()
	sections := types.DefaultSections()

	first := Compile(doc, sections)
	second := Compile(doc, sections)
	assert.Equal(t, first, second)
}

func TestCompile_ContainsDocumentSkeleton(t *testing.T) {
	out := Compile(testDocument(), types.DefaultSections())

	assert.Contains(t, out, `\documentclass[11pt]{article}`)
	assert.Contains(t, out, `\begin{document}`)
	assert.Contains(t, out, `\end{document}`)
	assert.Contains(t, out, `\centerline{\Huge Grace Hopper}`)
}

func TestCompile_ContactLineJoinsNonEmpty(t *testing.T) {
	out := Compile(testDocument(), types.DefaultSections())

	assert.Contains(t, out, `\href{mailto:grace@example.com}{grace@example.com}`)
	assert.Contains(t, out, " | ")
	// Blank contact entries are dropped, so exactly one separator
	assert.Equal(t, 1, strings.Count(out, " | "))
}

func TestCompile_SummaryOmittedWhenEmpty(t *testing.T) {
	doc := testDocument()
	doc.PersonalInfo.Summary = ""

	out := Compile(doc, types.DefaultSections())
	assert.NotContains(t, out, `\section*{Summary}`)
}

func TestCompile_RespectsSectionSelection(t *testing.T) {
	doc := testDocument()
	sections := types.DefaultSections()
	for i := range sections {
		if sections[i].ID == "skills" {
			sections[i].Selected = false
		}
	}

	out := Compile(doc, sections)
	assert.NotContains(t, out, `\section*{Skills}`)
	assert.Contains(t, out, `\section*{Experience}`)
}

func TestCompile_RespectsSortOrder(t *testing.T) {
	doc := testDocument()
	sections := types.DefaultSections()
	for i := range sections {
		switch sections[i].ID {
		case "education":
			sections[i].SortOrder = 1
		case "experience":
			sections[i].SortOrder = 2
		}
	}

	out := Compile(doc, sections)
	eduIdx := strings.Index(out, `\section*{Education}`)
	expIdx := strings.Index(out, `\section*{Experience}`)
	require.GreaterOrEqual(t, eduIdx, 0)
	require.GreaterOrEqual(t, expIdx, 0)
	assert.Less(t, eduIdx, expIdx)
}

func TestCompile_EscapesFieldValues(t *testing.T) {
	doc := testDocument()
	doc.Experience[0].Company = "AT&T 100% Labs"

	out := Compile(doc, types.DefaultSections())
	assert.Contains(t, out, `AT\&T 100\% Labs`)
	assert.NotContains(t, out, "AT&T")
}

func TestCompile_EscapesHrefURLArgument(t *testing.T) {
	doc := testDocument()
	doc.PersonalInfo.Contacts = []string{"https://example.com/me%20page"}
	doc.Projects = []types.Project{
		{Name: "A-0 System", URL: "https://example.com/a0#history", Highlights: "<ul><li>Loader design</li></ul>"},
	}

	sections := types.DefaultSections()
	for i := range sections {
		if sections[i].ID == "projects" {
			sections[i].Selected = true
		}
	}

	out := Compile(doc, sections)
	assert.Contains(t, out, `\href{https://example.com/me\%20page}`)
	assert.Contains(t, out, `\href{https://example.com/a0\#history}`)
	assert.NotContains(t, out, `\href{https://example.com/me%20page}`)
}

func TestCompile_EmptyAccomplishmentsEmitsPlaceholderBullet(t *testing.T) {
	doc := testDocument()
	doc.Experience[0].Accomplishments = ""

	out := Compile(doc, types.DefaultSections())
	expIdx := strings.Index(out, `\section*{Experience}`)
	block := out[expIdx:strings.Index(out, `\section*{Education}`)]

	// Never an empty itemize: exactly one placeholder item
	assert.Equal(t, 1, strings.Count(block, `\item`))
	assert.Contains(t, block, placeholderBullet)
}

func TestCompile_MissingRequiredFieldsUsePlaceholders(t *testing.T) {
	doc := testDocument()
	doc.Experience[0].Title = ""
	doc.Experience[0].Company = "  "

	out := Compile(doc, types.DefaultSections())
	assert.Contains(t, out, "Position Title")
	assert.Contains(t, out, "Company Name")
}

func TestCompile_GenericSectionEmitted(t *testing.T) {
	doc := testDocument()
	doc.GenericSections = map[string]types.GenericSection{
		"genericSection0": {
			Title: "Awards",
			Items: []types.GenericItem{
				{Name: "Turing Lecture", Description: "Invited speaker", Details: "<ul><li>1972 lecture</li></ul>"},
			},
		},
	}
	sections := append(types.DefaultSections(), types.Section{
		ID: "genericSection0", DisplayName: "Awards", Selected: true, SortOrder: 5, OriginalOrder: 5, Sortable: true, Removeable: true,
	})

	out := Compile(doc, sections)
	assert.Contains(t, out, `\section*{Awards}`)
	assert.Contains(t, out, "Turing Lecture")
	assert.Contains(t, out, "1972 lecture")
}

func TestCompile_SkillsLines(t *testing.T) {
	out := Compile(testDocument(), types.DefaultSections())
	assert.Contains(t, out, `\textbf{Languages:} COBOL, FLOW-MATIC`)
}
