package diff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func baseDocument() *types.Document {
	return &types.Document{
		PersonalInfo: types.PersonalInfo{
			Name:    "Grace Hopper",
			Summary: "Compiler pioneer",
		},
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Eckert-Mauchly", Accomplishments: "<ul><li>Built A-0</li></ul>"},
			{Title: "Director", Company: "Remington Rand", Accomplishments: "<ul><li>Led FLOW-MATIC</li></ul>"},
		},
		Education: []types.Education{
			{Degree: "PhD", Institution: "Yale", Accomplishments: "<ul><li>Dissertation on irreducibility</li></ul>"},
		},
		Skills: []types.Skill{
			{Category: "Languages", SkillList: "COBOL, FORTRAN"},
		},
		Projects: []types.Project{
			{Name: "A-0 System", Description: "First compiler", Highlights: "<ul><li>Loader-linker design</li></ul>"},
		},
	}
}

func TestGenerateDiff_IdenticalDocumentsYieldNoChanges(t *testing.T) {
	assert.Empty(t, GenerateDiff(baseDocument(), baseDocument()))
}

func TestGenerateDiff_ExperienceFieldChanges(t *testing.T) {
	modified := baseDocument()
	modified.Experience[0].Title = "Systems Engineer"
	modified.Experience[1].Accomplishments = "<ul><li>Led FLOW-MATIC to adoption</li></ul>"

	changes := GenerateDiff(baseDocument(), modified)
	require.Len(t, changes, 2)

	assert.Equal(t, "experience", changes[0].Section)
	assert.Equal(t, "title", changes[0].Field)
	assert.Equal(t, 0, changes[0].ItemIndex)
	assert.Equal(t, "Engineer", changes[0].Before)
	assert.Equal(t, "Systems Engineer", changes[0].After)

	assert.Equal(t, "accomplishments", changes[1].Field)
	assert.Equal(t, 1, changes[1].ItemIndex)
}

func TestChangeRecord_FirstItemIndexSerializes(t *testing.T) {
	modified := baseDocument()
	modified.Experience[0].Title = "Systems Engineer"

	changes := GenerateDiff(baseDocument(), modified)
	require.Len(t, changes, 1)

	// Index 0 must stay on the wire so a change to the first entry is not
	// mistaken for a section-level change
	payload, err := json.Marshal(changes[0])
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"itemIndex":0`)
}

func TestGenerateDiff_SkillsAlignByCategory(t *testing.T) {
	original := baseDocument()
	original.Skills = []types.Skill{
		{Category: "Languages", SkillList: "COBOL, FORTRAN"},
		{Category: "Systems", SkillList: "UNIVAC"},
	}
	modified := baseDocument()
	// Reordered categories with one list change
	modified.Skills = []types.Skill{
		{Category: "Systems", SkillList: "UNIVAC"},
		{Category: "Languages", SkillList: "FORTRAN, COBOL"},
	}

	changes := GenerateDiff(original, modified)
	require.Len(t, changes, 1)
	assert.Equal(t, "skills", changes[0].Section)
	assert.Equal(t, "skillList", changes[0].Field)
	assert.Equal(t, "COBOL, FORTRAN", changes[0].Before)
	assert.Equal(t, "FORTRAN, COBOL", changes[0].After)
}

func TestGenerateDiff_NewSkillCategoryRecordedAsAddition(t *testing.T) {
	modified := baseDocument()
	modified.Skills = append(modified.Skills, types.Skill{
		Category: "Cloud", SkillList: "AWS, GCP",
	})

	changes := GenerateDiff(baseDocument(), modified)
	require.Len(t, changes, 1)
	assert.Equal(t, "category", changes[0].Field)
	assert.Empty(t, changes[0].Before)
	assert.Equal(t, "Cloud: AWS, GCP", changes[0].After)
}

func TestGenerateDiff_UnpairedEntriesAreSkipped(t *testing.T) {
	modified := baseDocument()
	modified.Experience = append(modified.Experience, types.Experience{
		Title: "Advisor", Company: "DEC",
	})

	// The extra entry has no counterpart, so index alignment skips it
	assert.Empty(t, GenerateDiff(baseDocument(), modified))
}

func TestGenerateDiff_ProjectAndEducationAndSummary(t *testing.T) {
	modified := baseDocument()
	modified.Projects[0].Description = "First practical compiler"
	modified.Education[0].Accomplishments = "<ul><li>New algebra results</li></ul>"
	modified.PersonalInfo.Summary = "Compiler pioneer and language designer"

	changes := GenerateDiff(baseDocument(), modified)
	require.Len(t, changes, 3)

	sections := []string{changes[0].Section, changes[1].Section, changes[2].Section}
	assert.Equal(t, []string{"projects", "education", "personalInfo"}, sections)
	assert.Equal(t, "summary", changes[2].Field)
}
