// Package diff computes field-level change records between an original
// document and its tailored counterpart.
package diff

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/types"
)

// GenerateDiff compares two documents and records every changed field.
// Entry sections align by index; an entry present on only one side is
// skipped. Skills align by category so reordering categories produces no
// spurious changes.
func GenerateDiff(original, modified *types.Document) []types.ChangeRecord {
	var changes []types.ChangeRecord
	changes = append(changes, compareExperience(original.Experience, modified.Experience)...)
	changes = append(changes, compareSkills(original.Skills, modified.Skills)...)
	changes = append(changes, compareProjects(original.Projects, modified.Projects)...)
	changes = append(changes, compareEducation(original.Education, modified.Education)...)
	changes = append(changes, comparePersonalInfo(original.PersonalInfo, modified.PersonalInfo)...)
	return changes
}

func compareExperience(original, modified []types.Experience) []types.ChangeRecord {
	var changes []types.ChangeRecord
	for i := 0; i < len(original) && i < len(modified); i++ {
		orig, mod := original[i], modified[i]

		if orig.Title != mod.Title {
			changes = append(changes, types.ChangeRecord{
				Section:   "experience",
				Field:     "title",
				ItemIndex: i,
				Before:    orig.Title,
				After:     mod.Title,
				Reason:    "Updated job title for better alignment",
			})
		}
		if orig.Accomplishments != mod.Accomplishments {
			changes = append(changes, types.ChangeRecord{
				Section:   "experience",
				Field:     "accomplishments",
				ItemIndex: i,
				Before:    orig.Accomplishments,
				After:     mod.Accomplishments,
				Reason:    "Optimized accomplishments to highlight relevant skills and impact",
			})
		}
		if orig.Company != mod.Company {
			changes = append(changes, types.ChangeRecord{
				Section:   "experience",
				Field:     "company",
				ItemIndex: i,
				Before:    orig.Company,
				After:     mod.Company,
				Reason:    "Updated company information",
			})
		}
	}
	return changes
}

func compareSkills(original, modified []types.Skill) []types.ChangeRecord {
	var changes []types.ChangeRecord

	modByCategory := make(map[string]string, len(modified))
	for _, s := range modified {
		modByCategory[s.Category] = s.SkillList
	}

	origCategories := make(map[string]bool, len(original))
	for i, s := range original {
		origCategories[s.Category] = true
		modList, ok := modByCategory[s.Category]
		if ok && modList != s.SkillList {
			changes = append(changes, types.ChangeRecord{
				Section:   "skills",
				Field:     "skillList",
				ItemIndex: i,
				Before:    s.SkillList,
				After:     modList,
				Reason:    "Reordered skills to prioritize job-relevant technologies",
			})
		}
	}

	// Categories only the tailored side carries are additions
	for _, s := range modified {
		if !origCategories[s.Category] {
			changes = append(changes, types.ChangeRecord{
				Section: "skills",
				Field:   "category",
				Before:  "",
				After:   fmt.Sprintf("%s: %s", s.Category, s.SkillList),
				Reason:  "Added new skill category to match job requirements",
			})
		}
	}

	return changes
}

func compareProjects(original, modified []types.Project) []types.ChangeRecord {
	var changes []types.ChangeRecord
	for i := 0; i < len(original) && i < len(modified); i++ {
		orig, mod := original[i], modified[i]

		if orig.Name != mod.Name {
			changes = append(changes, types.ChangeRecord{
				Section:   "projects",
				Field:     "name",
				ItemIndex: i,
				Before:    orig.Name,
				After:     mod.Name,
				Reason:    "Updated project name for clarity",
			})
		}
		if orig.Description != mod.Description {
			changes = append(changes, types.ChangeRecord{
				Section:   "projects",
				Field:     "description",
				ItemIndex: i,
				Before:    orig.Description,
				After:     mod.Description,
				Reason:    "Enhanced project description to emphasize relevant technologies",
			})
		}
		if orig.Highlights != mod.Highlights {
			changes = append(changes, types.ChangeRecord{
				Section:   "projects",
				Field:     "highlights",
				ItemIndex: i,
				Before:    orig.Highlights,
				After:     mod.Highlights,
				Reason:    "Updated project highlights to showcase relevant achievements",
			})
		}
	}
	return changes
}

func compareEducation(original, modified []types.Education) []types.ChangeRecord {
	var changes []types.ChangeRecord
	for i := 0; i < len(original) && i < len(modified); i++ {
		if original[i].Accomplishments != modified[i].Accomplishments {
			changes = append(changes, types.ChangeRecord{
				Section:   "education",
				Field:     "accomplishments",
				ItemIndex: i,
				Before:    original[i].Accomplishments,
				After:     modified[i].Accomplishments,
				Reason:    "Highlighted relevant coursework and achievements",
			})
		}
	}
	return changes
}

func comparePersonalInfo(original, modified types.PersonalInfo) []types.ChangeRecord {
	if original.Summary == modified.Summary {
		return nil
	}
	return []types.ChangeRecord{{
		Section: "personalInfo",
		Field:   "summary",
		Before:  original.Summary,
		After:   modified.Summary,
		Reason:  "Tailored summary to match job requirements",
	}}
}
