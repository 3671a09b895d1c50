package convert

import (
	"github.com/jonathan/resume-studio/internal/types"
)

// ToAIFormat converts a Document into its array-based AI exchange twin.
// List-markup fields become plain string arrays and skill lists are split on
// commas. A projects collection with no meaningful content is omitted from
// the payload entirely so the external service cannot invent one.
func ToAIFormat(doc *types.Document) *types.AIDocument {
	ai := &types.AIDocument{
		PersonalInfo: types.AIPersonalInfo{
			Name:     doc.PersonalInfo.Name,
			Contacts: doc.PersonalInfo.Contacts,
			Summary:  doc.PersonalInfo.Summary,
		},
		Experience: make([]types.AIExperience, 0, len(doc.Experience)),
		Education:  make([]types.AIEducation, 0, len(doc.Education)),
		Skills:     make([]types.AISkill, 0, len(doc.Skills)),
		Projects:   []types.AIProject{},
	}

	for _, exp := range doc.Experience {
		ai.Experience = append(ai.Experience, types.AIExperience{
			Title:           exp.Title,
			Company:         exp.Company,
			Start:           exp.Start,
			End:             exp.End,
			Accomplishments: BulletsFromMarkup(exp.Accomplishments),
		})
	}

	for _, edu := range doc.Education {
		ai.Education = append(ai.Education, types.AIEducation{
			Degree:          edu.Degree,
			Institution:     edu.Institution,
			Location:        edu.Location,
			GraduationDate:  edu.GraduationDate,
			GPA:             edu.GPA,
			Accomplishments: BulletsFromMarkup(edu.Accomplishments),
		})
	}

	for _, skill := range doc.Skills {
		ai.Skills = append(ai.Skills, types.AISkill{
			Category: skill.Category,
			Skills:   SplitSkillList(skill.SkillList),
		})
	}

	if projects := mapProjects(doc.Projects); hasProjectContent(projects) {
		ai.Projects = projects
	}

	return ai
}

// FromAIFormat reconstructs a Document from its AI exchange twin. Fields not
// represented in the AI format are preserved from original unchanged. If the
// AI payload carries no projects, the original projects are preserved so a
// content-free collection that was withheld on the way out survives the
// round trip.
func FromAIFormat(ai *types.AIDocument, original *types.Document) *types.Document {
	result := &types.Document{
		PersonalInfo: types.PersonalInfo{
			Name:     ai.PersonalInfo.Name,
			Contacts: ai.PersonalInfo.Contacts,
			Summary:  ai.PersonalInfo.Summary,
		},
		Experience:      make([]types.Experience, 0, len(ai.Experience)),
		Education:       make([]types.Education, 0, len(ai.Education)),
		Skills:          make([]types.Skill, 0, len(ai.Skills)),
		GenericSections: original.GenericSections,
	}

	for _, exp := range ai.Experience {
		result.Experience = append(result.Experience, types.Experience{
			Title:           exp.Title,
			Company:         exp.Company,
			Start:           exp.Start,
			End:             exp.End,
			Accomplishments: BulletsToMarkup(exp.Accomplishments),
		})
	}

	for _, edu := range ai.Education {
		result.Education = append(result.Education, types.Education{
			Degree:          edu.Degree,
			Institution:     edu.Institution,
			Location:        edu.Location,
			GraduationDate:  edu.GraduationDate,
			GPA:             edu.GPA,
			Accomplishments: BulletsToMarkup(edu.Accomplishments),
		})
	}

	for _, skill := range ai.Skills {
		result.Skills = append(result.Skills, types.Skill{
			Category:  skill.Category,
			SkillList: JoinSkillList(skill.Skills),
		})
	}

	if len(ai.Projects) > 0 {
		result.Projects = make([]types.Project, 0, len(ai.Projects))
		for _, proj := range ai.Projects {
			result.Projects = append(result.Projects, types.Project{
				Name:        proj.Name,
				StartDate:   proj.StartDate,
				EndDate:     proj.EndDate,
				Description: proj.Description,
				Highlights:  BulletsToMarkup(proj.Highlights),
				URL:         proj.URL,
			})
		}
	} else {
		result.Projects = original.Projects
	}

	return result
}

// mapProjects converts project entries to their AI representation
func mapProjects(projects []types.Project) []types.AIProject {
	mapped := make([]types.AIProject, 0, len(projects))
	for _, proj := range projects {
		mapped = append(mapped, types.AIProject{
			Name:        proj.Name,
			StartDate:   proj.StartDate,
			EndDate:     proj.EndDate,
			Description: proj.Description,
			Highlights:  BulletsFromMarkup(proj.Highlights),
			URL:         proj.URL,
		})
	}
	return mapped
}

// hasProjectContent reports whether at least one project carries meaningful
// content (a name, a description, or any highlight bullets)
func hasProjectContent(projects []types.AIProject) bool {
	for _, proj := range projects {
		if proj.Name != "" || proj.Description != "" || len(proj.Highlights) > 0 {
			return true
		}
	}
	return false
}
