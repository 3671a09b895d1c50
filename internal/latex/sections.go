package latex

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/convert"
	"github.com/jonathan/resume-studio/internal/types"
)

// placeholderBullet is emitted when an entry has no parsed bullets. The
// engine treats an empty itemize environment as invalid, so a bulleted block
// always contains at least one item.
const placeholderBullet = "Describe your responsibilities and achievements, quantified if possible"

func formatSummary(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}

	return fmt.Sprintf(`\section*{Summary}
{%s}
\vspace{-10pt}`, Escape(summary))
}

func formatExperience(experience []types.Experience) string {
	var sb strings.Builder
	sb.WriteString("% experience section\n")
	sb.WriteString("\\section*{Experience}\n")

	if len(experience) == 0 {
		sb.WriteString(formatExperienceEntry(types.Experience{}))
		return sb.String()
	}

	entries := make([]string, 0, len(experience))
	for _, job := range experience {
		entries = append(entries, formatExperienceEntry(job))
	}
	sb.WriteString(strings.Join(entries, "\n\n"))
	return sb.String()
}

func formatExperienceEntry(job types.Experience) string {
	title := Escape(nonEmpty(job.Title, "Position Title"))
	company := Escape(nonEmpty(job.Company, "Company Name"))
	dateRange := Escape(nonEmpty(job.Start, "Start")) + " -- " + Escape(nonEmpty(job.End, "End"))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\\textbf{%s,} {%s} \\hfill %s \\\\\n", title, company, dateRange))
	sb.WriteString("\\vspace{-9pt}\n")
	writeItemize(&sb, convert.BulletsFromMarkup(job.Accomplishments))
	sb.WriteString("\\vspace{-4pt}")
	return sb.String()
}

func formatEducation(education []types.Education) string {
	var sb strings.Builder
	sb.WriteString("% education section\n")
	sb.WriteString("\\section*{Education}\n")

	if len(education) == 0 {
		sb.WriteString("\\textbf{Degree,} Institution \\hfill Year")
		return sb.String()
	}

	entries := make([]string, 0, len(education))
	for _, edu := range education {
		entries = append(entries, formatEducationEntry(edu))
	}
	sb.WriteString(strings.Join(entries, "\n\n"))
	return sb.String()
}

func formatEducationEntry(edu types.Education) string {
	degree := Escape(nonEmpty(edu.Degree, "Degree"))
	institution := Escape(nonEmpty(edu.Institution, "Institution"))
	date := Escape(nonEmpty(edu.GraduationDate, "Year"))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\\textbf{%s,} %s", degree, institution))
	if edu.Location != "" {
		sb.WriteString(" -- " + Escape(edu.Location))
	}
	sb.WriteString(" \\hfill " + date)
	if edu.GPA != "" {
		sb.WriteString(fmt.Sprintf(" \\\\\nGPA: %s", Escape(edu.GPA)))
	}

	if bullets := convert.BulletsFromMarkup(edu.Accomplishments); len(bullets) > 0 {
		sb.WriteString(" \\\\\n\\vspace{-9pt}\n")
		writeItemize(&sb, bullets)
		sb.WriteString("\\vspace{-4pt}")
	}
	return sb.String()
}

func formatSkills(skills []types.Skill) string {
	var sb strings.Builder
	sb.WriteString("% skills section\n")
	sb.WriteString("\\section*{Skills}\n")

	if len(skills) == 0 {
		sb.WriteString("\\textbf{Category:} Skill One, Skill Two")
		return sb.String()
	}

	lines := make([]string, 0, len(skills))
	for _, skill := range skills {
		category := Escape(nonEmpty(skill.Category, "Category"))
		list := Escape(nonEmpty(skill.SkillList, "Skill One, Skill Two"))
		lines = append(lines, fmt.Sprintf("\\textbf{%s:} %s", category, list))
	}
	sb.WriteString(strings.Join(lines, " \\\\\n"))
	return sb.String()
}

func formatProjects(projects []types.Project) string {
	if len(projects) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("% projects section\n")
	sb.WriteString("\\section*{Projects}\n")

	entries := make([]string, 0, len(projects))
	for _, proj := range projects {
		entries = append(entries, formatProjectEntry(proj))
	}
	sb.WriteString(strings.Join(entries, "\n\n"))
	return sb.String()
}

func formatProjectEntry(proj types.Project) string {
	name := Escape(nonEmpty(proj.Name, "Project Name"))

	var sb strings.Builder
	sb.WriteString("\\textbf{" + name + "}")
	if proj.URL != "" {
		sb.WriteString(fmt.Sprintf(" -- \\href{%s}{%s}", EscapeURL(proj.URL), Escape(proj.URL)))
	}
	if proj.StartDate != "" || proj.EndDate != "" {
		sb.WriteString(fmt.Sprintf(" \\hfill %s -- %s", Escape(proj.StartDate), Escape(proj.EndDate)))
	}
	sb.WriteString(" \\\\\n")
	if proj.Description != "" {
		sb.WriteString(Escape(proj.Description) + " \\\\\n")
	}
	sb.WriteString("\\vspace{-9pt}\n")
	writeItemize(&sb, convert.BulletsFromMarkup(proj.Highlights))
	sb.WriteString("\\vspace{-4pt}")
	return sb.String()
}

func formatGenericSection(section types.GenericSection) string {
	var sb strings.Builder
	sb.WriteString("% custom section\n")
	sb.WriteString(fmt.Sprintf("\\section*{%s}\n", Escape(nonEmpty(section.Title, "Section Title"))))

	if len(section.Items) == 0 {
		sb.WriteString("\\textbf{Item Name} -- description")
		return sb.String()
	}

	entries := make([]string, 0, len(section.Items))
	for _, item := range section.Items {
		entries = append(entries, formatGenericItem(item))
	}
	sb.WriteString(strings.Join(entries, "\n\n"))
	return sb.String()
}

func formatGenericItem(item types.GenericItem) string {
	var sb strings.Builder
	sb.WriteString("\\textbf{" + Escape(nonEmpty(item.Name, "Item Name")) + "}")
	if item.Description != "" {
		sb.WriteString(" -- " + Escape(item.Description))
	}

	if bullets := convert.BulletsFromMarkup(item.Details); len(bullets) > 0 {
		sb.WriteString(" \\\\\n\\vspace{-9pt}\n")
		writeItemize(&sb, bullets)
		sb.WriteString("\\vspace{-4pt}")
	}
	return sb.String()
}

// writeItemize emits an itemize block, substituting the placeholder bullet
// when no items parsed
func writeItemize(sb *strings.Builder, bullets []string) {
	sb.WriteString("\\begin{itemize}\n")
	if len(bullets) == 0 {
		sb.WriteString("  \\item " + placeholderBullet + "\n")
	}
	for _, b := range bullets {
		sb.WriteString("  \\item " + Escape(b) + "\n")
	}
	sb.WriteString("\\end{itemize}\n")
}
