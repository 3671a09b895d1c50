package latex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// preamble is the fixed document header shared by every compiled resume
const preamble = `\documentclass[11pt]{article}
\usepackage[letterpaper, top=0.5in, bottom=0.5in, left=0.5in, right=0.5in]{geometry}
\usepackage{XCharter}
\usepackage[T1]{fontenc}
\usepackage[utf8]{inputenc}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage{titlesec}
\raggedright
\pagestyle{empty}

\input{glyphtounicode}
\pdfgentounicode=1

\titleformat{\section}{\bfseries\large}{}{0pt}{}[\vspace{1pt}\titlerule\vspace{-6.5pt}]
\renewcommand\labelitemi{$\vcenter{\hbox{\small$\bullet$}}$}
\setlist[itemize]{itemsep=-2pt, leftmargin=12pt, topsep=7pt}
`

// Compile produces a complete LaTeX document from a resume Document and its
// section metadata. It is pure and deterministic: the same (document,
// sections) pair always yields byte-identical output. Sections are emitted in
// SortOrder, filtered to Selected; every field value passes through Escape
// here and nowhere else.
func Compile(doc *types.Document, sections []types.Section) string {
	var sb strings.Builder

	sb.WriteString(preamble)
	sb.WriteString("\n\\begin{document}\n\n")

	sb.WriteString("% name\n")
	sb.WriteString(fmt.Sprintf("\\centerline{\\Huge %s}\n\n", Escape(nonEmpty(doc.PersonalInfo.Name, "Your Name"))))
	sb.WriteString("\\vspace{5pt}\n\n")

	sb.WriteString("% contact information\n")
	sb.WriteString(fmt.Sprintf("\\centerline{%s}\n\n", contactLine(doc.PersonalInfo.Contacts)))
	sb.WriteString("\\vspace{-10pt}\n")

	if block := formatSummary(doc.PersonalInfo.Summary); block != "" {
		sb.WriteString("\n")
		sb.WriteString(block)
		sb.WriteString("\n")
	}

	for _, section := range orderedSelected(sections) {
		var block string
		switch section.ID {
		case "personalInfo":
			// Always emitted above as the header; no standalone block
			continue
		case "experience":
			block = formatExperience(doc.Experience)
		case "education":
			block = formatEducation(doc.Education)
		case "skills":
			block = formatSkills(doc.Skills)
		case "projects":
			block = formatProjects(doc.Projects)
		default:
			generic, ok := doc.GenericSections[section.ID]
			if !ok {
				continue
			}
			block = formatGenericSection(generic)
		}

		if block != "" {
			sb.WriteString("\n")
			sb.WriteString(block)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n\\end{document}\n")
	return sb.String()
}

// orderedSelected returns the selected sections sorted by SortOrder,
// breaking ties by OriginalOrder so the output is stable
func orderedSelected(sections []types.Section) []types.Section {
	ordered := make([]types.Section, 0, len(sections))
	for _, s := range sections {
		if s.Selected {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SortOrder != ordered[j].SortOrder {
			return ordered[i].SortOrder < ordered[j].SortOrder
		}
		return ordered[i].OriginalOrder < ordered[j].OriginalOrder
	})
	return ordered
}

// contactLine joins non-empty contacts with the fixed separator, each wrapped
// in an \href pointing at its inferred target
func contactLine(contacts []string) string {
	var parts []string
	for _, c := range contacts {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("\\href{%s}{%s}", EscapeURL(hrefFor(c)), Escape(c)))
	}

	if len(parts) == 0 {
		return "your.email@example.com"
	}
	return strings.Join(parts, " | ")
}

// hrefFor infers a link target from a contact entry: mailto for addresses,
// https for bare domains, the value itself when already a URL
func hrefFor(contact string) string {
	switch {
	case strings.Contains(contact, "@"):
		return "mailto:" + contact
	case strings.HasPrefix(contact, "http://") || strings.HasPrefix(contact, "https://"):
		return contact
	case strings.Contains(contact, "linkedin"):
		trimmed := strings.TrimPrefix(strings.TrimPrefix(contact, "https://"), "http://")
		trimmed = strings.TrimPrefix(trimmed, "www.")
		return "https://www." + trimmed
	default:
		return "https://" + contact
	}
}

// nonEmpty returns value, or fallback when value is blank
func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
