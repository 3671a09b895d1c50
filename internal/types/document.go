// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the candidate's identity block
type PersonalInfo struct {
	Name     string   `json:"name"`
	Contacts []string `json:"contacts"`
	Summary  string   `json:"summary"`
}

// Experience represents one work history entry. Accomplishments holds a
// bullet-list markup fragment (a flat <ul><li>...</li></ul> string), not plain text.
type Experience struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	Start           string `json:"start"`
	End             string `json:"end"`
	Accomplishments string `json:"accomplishments"`
}

// Education represents one education entry. Accomplishments holds list markup.
type Education struct {
	Degree          string `json:"degree"`
	Institution     string `json:"institution"`
	Location        string `json:"location"`
	GraduationDate  string `json:"graduationDate"`
	GPA             string `json:"gpa"`
	Accomplishments string `json:"accomplishments"`
}

// Skill represents one skill category with a comma-separated skill list
type Skill struct {
	Category  string `json:"category"`
	SkillList string `json:"skillList"`
}

// Project represents one project entry. Highlights holds list markup.
type Project struct {
	Name        string `json:"name"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Highlights  string `json:"highlights"`
	URL         string `json:"url"`
}

// GenericItem is one entry in a user-defined section. Details holds list markup.
type GenericItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Details     string `json:"details,omitempty"`
}

// GenericSection is a user-defined resume section keyed by section ID
type GenericSection struct {
	Title string        `json:"title"`
	Items []GenericItem `json:"items"`
}

// Document is the canonical resume content model. All rich-content fields hold
// a bounded list-markup fragment: an ordered list of plain-text bullet items,
// no nesting. Every conversion step must preserve bullet identity and order.
type Document struct {
	PersonalInfo    PersonalInfo              `json:"personalInfo"`
	Experience      []Experience              `json:"experience"`
	Education       []Education               `json:"education"`
	Skills          []Skill                   `json:"skills"`
	Projects        []Project                 `json:"projects"`
	GenericSections map[string]GenericSection `json:"genericSections,omitempty"`
}

// Section is display metadata for one resume section. It lives independently
// of Document content; reordering mutates only SortOrder.
type Section struct {
	ID            string `json:"id"`
	DisplayName   string `json:"displayName"`
	Href          string `json:"href"`
	Selected      bool   `json:"selected"`
	SortOrder     int    `json:"sortOrder"`
	OriginalOrder int    `json:"originalOrder"`
	Required      bool   `json:"required"`
	Sortable      bool   `json:"sortable"`
	Removeable    bool   `json:"removeable"`
}

// DefaultSections returns the section list for a fresh resume
func DefaultSections() []Section {
	return []Section{
		{ID: "personalInfo", DisplayName: "Personal Info", Href: "#personalInfo", Selected: true, SortOrder: 0, OriginalOrder: 0, Required: true},
		{ID: "experience", DisplayName: "Experience", Href: "#experience", Selected: true, SortOrder: 1, OriginalOrder: 1, Required: true, Sortable: true},
		{ID: "education", DisplayName: "Education", Href: "#education", Selected: true, SortOrder: 2, OriginalOrder: 2, Sortable: true},
		{ID: "skills", DisplayName: "Skills", Href: "#skills", Selected: true, SortOrder: 3, OriginalOrder: 3, Sortable: true},
		{ID: "projects", DisplayName: "Projects", Href: "#projects", Selected: false, SortOrder: 4, OriginalOrder: 4, Sortable: true, Removeable: true},
	}
}
