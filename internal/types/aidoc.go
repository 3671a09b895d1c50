package types

// AI-exchange twins of the Document types. Every list-markup field becomes a
// literal ordered list of plain strings, and comma-separated skill lists
// become string arrays. Used only as the payload shape for the external
// rewriting call; never held as the canonical in-memory representation.

// AIPersonalInfo mirrors PersonalInfo (already markup-free)
type AIPersonalInfo struct {
	Name     string   `json:"name"`
	Contacts []string `json:"contacts"`
	Summary  string   `json:"summary"`
}

// AIExperience mirrors Experience with accomplishments as a string array
type AIExperience struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Accomplishments []string `json:"accomplishments"`
}

// AIEducation mirrors Education with accomplishments as a string array
type AIEducation struct {
	Degree          string   `json:"degree"`
	Institution     string   `json:"institution"`
	Location        string   `json:"location"`
	GraduationDate  string   `json:"graduationDate"`
	GPA             string   `json:"gpa"`
	Accomplishments []string `json:"accomplishments"`
}

// AISkill mirrors Skill with the skill list as a string array
type AISkill struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// AIProject mirrors Project with highlights as a string array
type AIProject struct {
	Name        string   `json:"name"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	URL         string   `json:"url"`
}

// AIDocument is the array-based structural twin of Document sent to and
// received from the external rewriting service
type AIDocument struct {
	PersonalInfo AIPersonalInfo `json:"personalInfo"`
	Experience   []AIExperience `json:"experience"`
	Education    []AIEducation  `json:"education"`
	Skills       []AISkill      `json:"skills"`
	Projects     []AIProject    `json:"projects"`
}
