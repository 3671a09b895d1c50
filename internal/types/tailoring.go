package types

// TailorRequest describes one tailoring invocation. Exactly one of JobURL or
// JobDescription must be set.
type TailorRequest struct {
	JobURL         string    `json:"jobUrl,omitempty" validate:"omitempty,url"`
	JobDescription string    `json:"jobDescription,omitempty"`
	Document       *Document `json:"document" validate:"required"`
	TargetSections []string  `json:"targetSections,omitempty"`
	Model          string    `json:"model,omitempty"`
	Strength       string    `json:"strength,omitempty" validate:"omitempty,oneof=light moderate aggressive"`
	UseBrowser     bool      `json:"useBrowser,omitempty"`
}

// ChangeRecord is one field-level diff between two Documents. Immutable once
// created; the UI consumes these to selectively merge changes back.
// ItemIndex always serializes so index 0 stays distinguishable on the wire.
type ChangeRecord struct {
	Section   string `json:"section"`
	Field     string `json:"field"`
	ItemIndex int    `json:"itemIndex"`
	Before    string `json:"before"`
	After     string `json:"after"`
	Reason    string `json:"reason"`
}

// TailorResult is the combined outcome of one tailoring invocation
type TailorResult struct {
	Success          bool           `json:"success"`
	TailoredDocument *Document      `json:"tailoredDocument"`
	Changes          []ChangeRecord `json:"changes"`
	Suggestions      []string       `json:"suggestions"`
	Error            string         `json:"error,omitempty"`
}

// JobInfo is the structured job posting analysis returned by the LLM
type JobInfo struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	Skills           []string `json:"skills"`
	Description      string   `json:"description"`
}
