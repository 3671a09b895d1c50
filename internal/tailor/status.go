package tailor

// Stage identifies a phase of the tailoring pipeline
type Stage string

const (
	// StageFetchingJob covers retrieving a job posting from a URL
	StageFetchingJob Stage = "fetching-job"
	// StageAnalyzing covers extracting structured info from the posting
	StageAnalyzing Stage = "analyzing"
	// StageTailoring covers the resume rewrite itself
	StageTailoring Stage = "tailoring"
	// StageComplete is the terminal success stage
	StageComplete Stage = "complete"
	// StageError is the terminal failure stage
	StageError Stage = "error"
)

// Status is a progress update emitted while tailoring runs
type Status struct {
	Stage    Stage  `json:"stage"`
	Message  string `json:"message"`
	Progress int    `json:"progress"`
}

// StatusSink receives progress updates. Sinks must not block; updates are
// delivered synchronously from the pipeline goroutine.
type StatusSink func(Status)
