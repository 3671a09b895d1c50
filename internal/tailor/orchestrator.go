package tailor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-studio/internal/convert"
	"github.com/jonathan/resume-studio/internal/diff"
	"github.com/jonathan/resume-studio/internal/fetch"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// Orchestrator runs the tailoring pipeline: job analysis, resume rewrite,
// schema validation, diff, and suggestions. Failures come back as typed
// errors inside the result; the pipeline never lets a panic escape.
type Orchestrator struct {
	client  llm.Client
	fetcher *fetch.PostingFetcher
	status  StatusSink
}

// New creates an orchestrator. The fetcher is optional; without it, URL
// requests fall back to the provider's web search when available.
func New(client llm.Client, fetcher *fetch.PostingFetcher) *Orchestrator {
	return &Orchestrator{
		client:  client,
		fetcher: fetcher,
		status:  func(Status) {},
	}
}

// SetStatusSink registers a receiver for progress updates
func (o *Orchestrator) SetStatusSink(sink StatusSink) {
	if sink == nil {
		sink = func(Status) {}
	}
	o.status = sink
}

func (o *Orchestrator) update(stage Stage, message string, progress int) {
	o.status(Status{Stage: stage, Message: message, Progress: progress})
}

// Tailor runs the full pipeline for one request. The result is always
// non-nil: on failure Success is false, the original document is carried
// back unchanged, and Error describes what went wrong.
func (o *Orchestrator) Tailor(ctx context.Context, req *types.TailorRequest) (result *types.TailorResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ResponseError{Message: fmt.Sprintf("tailoring pipeline panicked: %v", r)}
			result = o.failure(req, err)
		}
	}()

	if o.client == nil {
		err = &APIKeyError{Message: "please configure your API key before using AI features"}
		return o.failure(req, err), err
	}

	jobInfo, err := o.resolveJobInfo(ctx, req)
	if err != nil {
		return o.failure(req, err), err
	}

	o.update(StageTailoring, "Optimizing your resume...", 50)

	aiDoc := convert.ToAIFormat(req.Document)
	resumeJSON, merr := json.Marshal(aiDoc)
	if merr != nil {
		err = &ResponseError{Message: "failed to encode resume", Cause: merr}
		return o.failure(req, err), err
	}
	jobJSON, merr := json.Marshal(jobInfo)
	if merr != nil {
		err = &ResponseError{Message: "failed to encode job analysis", Cause: merr}
		return o.failure(req, err), err
	}

	prompt := tailorPrompt(string(resumeJSON), string(jobJSON), req.TargetSections, req.Strength)
	rawTailored, gerr := o.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if gerr != nil {
		err = &ResponseError{Message: "tailoring generation failed", Cause: gerr}
		return o.failure(req, err), err
	}

	if verr := schemas.ValidateAIDocument(rawTailored); verr != nil {
		err = &ResponseError{Message: "tailored resume failed schema validation", Cause: verr}
		return o.failure(req, err), err
	}

	var tailoredAI types.AIDocument
	if uerr := json.Unmarshal([]byte(rawTailored), &tailoredAI); uerr != nil {
		err = &ResponseError{Message: "tailored resume is not valid JSON", Cause: uerr}
		return o.failure(req, err), err
	}

	tailoredDoc := convert.FromAIFormat(&tailoredAI, req.Document)
	changes := diff.GenerateDiff(req.Document, tailoredDoc)
	if len(changes) == 0 {
		err = &NoChangeError{}
		return o.failure(req, err), err
	}

	suggestions := generateSuggestions(jobInfo, req.Document, tailoredDoc)

	o.update(StageComplete, "Resume optimization complete!", 100)

	return &types.TailorResult{
		Success:          true,
		TailoredDocument: tailoredDoc,
		Changes:          changes,
		Suggestions:      suggestions,
	}, nil
}

// resolveJobInfo produces the structured job analysis from whichever input
// the request carries
func (o *Orchestrator) resolveJobInfo(ctx context.Context, req *types.TailorRequest) (*types.JobInfo, error) {
	switch {
	case req.JobURL != "":
		return o.jobInfoFromURL(ctx, req.JobURL)
	case req.JobDescription != "":
		o.update(StageAnalyzing, "Analyzing job description...", 10)
		return o.analyzeText(ctx, analyzePrompt(req.JobDescription))
	default:
		return nil, &JobInputError{}
	}
}

func (o *Orchestrator) jobInfoFromURL(ctx context.Context, url string) (*types.JobInfo, error) {
	o.update(StageFetchingJob, "Fetching job posting...", 10)

	if o.fetcher != nil {
		posting, err := o.fetcher.Fetch(ctx, url)
		if err == nil {
			o.update(StageAnalyzing, "Analyzing job posting...", 25)
			return o.analyzeText(ctx, analyzePrompt(posting.Text))
		}
		// Local fetch failed; let the provider try the URL itself
		if _, ok := o.client.(llm.WebSearcher); !ok {
			return nil, &JobFetchError{URL: url, Message: "failed to fetch job posting", Cause: err}
		}
	}

	ws, ok := o.client.(llm.WebSearcher)
	if !ok {
		return nil, &JobFetchError{URL: url, Message: "no fetcher configured and provider cannot browse"}
	}

	raw, err := ws.GenerateWithWebSearch(ctx, fetchAnalyzePrompt(url), llm.TierStandard)
	if err != nil {
		return nil, &JobFetchError{URL: url, Message: "provider web search failed", Cause: err}
	}
	return parseJobInfo(llm.CleanJSONBlock(raw))
}

func (o *Orchestrator) analyzeText(ctx context.Context, prompt string) (*types.JobInfo, error) {
	raw, err := o.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ResponseError{Message: "job analysis generation failed", Cause: err}
	}
	return parseJobInfo(raw)
}

func parseJobInfo(raw string) (*types.JobInfo, error) {
	var info types.JobInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, &ResponseError{Message: "job analysis is not valid JSON", Cause: err}
	}
	return &info, nil
}

// failure emits the terminal error status and wraps the original document
// in a failed result
func (o *Orchestrator) failure(req *types.TailorRequest, err error) *types.TailorResult {
	o.update(StageError, fmt.Sprintf("Error: %v", err), 0)
	return &types.TailorResult{
		Success:          false,
		TailoredDocument: req.Document,
		Changes:          []types.ChangeRecord{},
		Suggestions:      []string{},
		Error:            err.Error(),
	}
}
