package tailor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/convert"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/types"
)

// fakeClient replays canned responses in order
type fakeClient struct {
	responses []string
	errs      []error
	calls     int
	panicWith any
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func baseDocument() *types.Document {
	return &types.Document{
		PersonalInfo: types.PersonalInfo{
			Name:    "Grace Hopper",
			Summary: "Compiler pioneer",
		},
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Eckert-Mauchly", Accomplishments: "<ul><li>Built the A-0 compiler</li></ul>"},
		},
		Skills: []types.Skill{
			{Category: "Languages", SkillList: "COBOL, FORTRAN"},
		},
	}
}

func jobInfoJSON(t *testing.T) string {
	t.Helper()
	payload, err := json.Marshal(types.JobInfo{
		Title:        "Staff Engineer",
		Company:      "Initech",
		Requirements: []string{"Go experience"},
		Skills:       []string{"Kubernetes"},
	})
	require.NoError(t, err)
	return string(payload)
}

func tailoredJSON(t *testing.T, doc *types.Document) string {
	t.Helper()
	payload, err := json.Marshal(convert.ToAIFormat(doc))
	require.NoError(t, err)
	return string(payload)
}

func collectStatuses(o *Orchestrator) *[]Status {
	var statuses []Status
	o.SetStatusSink(func(s Status) { statuses = append(statuses, s) })
	return &statuses
}

func TestTailor_MissingJobInputs(t *testing.T) {
	o := New(&fakeClient{}, nil)
	statuses := collectStatuses(o)

	result, err := o.Tailor(context.Background(), &types.TailorRequest{Document: baseDocument()})

	var inputErr *JobInputError
	require.ErrorAs(t, err, &inputErr)
	assert.False(t, result.Success)
	assert.Equal(t, baseDocument(), result.TailoredDocument)
	require.NotEmpty(t, *statuses)
	assert.Equal(t, StageError, (*statuses)[len(*statuses)-1].Stage)
}

func TestTailor_DescriptionPathSucceeds(t *testing.T) {
	tailoredDoc := baseDocument()
	tailoredDoc.Experience[0].Title = "Compiler Engineer"

	client := &fakeClient{responses: []string{jobInfoJSON(t), tailoredJSON(t, tailoredDoc)}}
	o := New(client, nil)
	statuses := collectStatuses(o)

	result, err := o.Tailor(context.Background(), &types.TailorRequest{
		JobDescription: "We need a compiler engineer.",
		Document:       baseDocument(),
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Compiler Engineer", result.TailoredDocument.Experience[0].Title)
	require.NotEmpty(t, result.Changes)
	assert.Equal(t, "experience", result.Changes[0].Section)
	assert.Equal(t, "title", result.Changes[0].Field)
	assert.NotEmpty(t, result.Suggestions)

	stages := make([]Stage, 0, len(*statuses))
	for _, s := range *statuses {
		stages = append(stages, s.Stage)
	}
	assert.Equal(t, []Stage{StageAnalyzing, StageTailoring, StageComplete}, stages)
}

func TestTailor_IdenticalOutputIsNoChangeError(t *testing.T) {
	client := &fakeClient{responses: []string{jobInfoJSON(t), tailoredJSON(t, baseDocument())}}
	o := New(client, nil)

	result, err := o.Tailor(context.Background(), &types.TailorRequest{
		JobDescription: "Any role.",
		Document:       baseDocument(),
	})

	var noChange *NoChangeError
	require.ErrorAs(t, err, &noChange)
	assert.False(t, result.Success)
	assert.Empty(t, result.Changes)
}

func TestTailor_SchemaViolationIsResponseError(t *testing.T) {
	// Accomplishments as a markup string violate the list-based contract
	bad := `{"personalInfo":{"name":"Grace"},"experience":[{"title":"x","accomplishments":"<ul><li>a</li></ul>"}]}`
	client := &fakeClient{responses: []string{jobInfoJSON(t), bad}}
	o := New(client, nil)

	result, err := o.Tailor(context.Background(), &types.TailorRequest{
		JobDescription: "Any role.",
		Document:       baseDocument(),
	})

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "schema validation")
}

func TestTailor_AnalysisGarbageIsResponseError(t *testing.T) {
	client := &fakeClient{responses: []string{"not json at all"}}
	o := New(client, nil)

	result, err := o.Tailor(context.Background(), &types.TailorRequest{
		JobDescription: "Any role.",
		Document:       baseDocument(),
	})

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.False(t, result.Success)
}

func TestTailor_PanicIsContained(t *testing.T) {
	client := &fakeClient{panicWith: "provider exploded"}
	o := New(client, nil)
	statuses := collectStatuses(o)

	result, err := o.Tailor(context.Background(), &types.TailorRequest{
		JobDescription: "Any role.",
		Document:       baseDocument(),
	})

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Contains(t, err.Error(), "provider exploded")
	assert.False(t, result.Success)
	assert.Equal(t, StageError, (*statuses)[len(*statuses)-1].Stage)
}

func TestTailor_NilClientIsAPIKeyError(t *testing.T) {
	o := New(nil, nil)

	result, err := o.Tailor(context.Background(), &types.TailorRequest{
		JobDescription: "Any role.",
		Document:       baseDocument(),
	})

	var keyErr *APIKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.False(t, result.Success)
}

func TestGenerateSuggestions_QuantifiableAndMissingSkills(t *testing.T) {
	doc := baseDocument()
	doc.Experience[0].Accomplishments = "<ul><li>Built early compilers</li></ul>"
	jobInfo := &types.JobInfo{Skills: []string{"Kubernetes"}}

	suggestions := generateSuggestions(jobInfo, doc, doc)

	joined := ""
	for _, s := range suggestions {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "Kubernetes")
	assert.Contains(t, joined, "quantifiable")
	assert.Contains(t, joined, "relevant experience")
}
