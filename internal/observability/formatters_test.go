package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestPrintJobInfo(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	info := &types.JobInfo{
		Title:        "Senior Engineer",
		Company:      "Acme Corp",
		Location:     "Remote",
		Requirements: []string{"5+ years backend experience", "Distributed systems"},
		Skills:       []string{"Go", "Kubernetes", "PostgreSQL"},
	}

	p.PrintJobInfo(info)
	output := buf.String()

	assert.Contains(t, output, "ANALYZED JOB POSTING")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Remote")
	assert.Contains(t, output, "Distributed systems")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintJobInfo_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobInfo(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobInfo_ManyRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	info := &types.JobInfo{
		Title:   "Engineer",
		Company: "Acme",
		Requirements: []string{
			"req one", "req two", "req three", "req four",
			"req five", "req six", "req seven",
		},
	}

	p.PrintJobInfo(info)
	output := buf.String()

	assert.Contains(t, output, "req five")
	assert.NotContains(t, output, "req six")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintChanges(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	changes := []types.ChangeRecord{
		{
			Section:   "experience",
			Field:     "title",
			ItemIndex: 0,
			Before:    "Engineer",
			After:     "Senior Engineer",
			Reason:    "Updated job title for better alignment",
		},
		{
			Section: "personalInfo",
			Field:   "summary",
			Reason:  "Tailored summary to match job requirements",
		},
	}

	p.PrintChanges(changes)
	output := buf.String()

	assert.Contains(t, output, "TAILORING CHANGES")
	assert.Contains(t, output, "Made 2 changes")
	assert.Contains(t, output, "experience.title[0]")
	assert.Contains(t, output, "Updated job title for better alignment")
	assert.Contains(t, output, "personalInfo.summary")
}

func TestPrintChanges_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintChanges(nil)

	assert.Contains(t, buf.String(), "No changes were made")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]string{
		"Consider adding these skills if you have them: Rust",
		"Ensure your most relevant experience is listed first",
	})
	output := buf.String()

	assert.Contains(t, output, "SUGGESTIONS")
	assert.Contains(t, output, "Rust")
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil)

	assert.Empty(t, buf.String())
}

func TestPrintTailorResult_Failure(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTailorResult(&types.TailorResult{
		Success: false,
		Error:   "please provide either a job URL or job description",
	})
	output := buf.String()

	assert.Contains(t, output, "TAILORING RESULT")
	assert.Contains(t, output, "Tailoring failed")
}

func TestPrintTailorResult_Success(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTailorResult(&types.TailorResult{
		Success: true,
		Changes: []types.ChangeRecord{
			{Section: "skills", Field: "skillList", Reason: "Reordered skills to prioritize job-relevant technologies"},
		},
		Suggestions: []string{"Add quantifiable achievements to your accomplishments"},
	})
	output := buf.String()

	assert.Contains(t, output, "TAILORING CHANGES")
	assert.Contains(t, output, "SUGGESTIONS")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	info := &types.JobInfo{
		Company: "A Very Long Company Name That Should Be Truncated To Fit",
		Title:   "Senior Staff Principal Distinguished Engineer Level 99",
	}

	p.PrintJobInfo(info)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
