package tailor

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/llm"
)

const tailorSystemPrompt = `You are a professional resume optimization assistant. Your task is to tailor resume content to match job requirements while maintaining honesty and professionalism. Never fabricate experiences or skills.`

// strengthInstructions maps tailoring strength to rewrite guidance
var strengthInstructions = map[string]string{
	"light":      "Make minimal, conservative edits. Only adjust wording where it clearly improves alignment; keep the original phrasing wherever possible.",
	"moderate":   "Reword and reorder content where it improves alignment with the job, but keep every statement recognizably derived from the original.",
	"aggressive": "Rewrite freely for maximum alignment with the job posting, as long as every statement remains truthful to the original content.",
}

// analyzePrompt builds the job description analysis prompt
func analyzePrompt(jobDescription string) string {
	return llm.BuildExtractionPrompt(llm.JobInfoSchema(), jobDescription)
}

// fetchAnalyzePrompt builds a prompt that has the model retrieve the posting
// itself via web search before analyzing it
func fetchAnalyzePrompt(url string) string {
	var sb strings.Builder
	sb.WriteString("Fetch the job posting from this URL and analyze it: ")
	sb.WriteString(url)
	sb.WriteString("\n\n")
	sb.WriteString(llm.BuildExtractionPrompt(llm.JobInfoSchema(), "(use the page content you fetched from the URL above)"))
	return sb.String()
}

// tailorPrompt builds the resume rewrite prompt from the AI-format resume
// JSON and the structured job analysis
func tailorPrompt(resumeJSON, jobInfoJSON string, targetSections []string, strength string) string {
	if len(targetSections) == 0 {
		targetSections = []string{"experience", "skills", "projects"}
	}
	instruction, ok := strengthInstructions[strength]
	if !ok {
		instruction = strengthInstructions["moderate"]
	}

	var sb strings.Builder
	sb.WriteString(tailorSystemPrompt)
	sb.WriteString("\n\nPlease tailor this resume to better match the job requirements. Focus on:\n")
	sb.WriteString("1. Rewording experience descriptions to highlight relevant skills and achievements\n")
	sb.WriteString("2. Reordering or emphasizing relevant skills\n")
	sb.WriteString("3. Using keywords from the job posting naturally\n")
	sb.WriteString("4. Maintaining truthfulness - only rephrase existing experiences\n\n")
	sb.WriteString("Tailoring strength: ")
	sb.WriteString(instruction)
	sb.WriteString("\n\nCurrent Resume (JSON):\n")
	sb.WriteString(resumeJSON)
	sb.WriteString("\n\nJob Analysis:\n")
	sb.WriteString(jobInfoJSON)
	sb.WriteString(fmt.Sprintf("\n\nTarget Sections to Optimize: %s\n\n", strings.Join(targetSections, ", ")))
	sb.WriteString("Return the optimized resume in the same JSON format. ")
	sb.WriteString("All accomplishment and highlight fields must stay arrays of plain strings. ")
	sb.WriteString("The response must be valid JSON only, no markdown.")
	return sb.String()
}
