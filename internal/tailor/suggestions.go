package tailor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/convert"
	"github.com/jonathan/resume-studio/internal/types"
)

var digitPattern = regexp.MustCompile(`\d`)

// generateSuggestions derives follow-up advice from the job analysis and the
// tailoring outcome. These are hints for the user, not applied changes.
func generateSuggestions(jobInfo *types.JobInfo, original, tailored *types.Document) []string {
	var suggestions []string

	// Skills named in the posting but absent from the resume
	var currentSkills []string
	for _, s := range original.Skills {
		for _, skill := range convert.SplitSkillList(s.SkillList) {
			currentSkills = append(currentSkills, strings.ToLower(skill))
		}
	}
	var missingSkills []string
	for _, skill := range jobInfo.Skills {
		found := false
		for _, cs := range currentSkills {
			if strings.Contains(cs, strings.ToLower(skill)) {
				found = true
				break
			}
		}
		if !found {
			missingSkills = append(missingSkills, skill)
		}
	}
	if len(missingSkills) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding these skills if you have them: %s", strings.Join(firstN(missingSkills, 3), ", ")))
	}

	// Posting keywords the tailored resume still does not mention
	postingText := strings.ToLower(strings.Join(append(append([]string{}, jobInfo.Requirements...), jobInfo.Responsibilities...), " "))
	resumeJSON, _ := json.Marshal(tailored)
	resumeText := strings.ToLower(string(resumeJSON))

	var missingKeywords []string
	for _, word := range strings.Fields(postingText) {
		if len(word) > 4 && !strings.Contains(resumeText, word) {
			missingKeywords = append(missingKeywords, word)
		}
	}
	if len(missingKeywords) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider incorporating these keywords naturally: %s", strings.Join(firstN(missingKeywords, 3), ", ")))
	}

	if len(original.Experience) > 0 {
		suggestions = append(suggestions, "Ensure your most relevant experience is listed first")
	}

	hasNumbers := false
	for _, exp := range original.Experience {
		if digitPattern.MatchString(exp.Accomplishments) {
			hasNumbers = true
			break
		}
	}
	if !hasNumbers {
		suggestions = append(suggestions, "Add quantifiable achievements (percentages, numbers, metrics) to your experience descriptions")
	}

	return suggestions
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
