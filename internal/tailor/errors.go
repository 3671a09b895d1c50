// Package tailor orchestrates the AI resume tailoring pipeline.
package tailor

import "fmt"

// APIKeyError indicates the credential precondition failed
type APIKeyError struct {
	Message string
}

func (e *APIKeyError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api key error: %s", e.Message)
	}
	return "api key error: please configure your API key before using AI features"
}

// JobInputError indicates the request carried neither a job URL nor a job
// description
type JobInputError struct{}

func (e *JobInputError) Error() string {
	return "please provide either a job URL or job description"
}

// JobFetchError represents a failure to obtain the job posting content
type JobFetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *JobFetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("job fetch error for %s: %s", e.URL, e.Message)
}

func (e *JobFetchError) Unwrap() error {
	return e.Cause
}

// ResponseError represents model output that could not be used: malformed
// JSON, schema violations, or generation failures
type ResponseError struct {
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ai response error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ai response error: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}

// NoChangeError indicates the model returned content identical to the input
type NoChangeError struct{}

func (e *NoChangeError) Error() string {
	return "no changes were made to the resume. The content may already be well-optimized"
}
