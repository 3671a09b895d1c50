package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPDFLaTeX_DefaultBinary(t *testing.T) {
	e := NewPDFLaTeX("")
	assert.Equal(t, DefaultBinary, e.binary)
}

func TestPDFLaTeX_WriteFileAndMainFile(t *testing.T) {
	e := NewPDFLaTeX("pdflatex")
	e.WriteFile("main.tex", "\\documentclass{article}")
	e.SetMainFile("main.tex")

	assert.Equal(t, "\\documentclass{article}", e.files["main.tex"])
	assert.Equal(t, "main.tex", e.mainFile)
}

func TestPDFLaTeX_CompileWithoutMainFile(t *testing.T) {
	e := NewPDFLaTeX("true") // any binary resolvable in PATH
	e.WriteFile("main.tex", "content")

	_, err := e.Compile(t.Context())
	var cerr *CompilationError
	assert.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Error(), "no main file")
}

func TestPDFLaTeX_InitMissingBinary(t *testing.T) {
	e := NewPDFLaTeX("definitely-not-a-latex-binary")

	err := e.Init(t.Context())
	var ierr *InitError
	assert.ErrorAs(t, err, &ierr)

	// Init outcome is sticky across calls
	assert.Equal(t, err, e.Init(t.Context())) //nolint:testifylint // identity check intended
}

func TestCompilationError_Formatting(t *testing.T) {
	err := &CompilationError{
		Message:   "compilation failed: PDF was not generated",
		LogOutput: "! Undefined control sequence.",
		Cause:     errors.New("exit status 1"),
	}

	assert.Contains(t, err.Error(), "compilation failed")
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Contains(t, err.LogOutput, "Undefined control sequence")
	assert.ErrorContains(t, err.Unwrap(), "exit status 1")
}
