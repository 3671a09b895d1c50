package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	// CompilationTimeout is the maximum time to wait for one engine run
	CompilationTimeout = 30 * time.Second

	// DefaultBinary is the LaTeX compiler invoked when none is configured
	DefaultBinary = "pdflatex"
)

// Result holds the output of one successful compilation
type Result struct {
	PDF []byte
	Log string
}

// Engine is the compilation engine contract: stage source files, designate a
// main file, compile to PDF. Implementations are not re-entrant — callers
// must never invoke Compile while a previous call is outstanding. The
// scheduler is the sole caller and enforces this by single-flight discipline.
type Engine interface {
	// Init performs the one-time expensive construction. Safe to call more
	// than once; only the first call does work.
	Init(ctx context.Context) error
	// WriteFile stages a source file in the engine's filesystem
	WriteFile(name, content string)
	// SetMainFile designates the entry point for compilation
	SetMainFile(name string)
	// Compile runs the engine over the staged files
	Compile(ctx context.Context) (*Result, error)
}

// PDFLaTeX is an Engine backed by a pdflatex installation. One instance owns
// one working directory for the life of the session.
type PDFLaTeX struct {
	binary   string
	workDir  string
	files    map[string]string
	mainFile string

	initOnce sync.Once
	initErr  error
}

// NewPDFLaTeX creates an engine instance. Construction is cheap; the
// expensive part happens in Init.
func NewPDFLaTeX(binary string) *PDFLaTeX {
	if binary == "" {
		binary = DefaultBinary
	}
	return &PDFLaTeX{
		binary: binary,
		files:  make(map[string]string),
	}
}

// Init locates the compiler binary and creates the session working
// directory. Subsequent calls return the first call's outcome.
func (e *PDFLaTeX) Init(_ context.Context) error {
	e.initOnce.Do(func() {
		if _, err := exec.LookPath(e.binary); err != nil {
			e.initErr = &InitError{
				Message: fmt.Sprintf("%s not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)", e.binary),
				Cause:   err,
			}
			return
		}

		workDir, err := os.MkdirTemp("", "latex-engine-*")
		if err != nil {
			e.initErr = &InitError{
				Message: "failed to create working directory",
				Cause:   err,
			}
			return
		}
		e.workDir = workDir
	})
	return e.initErr
}

// WriteFile stages a source file for the next compilation
func (e *PDFLaTeX) WriteFile(name, content string) {
	e.files[name] = content
}

// SetMainFile designates the compilation entry point
func (e *PDFLaTeX) SetMainFile(name string) {
	e.mainFile = name
}

// Compile writes the staged files to the working directory and runs the
// compiler over the main file. A missing output PDF is a CompilationError
// carrying the engine log.
func (e *PDFLaTeX) Compile(ctx context.Context) (*Result, error) {
	if err := e.Init(ctx); err != nil {
		return nil, err
	}
	if e.mainFile == "" {
		return nil, &CompilationError{Message: "no main file designated"}
	}

	for name, content := range e.files {
		path := filepath.Join(e.workDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, &CompilationError{
				Message: fmt.Sprintf("failed to stage source file: %s", name),
				Cause:   err,
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts on errors
	cmd := exec.CommandContext(ctx, e.binary,
		"-interaction=nonstopmode",
		"-output-directory", e.workDir,
		filepath.Join(e.workDir, e.mainFile),
	)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	logOutput := stdout.String() + stderr.String()

	pdfPath := filepath.Join(e.workDir, strings.TrimSuffix(e.mainFile, ".tex")+".pdf")
	pdf, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		return nil, &CompilationError{
			Message:   "compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// LaTeX can exit non-zero and still emit a usable PDF; surface the log
	// but treat the run as failed only when no PDF appeared
	_ = os.Remove(pdfPath)

	return &Result{PDF: pdf, Log: logOutput}, nil
}

// Close removes the session working directory
func (e *PDFLaTeX) Close() error {
	if e.workDir == "" {
		return nil
	}
	return os.RemoveAll(e.workDir)
}
