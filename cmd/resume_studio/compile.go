package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/latex"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a document file to PDF",
	Long:  `Compile a resume document JSON file to PDF through LaTeX. With --tex-only, emit the generated LaTeX source instead of running the compiler.`,
	RunE:  runCompile,
}

var (
	compileInput  string
	compileOutput string
	compileLatex  string
	compileTeX    bool
)

func init() {
	compileCmd.Flags().StringVarP(&compileInput, "input", "i", "", "Path to the document JSON file")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "resume.pdf", "Output file path")
	compileCmd.Flags().StringVar(&compileLatex, "latex-binary", "", "LaTeX compiler binary (default pdflatex)")
	compileCmd.Flags().BoolVar(&compileTeX, "tex-only", false, "Write the LaTeX source instead of compiling")
	_ = compileCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(_ *cobra.Command, _ []string) error {
	doc, sections, err := loadDocumentFile(compileInput)
	if err != nil {
		return err
	}

	source := latex.Compile(doc, sections)
	if compileTeX {
		if err := os.WriteFile(compileOutput, []byte(source), 0644); err != nil {
			return fmt.Errorf("failed to write LaTeX source: %w", err)
		}
		fmt.Printf("Wrote %s\n", compileOutput)
		return nil
	}

	ctx := context.Background()
	eng := engine.NewPDFLaTeX(compileLatex)
	if err := eng.Init(ctx); err != nil {
		return err
	}

	eng.WriteFile("main.tex", source)
	eng.SetMainFile("main.tex")
	result, err := eng.Compile(ctx)
	if err != nil {
		return err
	}

	if err := os.WriteFile(compileOutput, result.PDF, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", compileOutput, len(result.PDF))
	return nil
}
