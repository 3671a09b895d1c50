package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/fetch"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/tailor"
	"github.com/jonathan/resume-studio/internal/types"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a document to a job posting",
	Long: `Analyze a job posting and rewrite the resume document to emphasize relevant
experience, skills, and projects. The job comes from a text file (--job) or a
URL (--job-url); the tailored document is written as JSON.`,
	RunE: runTailor,
}

var (
	tailorInput      string
	tailorOutput     string
	tailorJob        string
	tailorJobURL     string
	tailorStrength   string
	tailorSections   []string
	tailorProvider   string
	tailorModel      string
	tailorAPIKey     string
	tailorDB         string
	tailorUseBrowser bool
	tailorVerbose    bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorInput, "input", "i", "", "Path to the document JSON file")
	tailorCmd.Flags().StringVarP(&tailorOutput, "output", "o", "tailored.json", "Output file path for the tailored document")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	tailorCmd.Flags().StringVar(&tailorStrength, "strength", "", "Tailoring strength: light, moderate, or aggressive")
	tailorCmd.Flags().StringSliceVar(&tailorSections, "sections", nil, "Sections to tailor (default experience, skills, projects)")
	tailorCmd.Flags().StringVar(&tailorProvider, "provider", "anthropic", "LLM provider (anthropic or gemini)")
	tailorCmd.Flags().StringVar(&tailorModel, "model", "", "Model override for the tailoring tier")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Provider API key (optional, defaults to the provider's env var)")
	tailorCmd.Flags().StringVar(&tailorDB, "db", "", "SQLite database path for the posting cache (optional)")
	tailorCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed progress information")
	_ = tailorCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if tailorJob != "" && tailorJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if tailorJob == "" && tailorJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}

	doc, _, err := loadDocumentFile(tailorInput)
	if err != nil {
		return err
	}

	var jobDescription string
	if tailorJob != "" {
		data, err := os.ReadFile(tailorJob)
		if err != nil {
			return fmt.Errorf("failed to read job file %s: %w", tailorJob, err)
		}
		jobDescription = strings.TrimSpace(string(data))
	}

	apiKey := tailorAPIKey
	if apiKey == "" {
		apiKey = apiKeyFromEnv(tailorProvider)
	}
	if apiKey == "" {
		return fmt.Errorf("an API key is required: pass --api-key or set the provider's environment variable")
	}

	cfg := llm.DefaultAnthropicConfig()
	if tailorProvider == string(llm.ProviderGemini) {
		cfg = llm.DefaultGeminiConfig()
	}
	if tailorModel != "" {
		cfg = cfg.WithModel(llm.TierAdvanced, tailorModel)
	}

	client, err := llm.NewClient(ctx, cfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	var fetcher *fetch.PostingFetcher
	if tailorDB != "" {
		store, err := storage.Open(tailorDB)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer store.Close() //nolint:errcheck
		fetcher = fetch.NewPostingFetcher(store)
	} else {
		fetcher = fetch.NewPostingFetcher(nil)
	}
	fetcher.UseBrowser = tailorUseBrowser
	fetcher.Verbose = tailorVerbose

	orch := tailor.New(client, fetcher)
	if tailorVerbose {
		orch.SetStatusSink(func(st tailor.Status) {
			fmt.Printf("[%3d%%] %s\n", st.Progress, st.Message)
		})
	}

	result, err := orch.Tailor(ctx, &types.TailorRequest{
		JobURL:         tailorJobURL,
		JobDescription: jobDescription,
		Document:       doc,
		TargetSections: tailorSections,
		Strength:       tailorStrength,
		UseBrowser:     tailorUseBrowser,
	})

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTailorResult(result)
	if err != nil {
		return err
	}

	out, merr := json.MarshalIndent(documentFile{
		Document: result.TailoredDocument,
		Sections: types.DefaultSections(),
	}, "", "  ")
	if merr != nil {
		return fmt.Errorf("failed to encode tailored document: %w", merr)
	}
	if err := os.WriteFile(tailorOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write tailored document: %w", err)
	}
	fmt.Printf("Wrote %s\n", tailorOutput)
	return nil
}
