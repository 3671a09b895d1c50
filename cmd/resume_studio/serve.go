package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for compiling documents,
rendering previews, tailoring resumes, and managing saved copies.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveDB         string
	serveLatex      string
	serveDebounceMs int
	serveProvider   string
	serveModel      string
	serveAPIKey     string
	serveUseBrowser bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "Path to the SQLite database file")
	serveCmd.Flags().StringVar(&serveLatex, "latex-binary", "", "LaTeX compiler binary")
	serveCmd.Flags().IntVar(&serveDebounceMs, "debounce-ms", 0, "Compile debounce window in milliseconds")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "LLM provider (anthropic or gemini)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model override for the tailoring tier")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Provider API key (optional, defaults to the provider's env var)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db") {
		cfg.DatabasePath = serveDB
	}
	if cmd.Flags().Changed("latex-binary") {
		cfg.LatexBinary = serveLatex
	}
	if cmd.Flags().Changed("debounce-ms") {
		cfg.DebounceMs = serveDebounceMs
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = serveProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = serveModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	// API key is optional at startup; requests may carry their own key or
	// use the encrypted keystore
	if cfg.APIKey == "" {
		cfg.APIKey = apiKeyFromEnv(cfg.Provider)
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabasePath: cfg.DatabasePath,
		LatexBinary:  cfg.LatexBinary,
		Debounce:     cfg.Debounce(),
		Provider:     cfg.Provider,
		Model:        cfg.Model,
		APIKey:       cfg.APIKey,
		UseBrowser:   cfg.UseBrowser,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
