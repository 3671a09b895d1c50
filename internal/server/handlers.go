package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/tailor"
	"github.com/jonathan/resume-studio/internal/types"
)

// CompileRequest represents the request body for /api/compile
type CompileRequest struct {
	Document *types.Document `json:"document" validate:"required"`
	Sections []types.Section `json:"sections"`
}

// PageCountResponse represents the response for /api/preview/pages
type PageCountResponse struct {
	Pages int `json:"pages"`
}

// handleCompile compiles the submitted document and returns the PDF. Bursts
// from the editor collapse into one engine run via the scheduler.
func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	sections := req.Sections
	if len(sections) == 0 {
		sections = types.DefaultSections()
	}

	pdf, err := s.sched.RequestCompile(r.Context(), req.Document, sections)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.refreshPreview(pdf)

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// refreshPreview hands the freshly compiled PDF to the renderer and kicks off
// rasterization of every page in the background
func (s *Server) refreshPreview(pdf []byte) {
	doc, err := render.Open(pdf)
	if err != nil {
		log.Printf("Error opening compiled PDF for preview: %v", err)
		return
	}

	s.renderer.SetDocument(doc)
	s.mu.Lock()
	s.pages = doc.NumPages()
	s.mu.Unlock()

	go func() {
		if err := s.renderer.RenderAll(context.Background()); err != nil {
			log.Printf("Preview rendering finished with errors: %v", err)
		}
	}()
}

// handlePageCount returns the page count of the last compiled document
func (s *Server) handlePageCount(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	pages := s.pages
	s.mu.Unlock()
	s.jsonResponse(w, http.StatusOK, PageCountResponse{Pages: pages})
}

// handlePreviewPage returns one rendered page as PNG. Pages still being
// rasterized answer 202; the client retries.
func (s *Server) handlePreviewPage(w http.ResponseWriter, r *http.Request) {
	// Pages are 1-based, matching the renderer's cache keys
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil || n < 1 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid page number")
		return
	}

	s.mu.Lock()
	pages := s.pages
	s.mu.Unlock()
	if n > pages {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("Page %d not found", n))
		return
	}

	if png, ok := s.renderer.Page(n); ok {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(png); err != nil {
			log.Printf("Error writing PNG response: %v", err)
		}
		return
	}

	if pageErr := s.renderer.PageErr(n); pageErr != nil {
		s.errorResponse(w, http.StatusInternalServerError, pageErr.Error())
		return
	}

	s.renderer.RequestPage(n)
	w.Header().Set("Retry-After", "1")
	s.errorResponse(w, http.StatusAccepted, "Page is still rendering")
}

// handleTailor runs one tailoring pass and returns the combined result
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	req, orch, cleanup, ok := s.prepareTailor(w, r)
	if !ok {
		return
	}
	defer cleanup()

	result, err := orch.Tailor(r.Context(), req)
	if err != nil {
		// The failure result still carries the original document and the
		// error message; clients render it directly.
		s.jsonResponse(w, HTTPStatus(err), result)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleTailorStream runs one tailoring pass, streaming stage transitions as
// SSE events before the final result
func (s *Server) handleTailorStream(w http.ResponseWriter, r *http.Request) {
	req, orch, cleanup, ok := s.prepareTailor(w, r)
	if !ok {
		return
	}
	defer cleanup()

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	orch.SetStatusSink(func(status tailor.Status) {
		if err := sse.WriteEvent("status", status); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	})

	result, err := orch.Tailor(r.Context(), req)
	if err != nil {
		sse.WriteError(err.Error())
	}
	sse.WriteResult(result)
}

// prepareTailor decodes and validates the request and builds a one-shot
// orchestrator around a fresh LLM client. The returned cleanup closes the
// client.
func (s *Server) prepareTailor(w http.ResponseWriter, r *http.Request) (*types.TailorRequest, *tailor.Orchestrator, func(), bool) {
	var req types.TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, nil, nil, false
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return nil, nil, nil, false
	}

	apiKey := s.resolveAPIKey(r)
	if apiKey == "" {
		s.errorResponse(w, http.StatusUnauthorized, "No API key available; store one or pass X-API-Key")
		return nil, nil, nil, false
	}

	cfg := s.providerConfig()
	if req.Model != "" {
		cfg = cfg.WithModel(llm.TierAdvanced, req.Model)
	} else if s.model != "" {
		cfg = cfg.WithModel(llm.TierAdvanced, s.model)
	}

	client, err := s.newClient(r.Context(), cfg, apiKey)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create LLM client: "+err.Error())
		return nil, nil, nil, false
	}

	fetcher := s.fetcher
	if req.UseBrowser {
		browserFetcher := *s.fetcher
		browserFetcher.UseBrowser = true
		fetcher = &browserFetcher
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}
	return &req, tailor.New(client, fetcher), cleanup, true
}

// providerConfig returns the model configuration for the configured provider
func (s *Server) providerConfig() *llm.Config {
	if s.provider == string(llm.ProviderGemini) {
		return llm.DefaultGeminiConfig()
	}
	return llm.DefaultAnthropicConfig()
}

// resolveAPIKey picks the API key for this request: an explicit header wins,
// then the configured key, then the encrypted keystore if the caller supplied
// its passphrase.
func (s *Server) resolveAPIKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	if s.apiKey != "" {
		return s.apiKey
	}
	if passphrase := r.Header.Get("X-Keystore-Passphrase"); passphrase != "" {
		provider := s.provider
		if provider == "" {
			provider = string(llm.ProviderAnthropic)
		}
		key, err := s.keys.Retrieve(r.Context(), provider, passphrase)
		if err != nil {
			log.Printf("Keystore retrieval failed: %v", err)
			return ""
		}
		return key
	}
	return ""
}

// extractValidationErrors formats the first validation failure for a response
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
