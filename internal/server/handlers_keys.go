package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-studio/internal/keystore"
)

// APIKeyRequest represents the request body for PUT /api/keys/{provider}
type APIKeyRequest struct {
	APIKey     string `json:"apiKey" validate:"required"`
	Passphrase string `json:"passphrase" validate:"required"`
}

// APIKeyStatus represents the response for GET /api/keys/{provider}
type APIKeyStatus struct {
	Provider string `json:"provider"`
	Present  bool   `json:"present"`
}

// handlePutAPIKey validates and stores a provider API key, encrypted under
// the caller's passphrase. The plaintext is never persisted.
func (s *Server) handlePutAPIKey(w http.ResponseWriter, r *http.Request) {
	provider := r.PathValue("provider")

	var req APIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if !keystore.ValidateAPIKey(req.APIKey, provider) {
		s.errorResponse(w, http.StatusBadRequest, "API key does not match the expected format for "+provider)
		return
	}

	if err := s.keys.Store(r.Context(), provider, req.APIKey, req.Passphrase); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store API key: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, APIKeyStatus{Provider: provider, Present: true})
}

// handleGetAPIKey reports whether a key is stored, without decrypting it
func (s *Server) handleGetAPIKey(w http.ResponseWriter, r *http.Request) {
	provider := r.PathValue("provider")
	s.jsonResponse(w, http.StatusOK, APIKeyStatus{
		Provider: provider,
		Present:  s.keys.Has(r.Context(), provider),
	})
}

// handleDeleteAPIKey removes the stored key for a provider
func (s *Server) handleDeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	provider := r.PathValue("provider")
	if err := s.keys.Delete(r.Context(), provider); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, APIKeyStatus{Provider: provider, Present: false})
}
