package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/types"
)

// StateResponse represents the working document, its section layout, and the
// saved copy it tracks
type StateResponse struct {
	Document        *types.Document `json:"document"`
	Sections        []types.Section `json:"sections"`
	ResumeName      string          `json:"resumeName,omitempty"`
	TemplateID      string          `json:"templateId,omitempty"`
	CurrentResumeID string          `json:"currentResumeId,omitempty"`
}

// StateRequest represents the request body for PUT /api/state
type StateRequest struct {
	Document        *types.Document `json:"document" validate:"required"`
	Sections        []types.Section `json:"sections"`
	ResumeName      string          `json:"resumeName"`
	TemplateID      string          `json:"templateId"`
	CurrentResumeID string          `json:"currentResumeId"`
}

// handleGetState returns the persisted working state. A fresh database
// answers an empty document with the default section layout.
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := s.store.WorkingState(r.Context())
	if errors.Is(err, storage.ErrNotFound) {
		s.jsonResponse(w, http.StatusOK, StateResponse{
			Document: &types.Document{},
			Sections: types.DefaultSections(),
		})
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, StateResponse{
		Document:        state.Document,
		Sections:        state.Sections,
		ResumeName:      state.ResumeName,
		TemplateID:      state.TemplateID,
		CurrentResumeID: state.CurrentCopyID,
	})
}

// handlePutState replaces the persisted working state
func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
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

	state := &storage.State{
		Document:      req.Document,
		Sections:      sections,
		ResumeName:    req.ResumeName,
		TemplateID:    req.TemplateID,
		CurrentCopyID: req.CurrentResumeID,
	}
	if err := s.store.SaveWorkingState(r.Context(), state); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, StateResponse{
		Document:        state.Document,
		Sections:        state.Sections,
		ResumeName:      state.ResumeName,
		TemplateID:      state.TemplateID,
		CurrentResumeID: state.CurrentCopyID,
	})
}
