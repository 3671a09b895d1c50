package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/types"
)

// CopyRequest represents the request body for creating or updating a copy
type CopyRequest struct {
	Name     string          `json:"name"`
	Document *types.Document `json:"document" validate:"required"`
	Sections []types.Section `json:"sections"`
}

// RenameRequest represents the request body for renaming a copy
type RenameRequest struct {
	Name string `json:"name" validate:"required"`
}

// handleListCopies lists saved copies, newest first, without document content
func (s *Server) handleListCopies(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.Copies(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if metas == nil {
		metas = []storage.CopyMeta{}
	}
	s.jsonResponse(w, http.StatusOK, metas)
}

// handleCreateCopy saves a new named copy of the document
func (s *Server) handleCreateCopy(w http.ResponseWriter, r *http.Request) {
	var req CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if req.Name == "" {
		req.Name = "Untitled copy"
	}

	created, err := s.store.SaveCopy(r.Context(), req.Name, req.Document, req.Sections)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetCopy loads one copy by ID
func (s *Server) handleGetCopy(w http.ResponseWriter, r *http.Request) {
	id, ok := s.copyID(w, r)
	if !ok {
		return
	}

	c, err := s.store.GetCopy(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

// handleUpdateCopy replaces the content of an existing copy
func (s *Server) handleUpdateCopy(w http.ResponseWriter, r *http.Request) {
	id, ok := s.copyID(w, r)
	if !ok {
		return
	}

	var req CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.store.UpdateCopy(r.Context(), id, req.Document, req.Sections); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleRenameCopy changes a copy's display name
func (s *Server) handleRenameCopy(w http.ResponseWriter, r *http.Request) {
	id, ok := s.copyID(w, r)
	if !ok {
		return
	}

	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.store.RenameCopy(r.Context(), id, req.Name); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "renamed"})
}

// handleDeleteCopy removes a copy
func (s *Server) handleDeleteCopy(w http.ResponseWriter, r *http.Request) {
	id, ok := s.copyID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteCopy(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// copyID parses the {id} path value, answering 400 on malformed IDs
func (s *Server) copyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid copy ID format")
		return uuid.Nil, false
	}
	return id, true
}
