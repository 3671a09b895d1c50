package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/tailor"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}

	switch err.(type) {
	case *tailor.APIKeyError:
		return http.StatusUnauthorized
	case *tailor.JobInputError:
		return http.StatusBadRequest
	case *tailor.NoChangeError:
		return http.StatusUnprocessableEntity
	case *tailor.JobFetchError, *tailor.ResponseError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
