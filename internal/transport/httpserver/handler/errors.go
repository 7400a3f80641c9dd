package handler

import (
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"promana-go/internal/domain/integrity"
	"promana-go/internal/domain/members"
	"promana-go/internal/domain/projects"
	"promana-go/internal/hypermedia"
)

var notFoundErrors = []error{
	members.ErrMemberNotFound,
	projects.ErrProjectNotFound,
	projects.ErrPhaseNotFound,
	projects.ErrTaskNotFound,
	projects.ErrCostNotFound,
	projects.ErrHourEntryNotFound,
	projects.ErrAssignmentNotFound,
}

// fail maps a service or decoding error onto a Mason error response.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	requestID := chimw.GetReqID(r.Context())

	var invalid *hypermedia.InvalidDocumentError
	switch {
	case errors.Is(err, errUnsupportedMediaType), errors.Is(err, errEmptyBody):
		h.log.BusinessError(op+": unsupported media type", err, "request_id", requestID)
		writeError(w, r, http.StatusUnsupportedMediaType, "Unsupported media type", "Requests must be JSON")
		return
	case errors.As(err, &invalid):
		h.log.BusinessError(op+": invalid document", err, "request_id", requestID)
		writeError(w, r, http.StatusBadRequest, "Invalid JSON document", invalid.Messages...)
		return
	case isNotFound(err):
		h.log.BusinessError(op+": not found", err, "request_id", requestID)
		writeError(w, r, http.StatusNotFound, "Not found", err.Error())
		return
	case errors.Is(err, integrity.ErrAlreadyExists):
		h.log.BusinessError(op+": already exists", err, "request_id", requestID)
		writeError(w, r, http.StatusConflict, "Already exists", "A resource with the same key already exists")
		return
	case errors.Is(err, integrity.ErrConstraintViolation):
		h.log.BusinessError(op+": constraint violation", err, "request_id", requestID)
		detail := "The request breaks an integrity constraint"
		var violation *integrity.Violation
		if errors.As(err, &violation) {
			detail = violation.Error()
		}
		writeError(w, r, http.StatusConflict, "Constraint violation", detail)
		return
	}

	h.log.InternalError(op+" failed", err, "request_id", requestID)
	writeError(w, r, http.StatusInternalServerError, "Internal server error")
}

func isNotFound(err error) bool {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
