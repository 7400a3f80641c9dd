package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"promana-go/internal/hypermedia"
)

const maxBodyBytes = 1 << 20

var (
	errUnsupportedMediaType = errors.New("requests must be JSON")
	errEmptyBody            = errors.New("request body is empty")
)

func writeMason(w http.ResponseWriter, status int, doc *hypermedia.Document) {
	w.Header().Set("Content-Type", hypermedia.MediaType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(doc)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, title string, details ...string) {
	w.Header().Set("Content-Type", hypermedia.MediaType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(hypermedia.NewError(r.URL.Path, title, details...))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeCreated(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

func writeNoContent(w http.ResponseWriter, location string) {
	if location != "" {
		w.Header().Set("Location", location)
	}
	w.WriteHeader(http.StatusNoContent)
}

// readBody checks the media type, validates the body against the named
// schema and decodes it into dst.
func (h *Handlers) readBody(r *http.Request, schemaName string, dst interface{}) error {
	if !isJSON(r.Header.Get("Content-Type")) {
		return errUnsupportedMediaType
	}
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		return &hypermedia.InvalidDocumentError{Messages: []string{err.Error()}}
	}
	if strings.TrimSpace(string(body)) == "" {
		return errEmptyBody
	}
	if err := h.schemas.Validate(schemaName, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &hypermedia.InvalidDocumentError{Messages: []string{err.Error()}}
	}
	return nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
