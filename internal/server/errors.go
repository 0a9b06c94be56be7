package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/catalog"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/store"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// classify maps an error to its HTTP status and a short summary. The
// error's own message always travels in the details field.
func classify(err error) (int, string) {
	var (
		invalidBeam    *beam.ValidationError
		unsupported    *beam.UnsupportedConfigurationError
		invalidSection *section.ValidationError
		unknownSection *section.UnsupportedSectionError
	)
	switch {
	case errors.As(err, &invalidBeam):
		return http.StatusBadRequest, "invalid beam input"
	case errors.As(err, &invalidSection):
		return http.StatusBadRequest, "invalid section"
	case errors.As(err, &unsupported):
		return http.StatusUnprocessableEntity, "unsupported support configuration"
	case errors.As(err, &unknownSection):
		return http.StatusUnprocessableEntity, "unsupported section"
	case errors.Is(err, catalog.ErrUnknownMaterial), errors.Is(err, catalog.ErrUnknownSection):
		return http.StatusUnprocessableEntity, "unknown catalog entry"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "beam analysis failed"
	}
}

// writeJSON encodes v before committing the status, so a value that cannot
// be encoded becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: "response encoding failed", Details: err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, werr := w.Write(append(body, '\n')); werr != nil && err == nil {
		err = werr
	}
	return err
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// fail writes err with the status classify assigns it and returns that status
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) int {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(msg, "path", r.URL.Path, "err", err)
	}
	writeError(w, status, msg, err.Error())
	return status
}
