package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/generator"
	"github.com/matzehuels/architectus/pkg/geom"
)

type errorBody struct {
	Code    errors.Code  `json:"code"`
	Message string       `json:"message"`
	Details *failureBody `json:"details,omitempty"`
}

// failureBody tells a client whether a smaller component could fit.
type failureBody struct {
	Attempts  int             `json:"attempts"`
	Where     string          `json:"where,omitempty"`
	Desired   geom.Vector2Int `json:"desired"`
	Available geom.Vector2Int `json:"available"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch {
	case code == errors.ErrCodeGenerationFailed, code == errors.ErrCodeLayoutOverflow:
		return http.StatusUnprocessableEntity
	case strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	case strings.HasSuffix(string(code), "NOT_FOUND"):
		return http.StatusNotFound
	case code == errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case code == errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	body := errorBody{Code: code, Message: errors.UserMessage(err)}

	var fail *generator.FailureError
	if stderrors.As(err, &fail) && fail.Last != nil {
		body.Details = &failureBody{
			Attempts:  fail.Attempts,
			Where:     fail.Last.Where(),
			Desired:   fail.Last.Desired,
			Available: fail.Last.Available,
		}
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "error", err)
		body.Message = http.StatusText(status)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
