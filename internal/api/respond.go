// internal/api/respond.go
package api

import (
	"encoding/json"
	"net/http"

	stderrors "github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/errors"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Retryable bool   `json:"retryable"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Server) writeSuccess(w http.ResponseWriter, status int, data interface{}) {
	s.writeJSON(w, status, APIResponse{Success: true, Data: data})
}

// writeError maps any error onto the envelope. Structured errors carry
// their own code and status; anything else becomes a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	stdErr := stderrors.AsStandardError(err)
	s.writeJSON(w, stderrors.HTTPStatus(err), APIResponse{
		Success: false,
		Error: &APIError{
			Code:      string(stdErr.Code),
			Message:   stdErr.Message,
			Details:   stdErr.Details,
			Retryable: stdErr.Retryable,
		},
	})
}

func parseRequestBody(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return stderrors.NewInvalidRequestError("malformed JSON body: " + err.Error())
	}
	return nil
}
