package server

import (
	"encoding/json"
	"errors"
	"net/http"

	qceerrors "github.com/quantalab/qce/internal/errors"
	"github.com/quantalab/qce/internal/types"
)

// Submission is the request body for the detect and analyze endpoints.
type Submission struct {
	Code     string `json:"code"`
	Filename string `json:"filename,omitempty"`
}

// languageInfo is one entry of the supported-languages listing.
type languageInfo struct {
	Name  string         `json:"name"`
	Value types.Language `json:"value"`
}

var languageListing = []languageInfo{
	{Name: "Python", Value: types.LangPython},
	{Name: "Qiskit", Value: types.LangQiskit},
	{Name: "Q#", Value: types.LangQSharp},
	{Name: "Cirq", Value: types.LangCirq},
	{Name: "OpenQASM", Value: types.LangOpenQASM},
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"service": "Code Analysis Engine",
		"version": ServiceVersion,
		"status":  "operational",
		"capabilities": []string{
			"Multi-language parsing",
			"Complexity analysis",
			"Quantum metrics extraction",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "code-analysis-engine",
	})
}

func (s *Server) handleSupportedLanguages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"languages": languageListing,
		"count":     len(languageListing),
	})
}

func (s *Server) handleDetectLanguage(w http.ResponseWriter, r *http.Request) {
	submission, ok := s.decodeSubmission(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.pipeline.Detect(submission.Code))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	submission, ok := s.decodeSubmission(w, r)
	if !ok {
		return
	}

	result, err := s.pipeline.Analyze(submission.Code)
	if err != nil {
		var unsupported *qceerrors.UnsupportedInputError
		if errors.As(err, &unsupported) {
			s.writeError(w, http.StatusBadRequest, unsupported.Error())
			return
		}
		s.log.Error().Err(err).Msg("analysis failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) decodeSubmission(w http.ResponseWriter, r *http.Request) (Submission, bool) {
	var submission Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return Submission{}, false
	}
	return submission, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
