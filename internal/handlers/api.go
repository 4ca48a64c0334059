package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/csg33k/underwriteai/internal/domain"
)

type processResponse struct {
	ExtractedData  domain.ExtractedData  `json:"extractedData"`
	RiskAssessment domain.RiskAssessment `json:"riskAssessment"`
	Status         string                `json:"status"`
	ProcessingID   string                `json:"processingId"`
	Documents      []domain.DocumentRef  `json:"documents"`
}

type submissionsResponse struct {
	Submissions []domain.Submission `json:"submissions"`
}

type submissionResponse struct {
	Submission domain.Submission `json:"submission"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// apiProcessDocuments runs the simulated pipeline. An optional multipart
// "files" upload is described in the response; any other body is ignored.
func (h *Handler) apiProcessDocuments(w http.ResponseWriter, r *http.Request) {
	var docs []domain.DocumentRef
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, h.log, http.StatusBadRequest, err)
			return
		}
		docs = uploadedDocuments(r.MultipartForm)
	}
	res, err := h.intake.Process(r.Context(), docs)
	if err != nil {
		writeError(w, h.log, statusFor(err), err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, processResponse{
		ExtractedData:  res.ExtractedData,
		RiskAssessment: res.RiskAssessment,
		Status:         "success",
		ProcessingID:   res.ProcessingID,
		Documents:      res.Documents,
	})
}

func (h *Handler) apiListSubmissions(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, h.log, statusFor(err), err)
		return
	}
	if list == nil {
		list = []domain.Submission{}
	}
	writeJSON(w, h.log, http.StatusOK, submissionsResponse{Submissions: list})
}

func (h *Handler) apiCreateSubmission(w http.ResponseWriter, r *http.Request) {
	var s domain.Submission
	if err := decodeJSON(r.Body, &s); err != nil {
		writeError(w, h.log, http.StatusBadRequest, err)
		return
	}
	created, err := h.repo.Create(r.Context(), s)
	if err != nil {
		writeError(w, h.log, statusFor(err), err)
		return
	}
	writeJSON(w, h.log, http.StatusCreated, submissionResponse{Submission: created})
}

func (h *Handler) apiGetSubmission(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, statusFor(err), err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, submissionResponse{Submission: s})
}

func (h *Handler) apiUpdateSubmission(w http.ResponseWriter, r *http.Request) {
	var u domain.SubmissionUpdate
	if err := decodeJSON(r.Body, &u); err != nil {
		writeError(w, h.log, http.StatusBadRequest, err)
		return
	}
	s, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		writeError(w, h.log, statusFor(err), err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, submissionResponse{Submission: s})
}

var errEmptyBody = errors.New("request body is empty")

func decodeJSON(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("encode response", "err", err)
	}
}

var errorCodes = map[int]string{
	http.StatusBadRequest:          "bad_request",
	http.StatusNotFound:            "not_found",
	http.StatusConflict:            "conflict",
	http.StatusServiceUnavailable:  "unavailable",
	http.StatusInternalServerError: "internal_error",
}

func writeError(w http.ResponseWriter, log *slog.Logger, status int, err error) {
	code, ok := errorCodes[status]
	if !ok {
		code = "error"
	}
	if status >= 500 {
		log.Error("api error", "status", status, "err", err)
	}
	writeJSON(w, log, status, errorResponse{Error: code, Message: err.Error()})
}
