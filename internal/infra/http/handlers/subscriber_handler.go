package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-mailer/internal/infra/csvfile"
	"github.com/xavierca1/ligue-mailer/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-mailer/internal/usecase"
)

const maxUploadBytes = 64 << 20 // 64MB

type SubscriberHandler struct {
	ImportUC      *usecase.ImportSubscribersUseCase
	UnsubscribeUC *usecase.UnsubscribeUseCase
	UploadDir     string
}

func NewSubscriberHandler(importUC *usecase.ImportSubscribersUseCase, unsubscribeUC *usecase.UnsubscribeUseCase, uploadDir string) *SubscriberHandler {
	return &SubscriberHandler{
		ImportUC:      importUC,
		UnsubscribeUC: unsubscribeUC,
		UploadDir:     uploadDir,
	}
}

type importResponse struct {
	Message string `json:"message"`
	usecase.ImportSubscribersOutput
}

// Import (POST /lists/{listID}/subscribers) ingests an uploaded CSV into
// the list. A batch with failures answers 400 with the full breakdown and
// the name of the failed-records file; a clean batch answers 200.
func (h *SubscriberHandler) Import(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form: " + err.Error()})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no file uploaded"})
		return
	}
	defer file.Close()

	path, err := h.stage(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to stage upload"})
		return
	}

	// The source owns the staged file from here; closing it removes the
	// file on every path through the pipeline.
	source, err := csvfile.Open(path)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	output, err := h.ImportUC.Execute(r.Context(), listID, source)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordImport(output.Succeeded, output.Failed)

	if output.Failed > 0 {
		writeJSON(w, http.StatusBadRequest, importResponse{
			Message:                 "some subscribers were not imported",
			ImportSubscribersOutput: *output,
		})
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Message:                 "subscribers imported successfully",
		ImportSubscribersOutput: *output,
	})
}

// stage copies the upload to a temp file so the pipeline can stream it.
func (h *SubscriberHandler) stage(file io.Reader) (string, error) {
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(h.UploadDir, "upload-*.csv")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write staged upload: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

// Unsubscribe (GET /unsubscribe/{subscriberID}) flips the subscriber off.
func (h *SubscriberHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.UnsubscribeUC.Execute(r.Context(), chi.URLParam(r, "subscriberID")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "you have been unsubscribed successfully",
	})
}
