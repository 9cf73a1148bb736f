package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-mailer/internal/infra/report"
)

type ReportHandler struct {
	Sink *report.FilesystemSink
}

func NewReportHandler(sink *report.FilesystemSink) *ReportHandler {
	return &ReportHandler{Sink: sink}
}

// Download (GET /reports/{name}) serves a failed-records artifact.
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !h.Sink.Exists(name) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "report not found"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, h.Sink.Path(name))
}
