package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-mailer/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-mailer/internal/infra/queue"
	"github.com/xavierca1/ligue-mailer/internal/usecase"
)

const defaultSubject = "Welcome to our mailing list"

type CampaignHandler struct {
	SendUC   *usecase.SendCampaignUseCase
	Producer queue.CampaignProducerInterface
}

func NewCampaignHandler(sendUC *usecase.SendCampaignUseCase, producer queue.CampaignProducerInterface) *CampaignHandler {
	return &CampaignHandler{SendUC: sendUC, Producer: producer}
}

type sendCampaignRequest struct {
	Subject string `json:"subject"`
	Async   bool   `json:"async"`
}

type campaignResponse struct {
	Message string `json:"message"`
	usecase.BatchOutcome
}

// Send (POST /lists/{listID}/campaigns) fans the campaign out to every
// subscribed member. With "async": true the job is queued instead and the
// worker runs the same dispatch.
func (h *CampaignHandler) Send(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")

	var req sendCampaignRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
			return
		}
	}
	if req.Subject == "" {
		req.Subject = defaultSubject
	}

	if req.Async && h.Producer != nil {
		err := h.Producer.PublishCampaign(r.Context(), queue.CampaignPayload{
			ListID:  listID,
			Subject: req.Subject,
		})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to queue campaign"})
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
		return
	}

	outcome, err := h.SendUC.Execute(r.Context(), usecase.SendCampaignInput{
		ListID:  listID,
		Subject: req.Subject,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCampaign(outcome.Succeeded, outcome.Failed)

	if outcome.Failed > 0 {
		writeJSON(w, http.StatusBadRequest, campaignResponse{
			Message:      "some emails were not sent",
			BatchOutcome: *outcome,
		})
		return
	}

	writeJSON(w, http.StatusOK, campaignResponse{
		Message:      "emails have been sent successfully",
		BatchOutcome: *outcome,
	})
}
