package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-mailer/internal/entity"
	"github.com/xavierca1/ligue-mailer/internal/usecase"
)

type ListHandler struct {
	CreateUC *usecase.CreateListUseCase
	Repo     usecase.ListRepositoryInterface
}

func NewListHandler(createUC *usecase.CreateListUseCase, repo usecase.ListRepositoryInterface) *ListHandler {
	return &ListHandler{CreateUC: createUC, Repo: repo}
}

// Create (POST /lists) registers a list with its field schema.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateListInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	list, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, list)
}

// List (GET /lists) enumerates every list in creation order.
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load lists"})
		return
	}
	if lists == nil {
		lists = []*entity.List{}
	}

	writeJSON(w, http.StatusOK, lists)
}

// Get (GET /lists/{listID}) returns one list.
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		if err == entity.ErrListNotFound {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load list"})
		return
	}

	writeJSON(w, http.StatusOK, list)
}
