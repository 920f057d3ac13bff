package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createPackRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleCreatePack(w http.ResponseWriter, r *http.Request) {
	var req createPackRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	pack, err := s.PackService.CreatePack(r.Context(), req.Name, req.Description)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, pack)
}

func (s *Server) handleListPacks(w http.ResponseWriter, r *http.Request) {
	packs, err := s.PackService.ListPacks(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"packs": packs})
}

type addCardToPackRequest struct {
	CardID string `json:"card_id"`
}

func (s *Server) handleAddCardToPack(w http.ResponseWriter, r *http.Request) {
	var req addCardToPackRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.PackService.AddCardToPack(r.Context(), chi.URLParam(r, "id"), req.CardID); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
