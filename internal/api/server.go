package api

import (
	"encoding/json"
	"net/http"

	"github.com/tvaleev/studypath/internal/errors"
	"github.com/tvaleev/studypath/internal/services"
)

type Server struct {
	CardService    services.CardService
	PackService    services.PackService
	InsightService services.InsightService

	ForecastDays int
	InsightLimit int
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}
