package api

import (
	"net/http"
	"strconv"

	"github.com/tvaleev/studypath/internal/errors"
)

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	days := s.ForecastDays
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid days"))
			return
		}
		days = parsed
	}

	forecast, err := s.InsightService.GetForecast(r.Context(), days)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, forecast)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	limit := s.InsightLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid limit"))
			return
		}
		limit = parsed
	}

	insights, err := s.InsightService.GetInsights(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, insights)
}
