package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/utils"
	"github.com/jb131997/gymdesk/models"
)

func (h *Handler) getDashboardConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	cfg, err := h.services.DashboardService.GetConfig(r.Context(), gym)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDashboardConfig").Msg("error getting dashboard config")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, cfg, http.StatusOK)
}

func (h *Handler) saveDashboardConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	var cfg models.DashboardConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Err(err).Str("func", "*Handler.saveDashboardConfig").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	cfg.GymID = gym

	if err := h.services.DashboardService.SaveConfig(r.Context(), cfg); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "invalid dashboard config", http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.saveDashboardConfig").Msg("error saving dashboard config")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getGymMetrics serves the aggregate for the ?start&end window (RFC 3339).
// An omitted window defaults to the last 30 days.
func (h *Handler) getGymMetrics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	rng, err := metricsRangeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics, err := h.services.DashboardService.GetGymMetrics(r.Context(), gym, rng)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "invalid metrics range", http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.getGymMetrics").Msg("error computing gym metrics")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, metrics, http.StatusOK)
}

func metricsRangeFromQuery(r *http.Request) (models.MetricsRange, error) {
	now := time.Now().UTC()
	rng := models.MetricsRange{
		Start: now.AddDate(0, 0, -30),
		End:   now,
	}

	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.MetricsRange{}, errors.New("invalid start timestamp")
		}
		rng.Start = start
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.MetricsRange{}, errors.New("invalid end timestamp")
		}
		rng.End = end
	}

	return rng, nil
}
