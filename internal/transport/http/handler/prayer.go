package handler

import (
	"net/http"
	"strconv"

	"github.com/muslimtime-api/internal/application/prayer"
)

// PrayerHandler serves prayer-time endpoints.
type PrayerHandler struct {
	svc prayer.Service
}

func NewPrayerHandler(svc prayer.Service) *PrayerHandler {
	return &PrayerHandler{svc: svc}
}

// Today resolves the schedule either from city+country or lat+lng query
// parameters, coordinates taking precedence when both are present.
func (h *PrayerHandler) Today(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("latitude") != "" || q.Get("longitude") != "" {
		lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("longitude"), 64)
		if errLat != nil || errLng != nil {
			writeError(w, http.StatusBadRequest, "latitude and longitude must be numeric")
			return
		}
		times, err := h.svc.ByCoordinates(r.Context(), lat, lng)
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"prayer_times": times})
		return
	}

	times, err := h.svc.ByCity(r.Context(), q.Get("city"), q.Get("country"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"prayer_times": times})
}
