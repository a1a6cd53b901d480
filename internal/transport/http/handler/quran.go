package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/muslimtime-api/internal/application/quran"
)

// QuranHandler serves Quran content endpoints.
type QuranHandler struct {
	svc quran.Service
}

func NewQuranHandler(svc quran.Service) *QuranHandler {
	return &QuranHandler{svc: svc}
}

func (h *QuranHandler) ListSurahs(w http.ResponseWriter, r *http.Request) {
	surahs, err := h.svc.ListSurahs(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"surahs": surahs})
}

func (h *QuranHandler) GetSurah(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "surah number must be numeric")
		return
	}
	detail, err := h.svc.GetSurah(r.Context(), number)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"surah": detail})
}

func (h *QuranHandler) GetJuz(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "juz number must be numeric")
		return
	}
	juz, err := h.svc.GetJuz(r.Context(), number)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"juz": juz})
}
