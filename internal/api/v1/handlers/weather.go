package handlers

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"ulascansenturk/weather-form/internal/service"
	"ulascansenturk/weather-form/internal/web"
)

type WeatherHandler struct {
	lookupService service.LookupService
	templates     *template.Template
	timeout       time.Duration
}

func NewWeatherHandler(lookupService service.LookupService, templates *template.Template, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		lookupService: lookupService,
		templates:     templates,
		timeout:       timeout,
	}
}

// Index renders the empty form.
func (h *WeatherHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, web.PageData{})
}

// SubmitCity handles the form post and renders either the weather sentence or the error.
func (h *WeatherHandler) SubmitCity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseForm(); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("failed to parse form")
		h.renderPage(w, r, http.StatusBadRequest, web.PageData{Error: service.GenericErrorMessage})
		return
	}

	city := r.PostForm.Get("city")

	result := h.lookup(r, city)

	h.renderPage(w, r, http.StatusOK, pageDataFor(result))
}

// GetWeather is the JSON variant of SubmitCity, reading the city from the query string.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := r.URL.Query().Get("city")

	switch res := h.lookup(r, city).(type) {
	case service.Success:
		respondWithJSON(w, r, http.StatusOK, WeatherResponse{
			Location: res.Location,
			Text:     res.DisplayText,
		})
	case service.Failure:
		respondWithError(w, r, http.StatusBadGateway, res.Message)
	default:
		respondWithError(w, r, http.StatusInternalServerError, service.GenericErrorMessage)
	}
}

func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *WeatherHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, r, http.StatusNotFound, "not found")
}

func (h *WeatherHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (h *WeatherHandler) lookup(r *http.Request, city string) service.LookupResult {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	return h.lookupService.Lookup(ctx, city)
}
