package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"ulascansenturk/weather-form/internal/service"
	"ulascansenturk/weather-form/internal/web"
)

func respondWithError(w http.ResponseWriter, r *http.Request, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	}

	respondWithJSON(w, r, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to encode response")
	}
}

func (h *WeatherHandler) renderPage(w http.ResponseWriter, r *http.Request, code int, data web.PageData) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, web.IndexTemplate, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to write page")
	}
}

func pageDataFor(result service.LookupResult) web.PageData {
	switch res := result.(type) {
	case service.Success:
		return web.PageData{Weather: res.DisplayText}
	case service.Failure:
		return web.PageData{Error: res.Message}
	default:
		return web.PageData{Error: service.GenericErrorMessage}
	}
}
