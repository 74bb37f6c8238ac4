package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"ulascansenturk/weather-form/internal/api/middleware"
	"ulascansenturk/weather-form/internal/api/v1/handlers"
	"ulascansenturk/weather-form/internal/web"
)

func NewRouter(weatherHandler *handlers.WeatherHandler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(logger)...)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.NotFound(weatherHandler.NotFound)
	r.MethodNotAllowed(weatherHandler.MethodNotAllowed)

	r.Get("/", weatherHandler.Index)
	r.Post("/", weatherHandler.SubmitCity)
	r.Get("/healthz", weatherHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/weather", weatherHandler.GetWeather)
	})

	static := http.FileServer(http.FS(web.Static()))
	r.Handle("/css/*", static)

	return r
}
