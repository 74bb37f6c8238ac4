package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-form/internal/providers"
)

type LookupService interface {
	Lookup(ctx context.Context, city string) LookupResult
}

type lookupService struct {
	provider providers.WeatherProvider
}

func NewLookupService(provider providers.WeatherProvider) LookupService {
	return &lookupService{
		provider: provider,
	}
}

// Lookup never returns an error: every provider outcome becomes a LookupResult.
// The city is passed through untouched, empty strings included.
func (s *lookupService) Lookup(ctx context.Context, city string) LookupResult {
	logger := zerolog.Ctx(ctx)

	weather, err := s.provider.CurrentWeather(ctx, city)
	if err != nil {
		reason := TransportError
		if errors.Is(err, providers.ErrCityNotFound) {
			reason = CityNotFound
		}

		logger.Warn().Err(err).Str("city", city).Str("reason", string(reason)).Msg("weather lookup failed")

		return newFailure(reason)
	}

	if weather == nil || weather.Main == nil || weather.Main.Temp == nil {
		logger.Warn().Str("city", city).Msg("weather provider returned no metrics")
		return newFailure(CityNotFound)
	}

	return Success{
		DisplayText: formatWeather(*weather.Main.Temp, weather.Name),
		Location:    weather.Name,
	}
}

func formatWeather(temperature float64, name string) string {
	return fmt.Sprintf("It's %s degrees in %s!", strconv.FormatFloat(temperature, 'f', -1, 64), name)
}
