package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	imperialUnits      = "imperial"
)

var (
	// ErrTransport covers network failures, timeouts and bodies that are not JSON.
	ErrTransport = errors.New("weather provider transport failure")
	// ErrCityNotFound is returned when the provider answers without weather metrics.
	ErrCityNotFound = errors.New("city not found")
)

type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (*CurrentWeather, error)
	GetHTTPClient() *http.Client
}

// Temp stays nil when the reply carries a main object without a temperature.
type MainMetrics struct {
	Temp *float64 `json:"temp"`
}

// CurrentWeather is the subset of the /data/2.5/weather reply this service reads.
// Main stays nil when the provider did not recognise the city.
type CurrentWeather struct {
	Name    string       `json:"name"`
	Main    *MainMetrics `json:"main"`
	Cod     any          `json:"cod,omitempty"`
	Message string       `json:"message,omitempty"`
}

type openWeatherMap struct {
	apiKey  string
	baseURL string
	client  *http.Client
	tracer  trace.Tracer
}

func NewOpenWeatherMap(apiKey, baseURL string, timeout time.Duration) WeatherProvider {
	return &openWeatherMap{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		tracer: otel.Tracer("ulascansenturk/weather-form/providers"),
	}
}

func (p *openWeatherMap) CurrentWeather(ctx context.Context, city string) (*CurrentWeather, error) {
	ctx, span := p.tracer.Start(ctx, "openweathermap.current_weather")
	defer span.End()

	span.SetAttributes(attribute.String("city", city))

	weather, err := p.fetch(ctx, city)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("resolved_name", weather.Name),
		attribute.Float64("temperature_f", *weather.Main.Temp),
	)

	return weather, nil
}

func (p *openWeatherMap) fetch(ctx context.Context, city string) (*CurrentWeather, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.requestURL(city), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrTransport, stripURL(err))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, stripURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, stripURL(err))
	}

	// Unknown cities come back as 404 with a JSON body, so the body decides.
	var weather CurrentWeather
	if err := json.Unmarshal(body, &weather); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON (status %d): %v", ErrTransport, resp.StatusCode, err)
	}

	if weather.Main == nil {
		return nil, fmt.Errorf("%w: cod=%v message=%q", ErrCityNotFound, weather.Cod, weather.Message)
	}

	if weather.Main.Temp == nil {
		return nil, fmt.Errorf("%w: main.temp missing for %q", ErrCityNotFound, weather.Name)
	}

	return &weather, nil
}

func (p *openWeatherMap) requestURL(city string) string {
	query := url.Values{}
	query.Set("q", city)
	query.Set("units", imperialUnits)
	query.Set("appid", p.apiKey)

	// QueryEscape turns spaces into '+'; a literal '+' is already %2B at this point.
	return p.baseURL + currentWeatherPath + "?" + strings.ReplaceAll(query.Encode(), "+", "%20")
}

// stripURL drops the request URL that url.Error carries, appid included.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func (p *openWeatherMap) GetHTTPClient() *http.Client {
	return p.client
}
