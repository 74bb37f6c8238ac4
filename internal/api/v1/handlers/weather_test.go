package handlers_test

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"ulascansenturk/weather-form/internal/api/v1/handlers"
	"ulascansenturk/weather-form/internal/mocks"
	"ulascansenturk/weather-form/internal/web"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-form/internal/service"
)

type WeatherHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockLookupService
	handler     *handlers.WeatherHandler
}

func (s *WeatherHandlerTestSuite) SetupTest() {
	tmpl, err := web.Templates()
	s.Require().NoError(err)

	s.mockService = mocks.NewMockLookupService(s.T())
	s.handler = handlers.NewWeatherHandler(s.mockService, tmpl, 5*time.Second)
}

func formRequest(city string) *http.Request {
	form := url.Values{}
	form.Set("city", city)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func (s *WeatherHandlerTestSuite) TestIndexRendersEmptyForm() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	s.handler.Index(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Header().Get("Content-Type"), "text/html")

	body := recorder.Body.String()
	s.Contains(body, `<form action="/" method="post">`)
	s.NotContains(body, `class="weather"`)
	s.NotContains(body, `class="error"`)

	s.mockService.AssertNotCalled(s.T(), "Lookup")
}

func (s *WeatherHandlerTestSuite) TestSubmitCitySuccess() {
	s.mockService.On("Lookup", mock.Anything, "Austin").
		Return(service.Success{DisplayText: "It's 72.5 degrees in Austin!", Location: "Austin"}).Once()

	recorder := httptest.NewRecorder()
	s.handler.SubmitCity(recorder, formRequest("Austin"))

	s.Equal(http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	s.Contains(body, "It&#39;s 72.5 degrees in Austin!")
	s.NotContains(body, `class="error"`)
}

func (s *WeatherHandlerTestSuite) TestSubmitCityFailure() {
	s.mockService.On("Lookup", mock.Anything, "Nonexistentville").
		Return(service.Failure{Message: service.GenericErrorMessage, Reason: service.CityNotFound}).Once()

	recorder := httptest.NewRecorder()
	s.handler.SubmitCity(recorder, formRequest("Nonexistentville"))

	s.Equal(http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	s.Contains(body, "Error, please try again")
	s.NotContains(body, `class="weather"`)
	s.NotContains(body, string(service.CityNotFound))
}

func (s *WeatherHandlerTestSuite) TestSubmitCityPassesCityVerbatim() {
	s.mockService.On("Lookup", mock.Anything, "  New York ").
		Return(service.Success{DisplayText: "It's 40 degrees in New York!", Location: "New York"}).Once()

	recorder := httptest.NewRecorder()
	s.handler.SubmitCity(recorder, formRequest("  New York "))

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *WeatherHandlerTestSuite) TestSubmitCityEmptyIsNotValidatedLocally() {
	s.mockService.On("Lookup", mock.Anything, "").
		Return(service.Failure{Message: service.GenericErrorMessage, Reason: service.CityNotFound}).Once()

	recorder := httptest.NewRecorder()
	s.handler.SubmitCity(recorder, formRequest(""))

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "Error, please try again")
}

func (s *WeatherHandlerTestSuite) TestSubmitCityAppliesTimeout() {
	s.handler = handlers.NewWeatherHandler(s.mockService, mustTemplates(s), 50*time.Millisecond)

	s.mockService.On("Lookup", mock.Anything, "SlowCity").
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(service.Failure{Message: service.GenericErrorMessage, Reason: service.TransportError}).Once()

	recorder := httptest.NewRecorder()
	s.handler.SubmitCity(recorder, formRequest("SlowCity"))

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "Error, please try again")
}

func (s *WeatherHandlerTestSuite) TestSubmitCityWrongMethod() {
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	recorder := httptest.NewRecorder()

	s.handler.SubmitCity(recorder, req)

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)

	var response handlers.ErrorResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Len(response.Errors, 1)
	s.Equal("METHOD_NOT_ALLOWED", response.Errors[0].Code)

	s.mockService.AssertNotCalled(s.T(), "Lookup")
}

func (s *WeatherHandlerTestSuite) TestGetWeatherSuccess() {
	s.mockService.On("Lookup", mock.Anything, "new york").
		Return(service.Success{DisplayText: "It's 40 degrees in New York!", Location: "New York"}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather?city=new%20york", nil)
	recorder := httptest.NewRecorder()

	s.handler.GetWeather(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.WeatherResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Equal("New York", response.Location)
	s.Equal("It's 40 degrees in New York!", response.Text)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherFailure() {
	s.mockService.On("Lookup", mock.Anything, "Austin").
		Return(service.Failure{Message: service.GenericErrorMessage, Reason: service.TransportError}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather?city=Austin", nil)
	recorder := httptest.NewRecorder()

	s.handler.GetWeather(recorder, req)

	s.Equal(http.StatusBadGateway, recorder.Code)

	var response handlers.ErrorResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Len(response.Errors, 1)
	s.Equal("BAD_GATEWAY", response.Errors[0].Code)
	s.Equal("Error, please try again", response.Errors[0].Detail)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherMissingCityIsPassedThrough() {
	s.mockService.On("Lookup", mock.Anything, "").
		Return(service.Failure{Message: service.GenericErrorMessage, Reason: service.CityNotFound}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather", nil)
	recorder := httptest.NewRecorder()

	s.handler.GetWeather(recorder, req)

	s.Equal(http.StatusBadGateway, recorder.Code)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherWrongMethod() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/weather?city=Austin", nil)
	recorder := httptest.NewRecorder()

	s.handler.GetWeather(recorder, req)

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
	s.mockService.AssertNotCalled(s.T(), "Lookup")
}

func (s *WeatherHandlerTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()

	s.handler.Health(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.HealthResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Equal("ok", response.Status)
}

func (s *WeatherHandlerTestSuite) TestNotFound() {
	req := httptest.NewRequest(http.MethodGet, "/forecast", nil)
	recorder := httptest.NewRecorder()

	s.handler.NotFound(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)

	var response handlers.ErrorResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Len(response.Errors, 1)
	s.Equal("NOT_FOUND", response.Errors[0].Code)
	s.Contains(response.Errors[0].Detail, "not found")
}

func mustTemplates(s *WeatherHandlerTestSuite) *template.Template {
	tmpl, err := web.Templates()
	s.Require().NoError(err)
	return tmpl
}

func TestWeatherHandlerSuite(t *testing.T) {
	suite.Run(t, new(WeatherHandlerTestSuite))
}
