// Package weather fetches current conditions from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/minhyannv/chat-tools-go/pkg/logger"
)

// DefaultBaseURL is the OpenWeatherMap current-weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Reading is one normalized current-conditions lookup.
type Reading struct {
	City        string // provider-reported name
	Country     string
	Temperature float64 // °C
	FeelsLike   float64 // °C
	Humidity    int     // percent
	Description string  // title-cased condition text
	WindSpeed   float64 // m/s
}

// Config configures a Client. Zero values fall back to DefaultBaseURL,
// http.DefaultClient and a NopLogger.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Logger     logger.Logger
}

// Client looks up current conditions. One GET per call, no retries.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		// http.DefaultClient carries no timeout; a lookup blocks until
		// the transport gives up.
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = logger.NopLogger{}
	}
	return c
}

// Current fetches the conditions for city. Failures come back as one of
// AuthError, NotFoundError, StatusError, NetworkError or ParseError;
// NotFoundError carries city exactly as passed in.
func (c *Client) Current(ctx context.Context, city string) (Reading, error) {
	trimmed := strings.TrimSpace(city)
	logger.Info(c.logger, "fetching weather", logger.Fields{"city": trimmed})

	values := url.Values{}
	values.Set("q", trimmed)
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Reading{}, &NetworkError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reading{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return Reading{}, &AuthError{}
	case resp.StatusCode == http.StatusNotFound:
		return Reading{}, &NotFoundError{City: city}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return Reading{}, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	// Sub-objects are pointers so a missing one is told apart from
	// decoded zero values.
	var payload struct {
		Name string `json:"name"`
		Sys  *struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main *struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind *struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Reading{}, &ParseError{Err: err}
	}
	switch {
	case payload.Name == "":
		return Reading{}, &ParseError{Field: "name"}
	case payload.Sys == nil:
		return Reading{}, &ParseError{Field: "sys"}
	case payload.Main == nil:
		return Reading{}, &ParseError{Field: "main"}
	case len(payload.Weather) == 0:
		return Reading{}, &ParseError{Field: "weather"}
	case payload.Wind == nil:
		return Reading{}, &ParseError{Field: "wind"}
	}

	return Reading{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Description: cases.Title(language.English).String(payload.Weather[0].Description),
		WindSpeed:   payload.Wind.Speed,
	}, nil
}
