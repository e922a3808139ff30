package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

const (
	openWeatherMapName           = "openweathermap"
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultWeatherTimeout        = 10 * time.Second
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	// Client overrides the traced default client.
	Client HTTPClient
}

type owmConditions struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Readings are pointers so an absent key can be told apart from a zero.
type owmMain struct {
	Temp     *float64 `json:"temp"`
	Humidity *float64 `json:"humidity"`
}

type owmWind struct {
	Speed *float64 `json:"speed"`
}

type owmCurrentResponse struct {
	Name *string `json:"name"`
	Sys  *struct {
		Country *string `json:"country"`
	} `json:"sys"`
	Main    *owmMain        `json:"main"`
	Wind    *owmWind        `json:"wind"`
	Weather []owmConditions `json:"weather"`
	Dt      int64           `json:"dt"`
}

type owmForecastItem struct {
	Dt      int64           `json:"dt"`
	DtTxt   string          `json:"dt_txt"`
	Main    *owmMain        `json:"main"`
	Wind    *owmWind        `json:"wind"`
	Weather []owmConditions `json:"weather"`
	// Rain is non-empty whenever the key is present, even as null.
	Rain json.RawMessage `json:"rain"`
}

type owmForecastResponse struct {
	List *[]owmForecastItem `json:"list"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultWeatherTimeout
	}
	client := params.Client
	if client == nil {
		client = NewTracedHTTPClient(timeout)
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves current conditions from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, location string) (*ports.CurrentWeather, error) {
	var apiResp owmCurrentResponse
	if err := p.get(ctx, "weather", location, nil, &apiResp); err != nil {
		return nil, err
	}
	if err := apiResp.validate(); err != nil {
		return nil, errors.NewExternalAPIError("malformed OpenWeatherMap response", err)
	}

	conditions := apiResp.Weather[0]
	return &ports.CurrentWeather{
		Location: *apiResp.Name,
		Country:  *apiResp.Sys.Country,
		WeatherSnapshot: ports.WeatherSnapshot{
			Temperature: *apiResp.Main.Temp,
			Humidity:    *apiResp.Main.Humidity,
			WindSpeed:   *apiResp.Wind.Speed,
			Description: conditions.Description,
			IconCode:    conditions.Icon,
			Timestamp:   time.Unix(apiResp.Dt, 0).UTC(),
		},
	}, nil
}

// GetForecast retrieves count three-hour forecast steps from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, location string, count int) ([]ports.WeatherSnapshot, error) {
	extra := url.Values{}
	if count > 0 {
		extra.Set("cnt", strconv.Itoa(count))
	}

	var apiResp owmForecastResponse
	if err := p.get(ctx, "forecast", location, extra, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.List == nil {
		return nil, errors.NewExternalAPIError("malformed OpenWeatherMap response", fmt.Errorf("forecast has no list"))
	}

	items := *apiResp.List
	entries := make([]ports.WeatherSnapshot, 0, len(items))
	for i, item := range items {
		if !item.Main.complete() {
			return nil, errors.NewExternalAPIError("malformed OpenWeatherMap response",
				fmt.Errorf("forecast entry %d has no temperature or humidity", i))
		}
		conditions := firstConditions(item.Weather)
		entries = append(entries, ports.WeatherSnapshot{
			Temperature: *item.Main.Temp,
			Humidity:    *item.Main.Humidity,
			WindSpeed:   item.Wind.speed(),
			Description: conditions.Description,
			IconCode:    conditions.Icon,
			Timestamp:   time.Unix(item.Dt, 0).UTC(),
			DateText:    item.DtTxt,
			HasRain:     len(item.Rain) > 0,
		})
	}
	return entries, nil
}

func (p *OpenWeatherMapProviderAdapter) get(ctx context.Context, endpoint, location string, extra url.Values, out interface{}) error {
	if !p.IsConfigured() {
		return errors.NewConfigurationError("OpenWeatherMap API key is not configured", nil)
	}
	if strings.TrimSpace(location) == "" {
		return errors.NewValidationError("location cannot be empty")
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")
	for key, values := range extra {
		query[key] = values
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewNotFoundError(fmt.Sprintf("location %q not found", location))
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.NewConfigurationError("OpenWeatherMap rejected the API key",
			fmt.Errorf("status=%d body=%s", resp.StatusCode, readErrorBody(resp.Body)))
	case resp.StatusCode != http.StatusOK:
		return errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode),
			fmt.Errorf("body=%s", readErrorBody(resp.Body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}
	return nil
}

// validate reports the first field the advisory needs that the payload lacks.
func (r *owmCurrentResponse) validate() error {
	switch {
	case r.Name == nil:
		return fmt.Errorf("missing name")
	case r.Sys == nil || r.Sys.Country == nil:
		return fmt.Errorf("missing sys.country")
	case !r.Main.complete():
		return fmt.Errorf("missing main.temp or main.humidity")
	case r.Wind == nil || r.Wind.Speed == nil:
		return fmt.Errorf("missing wind.speed")
	case len(r.Weather) == 0:
		return fmt.Errorf("missing weather conditions")
	}
	return nil
}

func (m *owmMain) complete() bool {
	return m != nil && m.Temp != nil && m.Humidity != nil
}

func (w *owmWind) speed() float64 {
	if w == nil || w.Speed == nil {
		return 0
	}
	return *w.Speed
}

func firstConditions(conditions []owmConditions) owmConditions {
	if len(conditions) == 0 {
		return owmConditions{}
	}
	return conditions[0]
}

// IsConfigured reports whether an API key is set
func (p *OpenWeatherMapProviderAdapter) IsConfigured() bool {
	return p.apiKey != ""
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return openWeatherMapName
}
