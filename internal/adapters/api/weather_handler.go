package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"kisankalyan.app/internal/core/weather"
)

// CurrentWeatherResponse holds current readings; unavailable readings encode as "N/A".
type CurrentWeatherResponse struct {
	Temperature weather.Measurement `json:"temperature"`
	Humidity    weather.Measurement `json:"humidity"`
	WindSpeed   weather.Measurement `json:"wind_speed"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
}

// ForecastDayResponse is one day of the forecast
type ForecastDayResponse struct {
	Date        string  `json:"date"`
	Temp        float64 `json:"temp"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// WeatherResponse represents the HTTP response for a weather advisory
type WeatherResponse struct {
	Location               string                 `json:"location"`
	Country                string                 `json:"country"`
	Current                CurrentWeatherResponse `json:"current"`
	Forecast               []ForecastDayResponse  `json:"forecast"`
	FarmingRecommendations []string               `json:"farming_recommendations"`
	Error                  string                 `json:"error,omitempty"`
}

func newWeatherResponse(advisory *weather.Advisory) WeatherResponse {
	forecast := make([]ForecastDayResponse, 0, len(advisory.Forecast))
	for _, day := range advisory.Forecast {
		forecast = append(forecast, ForecastDayResponse{
			Date:        day.Date,
			Temp:        day.Temperature,
			Humidity:    day.Humidity,
			Description: day.Description,
			Icon:        day.IconURL,
		})
	}

	recommendations := advisory.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	return WeatherResponse{
		Location: advisory.Location,
		Country:  advisory.Country,
		Current: CurrentWeatherResponse{
			Temperature: advisory.Current.Temperature,
			Humidity:    advisory.Current.Humidity,
			WindSpeed:   advisory.Current.WindSpeed,
			Description: advisory.Current.Description,
			Icon:        advisory.Current.IconURL,
		},
		Forecast:               forecast,
		FarmingRecommendations: recommendations,
		Error:                  advisory.Error,
	}
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	location := c.DefaultQuery("location", s.config.DefaultLocation)

	slog.Debug("Getting weather advisory", "location", location)

	advisory, err := s.weatherUseCase.GetAdvisory(c.Request.Context(), weather.AdvisoryRequest{
		SessionID: sessionID(c),
		Location:  location,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherResponse(advisory))
}
