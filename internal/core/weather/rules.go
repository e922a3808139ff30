package weather

import (
	"time"

	"kisankalyan.app/internal/ports"
)

const (
	heatThresholdC      = 35.0
	frostThresholdC     = 10.0
	highHumidityPercent = 80.0
	lowHumidityPercent  = 30.0
	windThresholdMS     = 5.0
	// Eight 3-hour steps cover the next 24 hours.
	rainLookaheadSteps = 8
)

const (
	adviceHeat         = "High temperature alert! Ensure crops have adequate water. Consider overhead sprinkling for cooling effect."
	adviceFrost        = "Low temperature alert! Protect sensitive crops from frost. Use covers or heaters if available."
	adviceHighHumidity = "High humidity detected. Monitor for fungal diseases and mildew. Apply fungicides if necessary."
	adviceLowHumidity  = "Low humidity detected. Increase irrigation and consider mulching to retain soil moisture."
	adviceRainSoon     = "Rain expected in the next 24 hours. Hold off on applying fertilizers or pesticides."
	adviceNoRain       = "No significant rain expected in the next 24 hours. Good opportunity for field operations."
	adviceWind         = "Moderate to high winds expected. Avoid spraying operations and secure young plants."
	adviceSpring       = "Spring season: Good time for planting summer crops. Prepare fields and ensure adequate nutrition."
	adviceSummer       = "Summer season: Monitor irrigation needs carefully. Consider shade for sensitive crops."
	adviceFall         = "Fall season: Prepare for harvest operations. Monitor storage conditions for harvested crops."
	adviceWinter       = "Winter season: Focus on winter crops and preparation for spring planting. Protect soil from erosion."
)

// Recommend evaluates every rule in a fixed order: temperature, humidity,
// rain, wind, season. The rain and season rules always contribute a line.
func Recommend(current ports.WeatherSnapshot, forecast []ports.WeatherSnapshot, now time.Time) []string {
	var advice []string

	switch {
	case current.Temperature > heatThresholdC:
		advice = append(advice, adviceHeat)
	case current.Temperature < frostThresholdC:
		advice = append(advice, adviceFrost)
	}

	switch {
	case current.Humidity > highHumidityPercent:
		advice = append(advice, adviceHighHumidity)
	case current.Humidity < lowHumidityPercent:
		advice = append(advice, adviceLowHumidity)
	}

	if rainExpected(forecast) {
		advice = append(advice, adviceRainSoon)
	} else {
		advice = append(advice, adviceNoRain)
	}

	if current.WindSpeed > windThresholdMS {
		advice = append(advice, adviceWind)
	}

	return append(advice, seasonalAdvice(now.Month()))
}

func rainExpected(forecast []ports.WeatherSnapshot) bool {
	for i, entry := range forecast {
		if i == rainLookaheadSteps {
			break
		}
		if entry.HasRain {
			return true
		}
	}
	return false
}

// seasonalAdvice uses Northern Hemisphere bands regardless of location.
func seasonalAdvice(month time.Month) string {
	switch {
	case month >= time.March && month <= time.May:
		return adviceSpring
	case month >= time.June && month <= time.August:
		return adviceSummer
	case month >= time.September && month <= time.November:
		return adviceFall
	default:
		return adviceWinter
	}
}
