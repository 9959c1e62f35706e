package widgets

import (
	"context"
	"errors"
	"net/url"
)

var errUnexpectedWeatherShape = errors.New("unexpected response shape")

// weatherBaseURL is a variable so tests can point the handler at a stub.
var weatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// WeatherData is the normalized payload served to the weather widget.
type WeatherData struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Icon        string  `json:"icon"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	FeelsLike   float64 `json:"feelsLike"`
}

func init() {
	MustRegister(HandlerInfo{
		Type:           "weather",
		Handler:        fetchWeather,
		Description:    "Current conditions from OpenWeatherMap",
		Refreshable:    true,
		RequiresAPIKey: true,
	})
}

// fetchWeather queries OpenWeatherMap and normalizes the response down to
// the handful of fields the widget renders.
func fetchWeather(ctx context.Context, cfg map[string]interface{}) interface{} {
	apiKey := stringValue(cfg, "apiKey")
	location := stringValue(cfg, "location")
	units := stringValue(cfg, "units")

	if apiKey == "" {
		return ErrorPayload{Error: "Weather API key not configured"}
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("units", units)
	query.Set("appid", apiKey)
	endpoint := weatherBaseURL + "?" + query.Encode()

	data, err := fetchJSON(ctx, endpoint, "", nil)
	if err != nil {
		logFetchError("weather", err)
		return ErrorPayload{Error: "Failed to fetch weather data"}
	}

	root, ok := data.(map[string]interface{})
	if !ok {
		return ErrorPayload{Error: "Failed to fetch weather data"}
	}

	// A response without the main block or the conditions array is not a
	// weather payload, whatever its status code said.
	main, ok := root["main"].(map[string]interface{})
	if !ok {
		logFetchError("weather", errUnexpectedWeatherShape)
		return ErrorPayload{Error: "Failed to fetch weather data"}
	}
	conditions, ok := root["weather"].([]interface{})
	if !ok || len(conditions) == 0 {
		logFetchError("weather", errUnexpectedWeatherShape)
		return ErrorPayload{Error: "Failed to fetch weather data"}
	}

	out := WeatherData{
		Temperature: toFloat(main["temp"]),
		Humidity:    toFloat(main["humidity"]),
		FeelsLike:   toFloat(main["feels_like"]),
	}
	if name, ok := root["name"].(string); ok {
		out.Location = name
	}
	if wind, ok := root["wind"].(map[string]interface{}); ok {
		out.WindSpeed = toFloat(wind["speed"])
	}
	if first, ok := conditions[0].(map[string]interface{}); ok {
		if s, ok := first["main"].(string); ok {
			out.Condition = s
		}
		if s, ok := first["description"].(string); ok {
			out.Description = s
		}
		if s, ok := first["icon"].(string); ok {
			out.Icon = s
		}
	}
	return out
}
