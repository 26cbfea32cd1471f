package external

import (
	"context"
	"net/url"
	"strconv"

	"github.com/lunahq/luna/pkg/bioinsight"
)

// Default coordinates (New York) used when the caller has no location.
const (
	DefaultLatitude  = 40.7128
	DefaultLongitude = -74.0060
)

// FallbackWeather is a mild clear day.
var FallbackWeather = bioinsight.Weather{
	Temperature: 22,
	WeatherCode: 0,
	IsDay:       true,
}

type openMeteoResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
		IsDay       int     `json:"is_day"`
	} `json:"current_weather"`
}

// Weather returns current conditions at the given coordinates from Open-Meteo.
// Temperature is in degrees Celsius.
func (c *Client) Weather(ctx context.Context, lat, long float64) Result[bioinsight.Weather] {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(long, 'f', -1, 64))
	q.Set("current_weather", "true")

	var resp openMeteoResponse
	if err := c.getJSON(ctx, c.endpoints.Weather+"/v1/forecast?"+q.Encode(), &resp); err != nil {
		return settle(ctx, c, ProviderWeather, fallback(FallbackWeather, err))
	}
	if resp.CurrentWeather == nil {
		return settle(ctx, c, ProviderWeather, fallback(FallbackWeather, ErrEmptyResponse))
	}

	return settle(ctx, c, ProviderWeather, live(bioinsight.Weather{
		Temperature: resp.CurrentWeather.Temperature,
		WeatherCode: resp.CurrentWeather.WeatherCode,
		IsDay:       resp.CurrentWeather.IsDay == 1,
	}))
}
