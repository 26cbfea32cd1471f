package bioinsight

// Weather is a current weather reading. Temperature is in degrees Celsius and
// WeatherCode follows the WMO codes used by Open-Meteo.
type Weather struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weatherCode"`
	IsDay       bool    `json:"isDay"`
}

const (
	coldBelow   = 15.0
	hotAbove    = 25.0
	rainyFromWM = 51
)

func (w Weather) IsCold() bool  { return w.Temperature < coldBelow }
func (w Weather) IsHot() bool   { return w.Temperature > hotAbove }
func (w Weather) IsRainy() bool { return w.WeatherCode >= rainyFromWM }

// Conditions describes a WMO weather code in a couple of words.
func Conditions(code int) string {
	switch {
	case code == 0:
		return "Clear skies"
	case code >= 1 && code <= 3:
		return "Partly cloudy"
	case code >= 45 && code <= 48:
		return "Foggy"
	case code >= 51 && code <= 67:
		return "Rainy"
	case code >= 71:
		return "Snowy"
	default:
		return "Overcast"
	}
}
