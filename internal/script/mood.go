package script

import "strings"

// MusicKey names a background music track family. The caller maps a key to
// an actual audio file.
type MusicKey string

const (
	MusicRainy  MusicKey = "rainy"
	MusicCold   MusicKey = "cold"
	MusicNormal MusicKey = "normal"
	MusicWarm   MusicKey = "warm"
	MusicHot    MusicKey = "hot"
)

// Forecast carries the optional forecast values used to bias mood and advice
// towards how the day develops rather than the current observation.
type Forecast struct {
	Temp      float64
	Condition string
}

func rainy(cond string) bool {
	return strings.Contains(cond, "regen") ||
		strings.Contains(cond, "bui") ||
		strings.Contains(cond, "motregen")
}

// Mood maps temperature and condition to a Dutch mood phrase and a music
// key. When a forecast is given it takes precedence over the current
// observation. Rain overrides the temperature bands.
func Mood(tempC float64, condition string, forecast *Forecast) (string, MusicKey) {
	useTemp := tempC
	useCond := strings.ToLower(condition)
	if forecast != nil {
		useTemp = forecast.Temp
		if forecast.Condition != "" {
			useCond = strings.ToLower(forecast.Condition)
		}
	}

	if rainy(useCond) {
		return "regenachtig", MusicRainy
	}

	switch {
	case useTemp <= 5:
		return "erg koud", MusicCold
	case useTemp <= 15:
		return "aangenaam", MusicNormal
	case useTemp <= 23:
		return "lekker warm", MusicWarm
	default:
		return "heet", MusicHot
	}
}
