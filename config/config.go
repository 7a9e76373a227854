package config

import (
	"log"
	"os"
	"strconv"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret string

	// Analytics tuning. Defaults match the thresholds the reporting
	// team signed off on; all of them can be overridden from the
	// environment.
	PriceBandWidth     float64 // width of a price band in dollars
	CriticalDeclinePct float64 // month-over-month decline that pages someone
	WarningDeclinePct  float64 // month-over-month decline worth a look
	LowVolumeUnits     float64 // average monthly units below this is a slow mover
	ForecastHorizon    int     // months to project past the last observed month
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from the environment.
func Load(jwtSecret string) {
	AppConfig = Config{
		JWTSecret:          jwtSecret,
		PriceBandWidth:     envFloat("PRICE_BAND_WIDTH", 50),
		CriticalDeclinePct: envFloat("CRITICAL_DECLINE_PCT", 30),
		WarningDeclinePct:  envFloat("WARNING_DECLINE_PCT", 15),
		LowVolumeUnits:     envFloat("LOW_VOLUME_UNITS", 2),
		ForecastHorizon:    envInt("FORECAST_HORIZON_MONTHS", 3),
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid value for %s (%q), using default %.2f", key, raw, fallback)
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid value for %s (%q), using default %d", key, raw, fallback)
		return fallback
	}
	return v
}
