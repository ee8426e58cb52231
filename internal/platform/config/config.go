package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// JWTSecret verifies bearer tokens issued by the external auth backend.
	JWTSecret string

	// FrontendBaseURL is the dashboard origin allowed by CORS.
	FrontendBaseURL string

	// Analytics defaults; individual requests may override per call.
	AnomalyModerateZ  float64
	AnomalySevereZ    float64
	AnomalyMinSamples int
	ForecastWindow    int

	// UploadRateLimit is a ulule/limiter formatted rate, e.g. "20-M".
	UploadRateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Defaults are set first, then the .env file, then real
// environment variables override both.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("ANOMALY_MODERATE_Z", 2.0)
	viper.SetDefault("ANOMALY_SEVERE_Z", 3.0)
	viper.SetDefault("ANOMALY_MIN_SAMPLES", 5)
	viper.SetDefault("FORECAST_WINDOW", 3)
	viper.SetDefault("UPLOAD_RATE_LIMIT", "20-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.AnomalyModerateZ = viper.GetFloat64("ANOMALY_MODERATE_Z")
	cfg.AnomalySevereZ = viper.GetFloat64("ANOMALY_SEVERE_Z")
	if cfg.AnomalySevereZ < cfg.AnomalyModerateZ {
		log.Printf("Warning: ANOMALY_SEVERE_Z (%v) below ANOMALY_MODERATE_Z (%v). Using defaults.\n",
			cfg.AnomalySevereZ, cfg.AnomalyModerateZ)
		cfg.AnomalyModerateZ = 2.0
		cfg.AnomalySevereZ = 3.0
	}

	cfg.AnomalyMinSamples = viper.GetInt("ANOMALY_MIN_SAMPLES")
	if cfg.AnomalyMinSamples < 1 {
		log.Printf("Warning: Invalid ANOMALY_MIN_SAMPLES (%d). Defaulting to 5.\n", cfg.AnomalyMinSamples)
		cfg.AnomalyMinSamples = 5
	}

	cfg.ForecastWindow = viper.GetInt("FORECAST_WINDOW")
	if cfg.ForecastWindow < 1 {
		log.Printf("Warning: Invalid FORECAST_WINDOW (%d). Defaulting to 3.\n", cfg.ForecastWindow)
		cfg.ForecastWindow = 3
	}

	cfg.UploadRateLimit = viper.GetString("UPLOAD_RATE_LIMIT")

	return cfg, nil
}
