package config

import "github.com/kelseyhightower/envconfig"

type Server struct {
	Address     string `envconfig:"SERVER_ADDRESS" default:":8080"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

type DB struct {
	Dialect        string `envconfig:"DB_DIALECT" default:"sqlite3"`
	Source         string `envconfig:"DB_SOURCE" default:"weather_hub.db"`
	MigrationsPath string `envconfig:"DB_MIGRATIONS_PATH" default:"./migrations"`
}

type Redis struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	DbType   int    `envconfig:"REDIS_DB_TYPE" default:"0"`
	LiveTime int    `envconfig:"REDIS_LIVE_TIME" default:"30"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"15"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Assistant struct {
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	Model        string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
}

type Geocoder struct {
	GoogleAPIKey string `envconfig:"GOOGLE_GEOCODING_API_KEY"`
	GoogleURL    string `envconfig:"GOOGLE_GEOCODING_URL" default:"https://maps.googleapis.com/maps/api/geocode/json"`
	NominatimURL string `envconfig:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org"`
}

type Config struct {
	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`
	OpenWeatherURL    string `envconfig:"OPENWEATHER_URL" default:"https://api.openweathermap.org/data/2.5"`

	OpenMeteoURL string `envconfig:"OPENMETEO_URL" default:"https://api.open-meteo.com/v1/forecast"`

	Server    Server
	DB        DB
	Redis     Redis
	Breaker   Breaker
	Assistant Assistant
	Geocoder  Geocoder

	// Cron spec for re-capturing stored locations; empty disables the job.
	RefreshSpec string `envconfig:"REFRESH_CRON_SPEC"`

	LogsPath string `envconfig:"LOGS_PATH" default:"./log/weather-hub-api.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
