// internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
	Policy PolicyConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type AppConfig struct {
	DataDir      string
	OutputDir    string
	DefaultBrand string
	// DuplicatePolicy selects which inventory row wins for repeated SKUs:
	// "last_wins" (reference behavior) or "first_wins".
	DuplicatePolicy string
}

// PolicyConfig carries the replenishment defaults for runs that do not
// specify their own parameters. The engine itself has no defaults.
type PolicyConfig struct {
	LeadTimeDays       int
	SafetyStockDays    int
	DesiredDaysOfCover int
}

type CacheConfig struct {
	Enabled          bool
	RedisURL         string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	ResultTTLSeconds int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("APP_DATA_DIR", "./data/brands")
		viper.SetDefault("APP_OUTPUT_DIR", "./data/output")
		viper.SetDefault("APP_DEFAULT_BRAND", "SL")
		viper.SetDefault("APP_DUPLICATE_POLICY", "last_wins")
		viper.SetDefault("POLICY_LEAD_TIME_DAYS", 21)
		viper.SetDefault("POLICY_SAFETY_STOCK_DAYS", 10)
		viper.SetDefault("POLICY_DESIRED_DAYS_OF_COVER", 45)
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_RESULT_TTL_SECONDS", 60)

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure the output directory exists; the data directory is
		// owned by the feed download jobs and may appear later.
		ensureDir(viper.GetString("APP_OUTPUT_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			App: AppConfig{
				DataDir:         viper.GetString("APP_DATA_DIR"),
				OutputDir:       viper.GetString("APP_OUTPUT_DIR"),
				DefaultBrand:    viper.GetString("APP_DEFAULT_BRAND"),
				DuplicatePolicy: viper.GetString("APP_DUPLICATE_POLICY"),
			},
			Policy: PolicyConfig{
				LeadTimeDays:       viper.GetInt("POLICY_LEAD_TIME_DAYS"),
				SafetyStockDays:    viper.GetInt("POLICY_SAFETY_STOCK_DAYS"),
				DesiredDaysOfCover: viper.GetInt("POLICY_DESIRED_DAYS_OF_COVER"),
			},
			Cache: CacheConfig{
				Enabled:          viper.GetBool("CACHE_ENABLED"),
				RedisURL:         viper.GetString("REDIS_URL"),
				RedisHost:        viper.GetString("REDIS_HOST"),
				RedisPort:        viper.GetString("REDIS_PORT"),
				RedisPassword:    viper.GetString("REDIS_PASSWORD"),
				RedisDB:          viper.GetInt("REDIS_DB"),
				ResultTTLSeconds: viper.GetInt("CACHE_RESULT_TTL_SECONDS"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
