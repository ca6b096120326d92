package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// LINE messaging channel credentials.
	LineChannelSecret string `mapstructure:"LINE_CHANNEL_SECRET"`
	LineChannelToken  string `mapstructure:"LINE_CHANNEL_ACCESS_TOKEN"`

	// Gemini NLU.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Google Sheets backing store and Calendar mirror.
	SheetsDocumentID      string `mapstructure:"GOOGLE_SHEETS_DOCUMENT_ID"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	DefaultCalendarID     string `mapstructure:"DEFAULT_GOOGLE_CALENDAR_ID"`
	CalendarTimezone      string `mapstructure:"CALENDAR_TIMEZONE"`

	// Read-path cache TTLs (seconds).
	ListingCacheTTL int `mapstructure:"LISTING_CACHE_TTL"`
	BookingCacheTTL int `mapstructure:"BOOKING_CACHE_TTL"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Reminder sweep.
	EnableReminders      bool `mapstructure:"ENABLE_REMINDERS"`
	ReminderSweepMinutes int  `mapstructure:"REMINDER_SWEEP_MINUTES"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
// Missing required credentials abort the process.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash-latest")
	viper.SetDefault("CALENDAR_TIMEZONE", "Asia/Bangkok")
	viper.SetDefault("LISTING_CACHE_TTL", 30)
	viper.SetDefault("BOOKING_CACHE_TTL", 15)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("ENABLE_REMINDERS", true)
	viper.SetDefault("REMINDER_SWEEP_MINUTES", 10)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	validate()
}

func validate() {
	if AppConfig.LineChannelSecret == "" || AppConfig.LineChannelToken == "" {
		log.Fatal("LINE_CHANNEL_SECRET and LINE_CHANNEL_ACCESS_TOKEN are required")
	}
	if AppConfig.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}
	if AppConfig.SheetsDocumentID == "" {
		log.Fatal("GOOGLE_SHEETS_DOCUMENT_ID is required")
	}
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}
