package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort   string `mapstructure:"APP_PORT"`
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	JWTSecret string `mapstructure:"JWT_SECRET"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisHoldDB   int    `mapstructure:"REDIS_HOLD_DB"`

	// Stripe checkout.
	StripeKey          string `mapstructure:"STRIPE_KEY"`
	CheckoutSuccessURL string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL  string `mapstructure:"CHECKOUT_CANCEL_URL"`

	// Google Calendar.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	CalendarID            string `mapstructure:"CALENDAR_ID"`

	// Scheduling rules.
	BusinessTimezone     string   `mapstructure:"BUSINESS_TIMEZONE"`
	SlotTimes            []string `mapstructure:"SLOT_TIMES"`
	SlotDurationMinutes  int      `mapstructure:"SLOT_DURATION_MINUTES"`
	WorkingDays          []string `mapstructure:"WORKING_DAYS"`
	AvailabilityTTLMins  int      `mapstructure:"AVAILABILITY_TTL_MINUTES"`
	SlotHoldTTLMins      int      `mapstructure:"SLOT_HOLD_TTL_MINUTES"`
	MaxRequestsPerMinute int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_HOLD_DB", 0)
	viper.SetDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/booking/success")
	viper.SetDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/booking/cancelled")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Los_Angeles")
	viper.SetDefault("SLOT_TIMES", []string{
		"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
	})
	viper.SetDefault("SLOT_DURATION_MINUTES", 60)
	viper.SetDefault("WORKING_DAYS", []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	})
	viper.SetDefault("AVAILABILITY_TTL_MINUTES", 5)
	viper.SetDefault("SLOT_HOLD_TTL_MINUTES", 10)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
