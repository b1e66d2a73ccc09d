package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/dutybot/catcher/internal/domain"
)

type Config struct {
	DatabasePath          string
	HolidayAPIURL         string
	HolidayAPITimeout     time.Duration
	HolidayRegion         string
	WebhookURL            string
	WebhookTimeout        time.Duration
	BaseWeight            float64
	LastWorkingDayPenalty float64
	FrequencyPenalty      float64
	LookbackDays          int
	RetentionDays         int
	CleanupProbability    float64
}

func Load() *Config {
	return &Config{
		DatabasePath:          getEnv("DB_PATH", "./user.db"),
		HolidayAPIURL:         getEnv("HOLIDAY_API_URL", "https://date.nager.at/Api/v3/IsTodayPublicHoliday/DE?countyCode=DE-BW"),
		HolidayAPITimeout:     getEnvSeconds("HOLIDAY_API_TIMEOUT", 5),
		HolidayRegion:         getEnv("HOLIDAY_REGION", "BW"),
		WebhookURL:            getEnv("WEBHOOK_URL", ""),
		WebhookTimeout:        getEnvSeconds("WEBHOOK_TIMEOUT", 10),
		BaseWeight:            getEnvFloat("BASE_WEIGHT", domain.DefaultBaseWeight),
		LastWorkingDayPenalty: getEnvFloat("LAST_WORKING_DAY_PENALTY", domain.DefaultLastWorkingDayPenalty),
		FrequencyPenalty:      getEnvFloat("FREQUENCY_PENALTY", domain.DefaultFrequencyPenalty),
		LookbackDays:          getEnvInt("LOOKBACK_DAYS", domain.DefaultLookbackDays),
		RetentionDays:         getEnvInt("RETENTION_DAYS", domain.DefaultRetentionDays),
		CleanupProbability:    getEnvFloat("CLEANUP_PROBABILITY", domain.DefaultCleanupProbability),
	}
}

// Validate checks the options without which a run cannot do anything useful.
func (c *Config) Validate() error {
	if c.WebhookURL == "" {
		return errors.New("WEBHOOK_URL environment variable not set")
	}
	if c.DatabasePath == "" {
		return errors.New("DB_PATH environment variable is empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue)) * time.Second
}
