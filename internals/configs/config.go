package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	JWTAuthEnabled bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env file not found, using system ENV")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTAuthEnabled = GetEnv("JWT_AUTH_ENABLED", "true") == "true"

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// =======================
// LAB CONFIGURATION
// =======================

// LabConfig holds the lab operating window, occupancy capacity and the
// daily auto-checkout deadline. Owned by ops (env), consumed by the
// attendance aggregator and scheduler.
type LabConfig struct {
	OpenHour       int
	CloseHour      int
	MaxCapacity    int
	DeadlineHour   int
	DeadlineMinute int
	Location       *time.Location
}

// Lab reads the lab configuration from env with production defaults.
// An invalid LAB_TIMEZONE falls back to UTC rather than failing boot.
func Lab() LabConfig {
	tz := GetEnv("LAB_TIMEZONE", "America/Santiago")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("[WARN] invalid LAB_TIMEZONE %q, falling back to UTC: %v", tz, err)
		loc = time.UTC
	}

	cfg := LabConfig{
		OpenHour:       GetEnvInt("LAB_OPEN_HOUR", 8),
		CloseHour:      GetEnvInt("LAB_CLOSE_HOUR", 18),
		MaxCapacity:    GetEnvInt("LAB_MAX_CAPACITY", 30),
		DeadlineHour:   GetEnvInt("ATTENDANCE_DEADLINE_HOUR", 17),
		DeadlineMinute: GetEnvInt("ATTENDANCE_DEADLINE_MINUTE", 30),
		Location:       loc,
	}

	if cfg.CloseHour <= cfg.OpenHour {
		log.Printf("[WARN] LAB_CLOSE_HOUR (%d) <= LAB_OPEN_HOUR (%d), using defaults 8-18", cfg.CloseHour, cfg.OpenHour)
		cfg.OpenHour, cfg.CloseHour = 8, 18
	}
	if cfg.MaxCapacity < 1 {
		cfg.MaxCapacity = 1
	}
	return cfg
}

// OperatingMinutes is the length of one operating day in minutes.
func (c LabConfig) OperatingMinutes() int {
	return (c.CloseHour - c.OpenHour) * 60
}

// PossibleMinutes is the theoretical capacity of one operating day,
// in person-minutes.
func (c LabConfig) PossibleMinutes() int {
	return c.OperatingMinutes() * c.MaxCapacity
}
