// Package config reads the server settings from the environment. A .env file
// in the working directory is loaded by the godotenv autoload import in main.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Zachkp/portfolio/internal/scramble"
)

type Config struct {
	Port        string
	ContentPath string // empty uses the bundled content
	DBPath      string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string

	AdminUsername string
	AdminPassword string

	Scramble Scramble
}

// Scramble tunes the title animation.
type Scramble struct {
	FrameDelay  time.Duration
	Pause       time.Duration
	StopChance  float64
	Alphabet    string
	Timing      scramble.Timing
	Reverse     scramble.Timing
	StreamLimit time.Duration // upper bound on one SSE connection
}

// Options turns the settings into controller options.
func (s Scramble) Options() []scramble.Option {
	return []scramble.Option{
		scramble.WithFrameDelay(s.FrameDelay),
		scramble.WithPause(s.Pause),
		scramble.WithDissolveStopChance(s.StopChance),
		scramble.WithAlphabet(s.Alphabet),
		scramble.WithTiming(s.Timing),
		scramble.WithReverseTiming(s.Reverse),
	}
}

// Load reads the environment, falling back to development defaults.
func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "8080"),
		ContentPath: os.Getenv("CONTENT_PATH"),
		DBPath:      getenv("DATABASE_PATH", "portfolio.db"),

		SMTPHost: getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		ToEmail:  os.Getenv("TO_EMAIL"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		Scramble: Scramble{
			FrameDelay:  positive("SCRAMBLE_FRAME_DELAY", 30*time.Millisecond),
			Pause:       duration("SCRAMBLE_PAUSE", 3*time.Second),
			StopChance:  float("SCRAMBLE_DISSOLVE_STOP_CHANCE", 0),
			Alphabet:    getenv("SCRAMBLE_ALPHABET", scramble.Letters),
			Timing:      scramble.DefaultTiming,
			Reverse:     scramble.DefaultReverseTiming,
			StreamLimit: duration("SCRAMBLE_STREAM_LIMIT", 10*time.Minute),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

// positive is duration for values that must be non-zero, such as the
// delay between two frames.
func positive(key string, fallback time.Duration) time.Duration {
	d := duration(key, fallback)
	if d <= 0 {
		log.Printf("Invalid %s=%q, must be positive, using %s", key, os.Getenv(key), fallback)
		return fallback
	}
	return d
}

func float(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		log.Printf("Invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
