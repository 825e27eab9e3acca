package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration assembled from the environment.
type Config struct {
	OpenAI OpenAI

	// AnalyzeConcurrency bounds concurrent analyzer calls during batch analysis.
	AnalyzeConcurrency int

	Addr   string
	DBPath string
	LogDir string
}

// OpenAI configures the completion provider.
type OpenAI struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

const (
	DefaultBaseURL     = "https://api.openai.com"
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
	DefaultTimeout     = 60 * time.Second
	DefaultConcurrency = 4
	DefaultAddr        = ":8080"
)

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win over
// the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	baseURL := strings.TrimRight(String("OPENAI_BASE_URL", DefaultBaseURL), "/")

	timeout := DefaultTimeout
	if secs := Int("OPENAI_TIMEOUT_SECONDS", 0); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	concurrency := Int("ANALYZE_CONCURRENCY", DefaultConcurrency)
	if concurrency < 1 {
		concurrency = 1
	}

	return &Config{
		OpenAI: OpenAI{
			APIKey:      String("OPENAI_API_KEY", ""),
			BaseURL:     baseURL,
			Model:       String("OPENAI_MODEL", DefaultModel),
			Temperature: Float("OPENAI_TEMPERATURE", DefaultTemperature),
			Timeout:     timeout,
		},
		AnalyzeConcurrency: concurrency,
		Addr:               String("HEALTHSCRIBE_ADDR", DefaultAddr),
		DBPath:             String("HEALTHSCRIBE_DB", ""),
		LogDir:             String("HEALTHSCRIBE_LOG_DIR", ""),
	}
}

// String returns the trimmed value of name, or def when unset or blank.
func String(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

// Int returns the integer value of name, or def when unset or invalid.
func Int(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// Float returns the float value of name, or def when unset or invalid.
func Float(name string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
