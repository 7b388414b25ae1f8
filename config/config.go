package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	ServiceName       string
	OTELEndpoint      string
	ProvidersURL      string
	PaymentRequestURL string
	Port              string
	ClientTimeout     time.Duration
	EventBufferSize   int
	Review            ReviewConfig
}

// ReviewConfig carries the settings of the review form handed to whatever
// renders it. The validation core does not read it.
type ReviewConfig struct {
	NoProvidersNotice      string
	SubmissionFailedNotice string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		ServiceName:       "payments-review",
		OTELEndpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		ProvidersURL:      getEnv("PAYMENT_PROVIDERS_URL", "http://localhost:3001"),
		PaymentRequestURL: getEnv("PAYMENT_REQUEST_URL", "http://localhost:3001"),
		Port:              getEnv("PORT", "8082"),
		ClientTimeout:     getEnvDuration("CLIENT_TIMEOUT", 10*time.Second),
		EventBufferSize:   getEnvInt("EVENT_BUFFER_SIZE", 64),
		Review: ReviewConfig{
			NoProvidersNotice:      getEnv("REVIEW_NO_PROVIDERS_NOTICE", "No supported banking app is installed"),
			SubmissionFailedNotice: getEnv("REVIEW_SUBMISSION_FAILED_NOTICE", "The payment request could not be created"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}
