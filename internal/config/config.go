package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// AWSConfig is shared by the DynamoDB and S3 clients. Endpoints are only set
// for local stacks (dynamodb-local, minio, localstack).
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	S3Endpoint       string
}

// Config holds runtime configuration shared across the application.
type Config struct {
	HTTPPort int

	ListingsAPIURL     string
	ListingsAPIToken   string
	ListingsAPITimeout time.Duration
	DashboardURL       string

	AWS               AWSConfig
	SessionsTable     string
	SessionTTL        time.Duration
	MediaBucket       string
	MediaCDNDomain    string
	MediaBasePath     string
	RedisAddr         string
	RedisPassword     string
	SubmissionLockTTL time.Duration
	KafkaBrokers      []string
	ListingEventTopic string
}

// Load reads environment variables and returns a fully populated Config.
// Optional collaborators (redis, kafka, S3) stay disabled when their
// variables are empty.
func Load() Config {
	port := 8080
	if raw := strings.TrimSpace(os.Getenv("HTTP_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			port = parsed
		} else {
			log.Printf("[config] invalid HTTP_PORT=%q, using %d", raw, port)
		}
	}

	cfg := Config{
		HTTPPort:           port,
		ListingsAPIURL:     strings.TrimRight(envOrDefault("LISTINGS_API_URL", "http://listings-api:8080"), "/"),
		ListingsAPIToken:   strings.TrimSpace(os.Getenv("LISTINGS_API_TOKEN")),
		ListingsAPITimeout: durationOrDefault("LISTINGS_API_TIMEOUT", 10*time.Second),
		DashboardURL:       envOrDefault("DASHBOARD_URL", "/provider/dashboard"),
		AWS: AWSConfig{
			Region:           envOrDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      envOrDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  envOrDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
			S3Endpoint:       strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		},
		SessionsTable:     envOrDefault("WIZARD_SESSIONS_TABLE", "wizard_sessions"),
		SessionTTL:        durationOrDefault("WIZARD_SESSION_TTL", 72*time.Hour),
		MediaBucket:       strings.TrimSpace(os.Getenv("MEDIA_BUCKET")),
		MediaCDNDomain:    strings.TrimSpace(os.Getenv("MEDIA_CDN_DOMAIN")),
		MediaBasePath:     strings.Trim(envOrDefault("MEDIA_BASE_PATH", "listings"), "/"),
		RedisAddr:         strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		SubmissionLockTTL: durationOrDefault("SUBMISSION_LOCK_TTL", 2*time.Minute),
		KafkaBrokers:      parseList("KAFKA_BROKER", nil),
		ListingEventTopic: envOrDefault("LISTING_EVENTS_TOPIC", "listing-events"),
	}

	log.Printf("[config] loaded listings_api=%q sessions_table=%q media_bucket=%q redis=%t kafka=%t",
		cfg.ListingsAPIURL, cfg.SessionsTable, cfg.MediaBucket, cfg.RedisAddr != "", len(cfg.KafkaBrokers) > 0)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return parsed
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
