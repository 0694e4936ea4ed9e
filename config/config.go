package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort            = "8080"
	DefaultQuery           = "trending"
	DefaultLanguage        = "en"
	DefaultFetchLimit      = 30
	DefaultCacheTTL        = time.Hour
	DefaultProviderTimeout = 12 * time.Second
	DefaultHorizonHours    = 72
	DefaultMinScore        = 0.45
	DefaultLimit           = 10

	// DefaultSnapshotCron runs the historical snapshot job twice daily.
	DefaultSnapshotCron = "0 7,19 * * *"
)

// Config holds all runtime configuration, populated from the environment.
type Config struct {
	Port string

	// Default pipeline query parameters.
	Query      string
	Language   string
	FetchLimit int

	// Provider credentials. An empty key disables that provider; it is not
	// an error condition.
	NewsDataAPIKey string
	GNewsAPIKey    string
	RSSPresets     []string

	ProviderTimeout  time.Duration
	ExtractSummaries bool

	CacheTTL  time.Duration
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Historical snapshot storage (S3). Empty bucket keeps snapshots
	// in memory only.
	S3Bucket       string
	S3Region       string
	S3Profile      string
	S3Prefix       string
	S3UsePathStyle bool

	SnapshotCron string

	// Optional Kafka refresh trigger. Empty broker list disables it.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	// Default ranking parameters; callers can override per request.
	MinScore float64
	Limit    int
}

// FromEnv builds a Config from environment variables, applying defaults.
// Call godotenv.Load() before this if a .env file should be honored.
func FromEnv() Config {
	return Config{
		Port:             GetEnvOrDefault("PORT", DefaultPort),
		Query:            GetEnvOrDefault("NEWS_QUERY", DefaultQuery),
		Language:         GetEnvOrDefault("NEWS_LANG", DefaultLanguage),
		FetchLimit:       envInt("FETCH_LIMIT", DefaultFetchLimit),
		NewsDataAPIKey:   strings.TrimSpace(os.Getenv("NEWSDATA_API_KEY")),
		GNewsAPIKey:      strings.TrimSpace(os.Getenv("GNEWS_API_KEY")),
		RSSPresets:       envList("RSS_PRESETS"),
		ProviderTimeout:  envSeconds("PROVIDER_TIMEOUT_SECONDS", DefaultProviderTimeout),
		ExtractSummaries: envBool("EXTRACT_SUMMARIES"),
		CacheTTL:         envSeconds("CACHE_TTL_SECONDS", DefaultCacheTTL),
		RedisAddr:        strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass:        os.Getenv("REDIS_PASS"),
		RedisDB:          envInt("REDIS_DB", 0),
		S3Bucket:         strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:         strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:        strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3Prefix:         strings.Trim(os.Getenv("S3_PREFIX"), "/"),
		S3UsePathStyle:   envBool("S3_USE_PATH_STYLE"),
		SnapshotCron:     GetEnvOrDefault("SNAPSHOT_CRON", DefaultSnapshotCron),
		KafkaBrokers:     envList("KAFKA_BROKERS"),
		KafkaTopic:       GetEnvOrDefault("KAFKA_REFRESH_TOPIC", "newspulse.refresh"),
		KafkaGroupID:     GetEnvOrDefault("KAFKA_GROUP_ID", "newspulse"),
		MinScore:         envFloat("MIN_SCORE", DefaultMinScore),
		Limit:            envInt("RESULT_LIMIT", DefaultLimit),
	}
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func envSeconds(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}

func envBool(key string) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return false
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
