package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Article is the canonical normalized news item produced by the providers.
// Once the pipeline has finished a cycle the article is treated as immutable.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	URL         string     `json:"url"`
	ImageURL    string     `json:"image_url,omitempty"`
	Source      string     `json:"source,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Category    string     `json:"category,omitempty"`
}

// Heat buckets derived from the trend score. The thresholds live in the
// scoring package and are constants so scores stay comparable across calls.
const (
	HeatVeryHot = "very_hot"
	HeatHot     = "hot"
	HeatWarm    = "warm"
	HeatWatch   = "watch"
)

// ScoredArticle is an Article plus its trending relevance score.
type ScoredArticle struct {
	Article
	Score float64 `json:"score"`
	Heat  string  `json:"heat"`
}

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
