package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// SearchRecord represents a search query for analytics.
type SearchRecord struct {
	// SearchID is a unique identifier for this search (UUID).
	SearchID string `json:"search_id"`

	// QueryHash is the SHA256 hash of the search query for privacy.
	QueryHash string `json:"query_hash"`

	// Timestamp is when the search was performed.
	Timestamp time.Time `json:"timestamp"`

	// ResultsCount is the number of results returned.
	ResultsCount int `json:"results_count"`
}

// NewSearchRecord builds a search record for a query, hashing the query
// text so raw input never reaches disk.
func NewSearchRecord(query string, resultsCount int) SearchRecord {
	return SearchRecord{
		SearchID:     uuid.New().String(),
		QueryHash:    hashQuery(query),
		Timestamp:    time.Now(),
		ResultsCount: resultsCount,
	}
}

// hashQuery returns the SHA256 hex digest of a query string.
func hashQuery(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}
