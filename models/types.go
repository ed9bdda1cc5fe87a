package models

import (
	"time"

	"github.com/danielhkuo/stimmie/catalog"
)

// Field limits
const (
	WordCount       = 3
	CommitteeRanks  = catalog.RankedCommittees
	MaxWordLength   = 24
	MaxReasonLength = 32
	MinConfidence   = 1
	MaxConfidence   = 10
)

// ResponseRecord is one survey submission. ID and Timestamp are assigned by
// the store on write and never sent by the client.
type ResponseRecord struct {
	ID                     string    `json:"id,omitempty" bson:"id,omitempty"`
	WordsDescribeSelf      []string  `json:"wordsDescribeSelf" bson:"wordsDescribeSelf"`
	WordsDescribeDS        []string  `json:"wordsDescribeDS" bson:"wordsDescribeDS"`
	ConfidenceStorytelling int       `json:"confidenceStorytelling" bson:"confidenceStorytelling"`
	ConfidenceAnalytics    int       `json:"confidenceAnalytics" bson:"confidenceAnalytics"`
	Skills                 []string  `json:"skills" bson:"skills"`
	CompetitionsJoined     int       `json:"competitionsJoined" bson:"competitionsJoined"`
	Committees             []string  `json:"committees" bson:"committees"`
	Hometown               string    `json:"hometown" bson:"hometown"`
	FavoriteProvince       string    `json:"favoriteProvince" bson:"favoriteProvince"`
	FavoriteProvinceReason string    `json:"favoriteProvinceReason" bson:"favoriteProvinceReason"`
	Timestamp              time.Time `json:"timestamp,omitzero" bson:"timestamp"`
}

// Response types

type InterviewResponse struct {
	Success bool `json:"success"`
}

type APIStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type StoreCheckResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
