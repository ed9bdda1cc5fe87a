// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// rawRecord mirrors ResponseRecord with tolerant field types. Stored
// documents written by older clients carry numbers as strings ("" before
// the question was answered) and Firestore-style timestamp objects.
type rawRecord struct {
	ID                     string      `json:"id"`
	WordsDescribeSelf      flexStrings `json:"wordsDescribeSelf"`
	WordsDescribeDS        flexStrings `json:"wordsDescribeDS"`
	ConfidenceStorytelling flexInt     `json:"confidenceStorytelling"`
	ConfidenceAnalytics    flexInt     `json:"confidenceAnalytics"`
	Skills                 flexStrings `json:"skills"`
	CompetitionsJoined     flexInt     `json:"competitionsJoined"`
	Committees             flexStrings `json:"committees"`
	Hometown               flexString  `json:"hometown"`
	FavoriteProvince       flexString  `json:"favoriteProvince"`
	FavoriteProvinceReason flexString  `json:"favoriteProvinceReason"`
	Timestamp              flexTime    `json:"timestamp"`
}

// UnmarshalJSON decodes a record leniently: wrongly typed fields decode to
// their zero value instead of failing the whole record. A body that is not
// a JSON object is still an error.
func (r *ResponseRecord) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = ResponseRecord{
		ID:                     raw.ID,
		WordsDescribeSelf:      []string(raw.WordsDescribeSelf),
		WordsDescribeDS:        []string(raw.WordsDescribeDS),
		ConfidenceStorytelling: int(raw.ConfidenceStorytelling),
		ConfidenceAnalytics:    int(raw.ConfidenceAnalytics),
		Skills:                 []string(raw.Skills),
		CompetitionsJoined:     int(raw.CompetitionsJoined),
		Committees:             []string(raw.Committees),
		Hometown:               string(raw.Hometown),
		FavoriteProvince:       string(raw.FavoriteProvince),
		FavoriteProvinceReason: string(raw.FavoriteProvinceReason),
		Timestamp:              time.Time(raw.Timestamp),
	}
	return nil
}

// DecodeRecords decodes a stored collection. Anything that is not a JSON
// array yields an empty collection, and elements that are not objects are
// skipped.
func DecodeRecords(data []byte) []ResponseRecord {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []ResponseRecord{}
	}

	records := make([]ResponseRecord, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var rec ResponseRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	switch n := v.(type) {
	case float64:
		*f = flexInt(clampInt(n))
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			*f = flexInt(i)
		} else if x, err := strconv.ParseFloat(s, 64); err == nil {
			*f = flexInt(clampInt(x))
		} else {
			*f = 0
		}
	default:
		*f = 0
	}
	return nil
}

func clampInt(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	if x < math.MinInt32 {
		return math.MinInt32
	}
	return int(x)
}

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = ""
		return nil
	}
	*f = flexString(s)
	return nil
}

// flexStrings keeps string elements and drops everything else.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		*f = nil
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	*f = out
	return nil
}

// flexTime accepts RFC 3339 strings and {"_seconds":..,"_nanoseconds":..}
// objects.
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			*f = flexTime{}
			return nil
		}
		*f = flexTime(t)
		return nil
	}

	var ts struct {
		Seconds     *int64 `json:"_seconds"`
		Nanoseconds int64  `json:"_nanoseconds"`
	}
	if err := json.Unmarshal(data, &ts); err != nil || ts.Seconds == nil {
		*f = flexTime{}
		return nil
	}
	*f = flexTime(time.Unix(*ts.Seconds, ts.Nanoseconds).UTC())
	return nil
}
