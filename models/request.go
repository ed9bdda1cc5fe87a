// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"

	"github.com/danielhkuo/stimmie/catalog"
)

// InterviewRequest is the body of POST /api/interviews. It decodes strictly:
// a wrongly typed field fails decoding, and numeric fields that are absent
// or null stay nil so they can be reported as missing. Any id or timestamp
// sent by the client is ignored.
type InterviewRequest struct {
	WordsDescribeSelf      []string `json:"wordsDescribeSelf"`
	WordsDescribeDS        []string `json:"wordsDescribeDS"`
	ConfidenceStorytelling *int     `json:"confidenceStorytelling"`
	ConfidenceAnalytics    *int     `json:"confidenceAnalytics"`
	Skills                 []string `json:"skills"`
	CompetitionsJoined     *int     `json:"competitionsJoined"`
	Committees             []string `json:"committees"`
	Hometown               string   `json:"hometown"`
	FavoriteProvince       string   `json:"favoriteProvince"`
	FavoriteProvinceReason string   `json:"favoriteProvinceReason"`
}

// Record converts the request to a ResponseRecord. Missing numbers become 0.
func (q InterviewRequest) Record() ResponseRecord {
	deref := func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	}
	return ResponseRecord{
		WordsDescribeSelf:      q.WordsDescribeSelf,
		WordsDescribeDS:        q.WordsDescribeDS,
		ConfidenceStorytelling: deref(q.ConfidenceStorytelling),
		ConfidenceAnalytics:    deref(q.ConfidenceAnalytics),
		Skills:                 q.Skills,
		CompetitionsJoined:     deref(q.CompetitionsJoined),
		Committees:             q.Committees,
		Hometown:               q.Hometown,
		FavoriteProvince:       q.FavoriteProvince,
		FavoriteProvinceReason: q.FavoriteProvinceReason,
	}
}

// Validate reports missing numeric fields followed by every violation
// ResponseRecord.Validate finds for the other fields.
func (q InterviewRequest) Validate(cat *catalog.Catalog) error {
	var errs []error
	missing := make(map[string]bool)
	require := func(field string, p *int) {
		if p == nil {
			missing[field] = true
			errs = append(errs, &FieldError{Field: field, Msg: "is required"})
		}
	}
	require("confidenceStorytelling", q.ConfidenceStorytelling)
	require("confidenceAnalytics", q.ConfidenceAnalytics)
	require("competitionsJoined", q.CompetitionsJoined)

	if err := q.Record().Validate(cat); err != nil {
		for _, e := range unjoin(err) {
			var fe *FieldError
			if errors.As(e, &fe) && missing[fe.Field] {
				continue
			}
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}

func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
