// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/stimmie/catalog"
)

// FieldError reports one violated constraint of a ResponseRecord.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Msg
}

// Validate checks every field constraint and returns all violations joined
// together, or nil when the record is submittable.
func (r ResponseRecord) Validate(cat *catalog.Catalog) error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Msg: fmt.Sprintf(format, args...)})
	}

	checkWords := func(field string, words []string) {
		if len(words) != WordCount {
			add(field, "expected %d words, got %d", WordCount, len(words))
			return
		}
		for i, w := range words {
			if !ValidWord(w) {
				add(field, "word %d must be 1-%d characters", i+1, MaxWordLength)
			}
		}
	}
	checkWords("wordsDescribeSelf", r.WordsDescribeSelf)
	checkWords("wordsDescribeDS", r.WordsDescribeDS)

	if !ValidConfidence(r.ConfidenceStorytelling) {
		add("confidenceStorytelling", "must be between %d and %d", MinConfidence, MaxConfidence)
	}
	if !ValidConfidence(r.ConfidenceAnalytics) {
		add("confidenceAnalytics", "must be between %d and %d", MinConfidence, MaxConfidence)
	}

	if len(r.Skills) == 0 {
		add("skills", "at least one skill is required")
	}
	seen := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		if !cat.IsSkill(s) {
			add("skills", "unknown skill %q", s)
		}
		if seen[s] {
			add("skills", "duplicate skill %q", s)
		}
		seen[s] = true
	}

	if r.CompetitionsJoined < 0 {
		add("competitionsJoined", "must not be negative")
	}

	if len(r.Committees) != CommitteeRanks {
		add("committees", "expected %d ranked committees, got %d", CommitteeRanks, len(r.Committees))
	} else {
		ranked := make(map[string]bool, CommitteeRanks)
		for i, c := range r.Committees {
			switch {
			case c == "":
				add("committees", "rank %d is empty", i+1)
			case !cat.IsCommittee(c):
				add("committees", "unknown committee %q", c)
			case ranked[c]:
				add("committees", "committee %q ranked more than once", c)
			}
			ranked[c] = true
		}
	}

	if !cat.IsProvince(r.Hometown) {
		add("hometown", "unknown province %q", r.Hometown)
	}
	if !cat.IsProvince(r.FavoriteProvince) {
		add("favoriteProvince", "unknown province %q", r.FavoriteProvince)
	}
	if !ValidReason(r.FavoriteProvinceReason) {
		add("favoriteProvinceReason", "must be 1-%d characters", MaxReasonLength)
	}

	return errors.Join(errs...)
}

// ValidWord reports whether w is a non-empty word within the length limit.
func ValidWord(w string) bool {
	return w != "" && utf8.RuneCountInString(w) <= MaxWordLength
}

func ValidConfidence(v int) bool {
	return v >= MinConfidence && v <= MaxConfidence
}

// ValidReason trims surrounding whitespace before checking emptiness.
func ValidReason(s string) bool {
	return strings.TrimSpace(s) != "" && utf8.RuneCountInString(s) <= MaxReasonLength
}
