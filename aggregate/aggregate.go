// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"sort"

	"github.com/danielhkuo/stimmie/models"
)

// Field selectors

type WordSelector func(models.ResponseRecord) []string

type NumberSelector func(models.ResponseRecord) int

type CategorySelector func(models.ResponseRecord) string

var (
	WordsAboutSelf WordSelector = func(r models.ResponseRecord) []string { return r.WordsDescribeSelf }
	WordsAboutDS   WordSelector = func(r models.ResponseRecord) []string { return r.WordsDescribeDS }
	Skills         WordSelector = func(r models.ResponseRecord) []string { return r.Skills }

	// ReasonText treats the whole favorite-province reason as one word.
	ReasonText WordSelector = func(r models.ResponseRecord) []string { return []string{r.FavoriteProvinceReason} }

	StorytellingConfidence NumberSelector = func(r models.ResponseRecord) int { return r.ConfidenceStorytelling }
	AnalyticsConfidence    NumberSelector = func(r models.ResponseRecord) int { return r.ConfidenceAnalytics }
	SkillCount             NumberSelector = func(r models.ResponseRecord) int { return len(r.Skills) }
	CompetitionsJoined     NumberSelector = func(r models.ResponseRecord) int { return r.CompetitionsJoined }

	Hometown         CategorySelector = func(r models.ResponseRecord) string { return r.Hometown }
	FavoriteProvince CategorySelector = func(r models.ResponseRecord) string { return r.FavoriteProvince }
)

// WordFrequency counts every non-empty string of the selected list field
// across all records. Matching is exact and case-sensitive.
func WordFrequency(records []models.ResponseRecord, sel WordSelector) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		for _, w := range sel(r) {
			if w == "" {
				continue
			}
			counts[w]++
		}
	}
	return counts
}

// NumericHistogram groups the selected numeric field by exact value.
// Zero values are treated as missing and dropped, so a real answer of 0
// (e.g. no competitions joined) never shows up.
func NumericHistogram(records []models.ResponseRecord, sel NumberSelector) map[int]int {
	counts := make(map[int]int)
	for _, r := range records {
		v := sel(r)
		if v == 0 {
			continue
		}
		counts[v]++
	}
	return counts
}

// CategoryCounts counts the selected categorical field, skipping empty
// values.
func CategoryCounts(records []models.ResponseRecord, sel CategorySelector) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		c := sel(r)
		if c == "" {
			continue
		}
		counts[c]++
	}
	return counts
}

// Distinct returns the number of distinct non-empty values of a field.
func Distinct(records []models.ResponseRecord, sel CategorySelector) int {
	return len(CategoryCounts(records, sel))
}

// RankedCount is a committee's tally per rank position.
type RankedCount struct {
	Name   string `json:"name"`
	First  int    `json:"first"`
	Second int    `json:"second"`
	Third  int    `json:"third"`
	Total  int    `json:"total"`
}

// RankedCategoryCounts tallies the committees field by rank position,
// ordered by total descending. Entries past the third rank only count
// towards the total.
func RankedCategoryCounts(records []models.ResponseRecord) []RankedCount {
	byName := make(map[string]*RankedCount)
	for _, r := range records {
		for rank, name := range r.Committees {
			if name == "" {
				continue
			}
			rc, ok := byName[name]
			if !ok {
				rc = &RankedCount{Name: name}
				byName[name] = rc
			}
			switch rank {
			case 0:
				rc.First++
			case 1:
				rc.Second++
			case 2:
				rc.Third++
			}
			rc.Total++
		}
	}

	result := make([]RankedCount, 0, len(byName))
	for _, rc := range byName {
		result = append(result, *rc)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Count is one entry of a frequency table.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopN returns the n most frequent keys, count descending then key
// ascending. n <= 0 returns every key.
func TopN(counts map[string]int, n int) []Count {
	result := make([]Count, 0, len(counts))
	for k, c := range counts {
		result = append(result, Count{Key: k, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Key < result[j].Key
	})
	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}
