// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"time"

	"github.com/danielhkuo/stimmie/models"
)

// DefaultPalette is the choropleth fill scale, lightest first.
var DefaultPalette = []string{
	"#e0e7ff", "#b4c6fc", "#7fa6f8", "#4b7bec", "#274690", "#1b2a49",
}

// NoDataColor fills provinces without responses.
const NoDataColor = "#f3f4f6"

// TopSkillsLimit is how many skills the summary ranks.
const TopSkillsLimit = 10

// ChoroplethMap holds per-province counts and their color bins.
// Bin -1 means no responses.
type ChoroplethMap struct {
	Counts map[string]int `json:"counts"`
	Max    int            `json:"max"`
	Bins   map[string]int `json:"bins"`
}

// Choropleth buckets counts into levels bins relative to the largest count.
func Choropleth(counts map[string]int, levels int) ChoroplethMap {
	m := ChoroplethMap{
		Counts: make(map[string]int, len(counts)),
		Max:    1,
		Bins:   make(map[string]int, len(counts)),
	}
	for k, c := range counts {
		m.Counts[k] = c
		if c > m.Max {
			m.Max = c
		}
	}
	for k, c := range m.Counts {
		m.Bins[k] = Bin(c, m.Max, levels)
	}
	return m
}

// Bin maps count to floor(count/max*(levels-1)). Non-positive counts
// return -1.
func Bin(count, max, levels int) int {
	if count <= 0 {
		return -1
	}
	if max < 1 {
		max = 1
	}
	if levels <= 1 {
		return 0
	}
	idx := count * (levels - 1) / max
	if idx > levels-1 {
		idx = levels - 1
	}
	return idx
}

// Color returns the palette entry for bin, or NoDataColor for -1.
func Color(bin int) string {
	if bin < 0 || len(DefaultPalette) == 0 {
		return NoDataColor
	}
	if bin >= len(DefaultPalette) {
		bin = len(DefaultPalette) - 1
	}
	return DefaultPalette[bin]
}

// Summary is the aggregate view of every submitted response.
type Summary struct {
	Responses         int            `json:"responses"`
	LatestAt          *time.Time     `json:"latest_at,omitempty"`
	WordsAboutSelf    map[string]int `json:"words_about_self"`
	WordsAboutDS      map[string]int `json:"words_about_ds"`
	ProvinceReasons   map[string]int `json:"province_reasons"`
	Storytelling      map[int]int    `json:"storytelling"`
	Analytics         map[int]int    `json:"analytics"`
	SkillsPerMember   map[int]int    `json:"skills_per_member"`
	Competitions      map[int]int    `json:"competitions"`
	Skills            map[string]int `json:"skills"`
	TopSkills         []Count        `json:"top_skills"`
	Committees        []RankedCount  `json:"committees"`
	Hometowns         ChoroplethMap  `json:"hometowns"`
	Favorites         ChoroplethMap  `json:"favorites"`
	DistinctHometowns int            `json:"distinct_hometowns"`
	DistinctFavorites int            `json:"distinct_favorites"`
}

// Summarize derives the full Summary from a collection of records.
func Summarize(records []models.ResponseRecord) Summary {
	skills := WordFrequency(records, Skills)
	hometowns := CategoryCounts(records, Hometown)
	favorites := CategoryCounts(records, FavoriteProvince)

	s := Summary{
		Responses:         len(records),
		WordsAboutSelf:    WordFrequency(records, WordsAboutSelf),
		WordsAboutDS:      WordFrequency(records, WordsAboutDS),
		ProvinceReasons:   WordFrequency(records, ReasonText),
		Storytelling:      NumericHistogram(records, StorytellingConfidence),
		Analytics:         NumericHistogram(records, AnalyticsConfidence),
		SkillsPerMember:   NumericHistogram(records, SkillCount),
		Competitions:      NumericHistogram(records, CompetitionsJoined),
		Skills:            skills,
		TopSkills:         TopN(skills, TopSkillsLimit),
		Committees:        RankedCategoryCounts(records),
		Hometowns:         Choropleth(hometowns, len(DefaultPalette)),
		Favorites:         Choropleth(favorites, len(DefaultPalette)),
		DistinctHometowns: len(hometowns),
		DistinctFavorites: len(favorites),
	}

	for _, r := range records {
		if r.Timestamp.IsZero() {
			continue
		}
		if s.LatestAt == nil || r.Timestamp.After(*s.LatestAt) {
			ts := r.Timestamp
			s.LatestAt = &ts
		}
	}
	return s
}
