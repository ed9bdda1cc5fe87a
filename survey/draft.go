// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strings"

	"github.com/danielhkuo/stimmie/models"
)

// Draft is the in-progress response. Zero confidences and a nil
// CompetitionsJoined mean the question is unanswered.
type Draft struct {
	WordsSelf              [models.WordCount]string
	WordsDS                [models.WordCount]string
	ConfidenceStorytelling int
	ConfidenceAnalytics    int
	Skills                 []string
	CompetitionsJoined     *int
	Committees             [models.CommitteeRanks]string
	Hometown               string
	FavoriteProvince       string
	FavoriteProvinceReason string
}

func (d Draft) clone() Draft {
	out := d
	out.Skills = append([]string(nil), d.Skills...)
	if d.CompetitionsJoined != nil {
		n := *d.CompetitionsJoined
		out.CompetitionsJoined = &n
	}
	return out
}

// Record converts the draft into the submitted shape.
func (d Draft) Record() models.ResponseRecord {
	rec := models.ResponseRecord{
		WordsDescribeSelf:      append([]string(nil), d.WordsSelf[:]...),
		WordsDescribeDS:        append([]string(nil), d.WordsDS[:]...),
		ConfidenceStorytelling: d.ConfidenceStorytelling,
		ConfidenceAnalytics:    d.ConfidenceAnalytics,
		Skills:                 append([]string{}, d.Skills...),
		Committees:             append([]string(nil), d.Committees[:]...),
		Hometown:               d.Hometown,
		FavoriteProvince:       d.FavoriteProvince,
		FavoriteProvinceReason: d.FavoriteProvinceReason,
	}
	if d.CompetitionsJoined != nil {
		rec.CompetitionsJoined = *d.CompetitionsJoined
	}
	return rec
}

// gate reports whether the draft satisfies the predicate for leaving step.
// Steps that ask nothing are always open.
func (d *Draft) gate(step Step) bool {
	switch step {
	case WordsSelf:
		return allFilled(d.WordsSelf[:])
	case WordsDS:
		return allFilled(d.WordsDS[:])
	case Storytelling:
		return models.ValidConfidence(d.ConfidenceStorytelling)
	case Analytics:
		return models.ValidConfidence(d.ConfidenceAnalytics)
	case Skills:
		return len(d.Skills) > 0
	case Competitions:
		return d.CompetitionsJoined != nil
	case Committees:
		return allFilled(d.Committees[:]) && distinct(d.Committees[:])
	case Hometown:
		return d.Hometown != ""
	case FavoriteProvince:
		return d.FavoriteProvince != "" && strings.TrimSpace(d.FavoriteProvinceReason) != ""
	}
	return true
}

func allFilled(values []string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}

func distinct(values []string) bool {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
