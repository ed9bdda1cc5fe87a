// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Answers is a complete set of responses in file form, used to fill a
// survey non-interactively.
type Answers struct {
	WordsDescribeSelf      []string `yaml:"wordsDescribeSelf"`
	WordsDescribeDS        []string `yaml:"wordsDescribeDS"`
	ConfidenceStorytelling int      `yaml:"confidenceStorytelling"`
	ConfidenceAnalytics    int      `yaml:"confidenceAnalytics"`
	Skills                 []string `yaml:"skills"`
	CompetitionsJoined     *int     `yaml:"competitionsJoined"`
	Committees             []string `yaml:"committees"`
	Hometown               string   `yaml:"hometown"`
	FavoriteProvince       string   `yaml:"favoriteProvince"`
	FavoriteProvinceReason string   `yaml:"favoriteProvinceReason"`
}

// LoadAnswers reads an Answers YAML file.
func LoadAnswers(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Answers{}, fmt.Errorf("failed to read answers: %w", err)
	}
	var a Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Answers{}, fmt.Errorf("failed to parse answers %s: %w", path, err)
	}
	return a, nil
}

// Updates translates the answers into draft updates. Unanswered fields
// produce no update.
func (a Answers) Updates() []Update {
	var out []Update
	for i, w := range a.WordsDescribeSelf {
		out = append(out, SetWordSelf{Index: i, Word: w})
	}
	for i, w := range a.WordsDescribeDS {
		out = append(out, SetWordDS{Index: i, Word: w})
	}
	if a.ConfidenceStorytelling != 0 {
		out = append(out, SetConfidenceStorytelling{Value: a.ConfidenceStorytelling})
	}
	if a.ConfidenceAnalytics != 0 {
		out = append(out, SetConfidenceAnalytics{Value: a.ConfidenceAnalytics})
	}
	for _, s := range a.Skills {
		out = append(out, ToggleSkill{Skill: s, Selected: true})
	}
	if a.CompetitionsJoined != nil {
		out = append(out, SetCompetitions{Count: *a.CompetitionsJoined})
	}
	for i, c := range a.Committees {
		out = append(out, SetCommitteeRank{Rank: i, Committee: c})
	}
	if a.Hometown != "" {
		out = append(out, SetHometown{Province: a.Hometown})
	}
	if a.FavoriteProvince != "" {
		out = append(out, SetFavoriteProvince{Province: a.FavoriteProvince})
	}
	if a.FavoriteProvinceReason != "" {
		out = append(out, SetFavoriteReason{Reason: a.FavoriteProvinceReason})
	}
	return out
}

// Complete fills the controller from answers, walks every step up to
// Review and submits. The controller must be on Landing.
func Complete(ctx context.Context, c *Controller, a Answers) error {
	if s := c.Step(); s != Landing {
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, s)
	}
	for _, u := range a.Updates() {
		if err := c.Update(u); err != nil {
			return err
		}
	}
	for c.Step() != Review {
		if err := c.Next(); err != nil {
			return err
		}
	}
	return c.Submit(ctx)
}
