// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/danielhkuo/stimmie/models"
)

// Update is a single change to the draft. The set of implementations is
// closed; Controller.Update rejects anything else.
type Update interface {
	update()
}

// SetWordSelf sets one of the three words describing the respondent.
// An empty Word clears the slot.
type SetWordSelf struct {
	Index int
	Word  string
}

// SetWordDS sets one of the three words describing data science.
type SetWordDS struct {
	Index int
	Word  string
}

type SetConfidenceStorytelling struct{ Value int }

type SetConfidenceAnalytics struct{ Value int }

// ToggleSkill adds or removes a skill from the selection.
type ToggleSkill struct {
	Skill    string
	Selected bool
}

type SetCompetitions struct{ Count int }

// ClearCompetitions returns the competitions answer to unanswered.
type ClearCompetitions struct{}

// SetCommitteeRank places Committee at Rank (0-based). The committee is
// removed from any other rank it held. An empty Committee clears the rank.
type SetCommitteeRank struct {
	Rank      int
	Committee string
}

type SetHometown struct{ Province string }

type SetFavoriteProvince struct{ Province string }

type SetFavoriteReason struct{ Reason string }

func (SetWordSelf) update()               {}
func (SetWordDS) update()                 {}
func (SetConfidenceStorytelling) update() {}
func (SetConfidenceAnalytics) update()    {}
func (ToggleSkill) update()               {}
func (SetCompetitions) update()           {}
func (ClearCompetitions) update()         {}
func (SetCommitteeRank) update()          {}
func (SetHometown) update()               {}
func (SetFavoriteProvince) update()       {}
func (SetFavoriteReason) update()         {}

func (c *Controller) apply(u Update) error {
	d := &c.draft

	switch u := u.(type) {
	case SetWordSelf:
		return setWord(d.WordsSelf[:], u.Index, u.Word)

	case SetWordDS:
		return setWord(d.WordsDS[:], u.Index, u.Word)

	case SetConfidenceStorytelling:
		if !models.ValidConfidence(u.Value) {
			return fmt.Errorf("%w: storytelling confidence %d", ErrInvalidValue, u.Value)
		}
		d.ConfidenceStorytelling = u.Value

	case SetConfidenceAnalytics:
		if !models.ValidConfidence(u.Value) {
			return fmt.Errorf("%w: analytics confidence %d", ErrInvalidValue, u.Value)
		}
		d.ConfidenceAnalytics = u.Value

	case ToggleSkill:
		if !c.cat.IsSkill(u.Skill) {
			return fmt.Errorf("%w: unknown skill %q", ErrInvalidValue, u.Skill)
		}
		i := slices.Index(d.Skills, u.Skill)
		switch {
		case u.Selected && i < 0:
			d.Skills = append(d.Skills, u.Skill)
		case !u.Selected && i >= 0:
			d.Skills = slices.Delete(d.Skills, i, i+1)
		}

	case SetCompetitions:
		if u.Count < 0 {
			return fmt.Errorf("%w: competitions %d", ErrInvalidValue, u.Count)
		}
		n := u.Count
		d.CompetitionsJoined = &n

	case ClearCompetitions:
		d.CompetitionsJoined = nil

	case SetCommitteeRank:
		if u.Rank < 0 || u.Rank >= len(d.Committees) {
			return fmt.Errorf("%w: committee rank %d", ErrInvalidValue, u.Rank)
		}
		if u.Committee != "" && !c.cat.IsCommittee(u.Committee) {
			return fmt.Errorf("%w: unknown committee %q", ErrInvalidValue, u.Committee)
		}
		if u.Committee != "" {
			for i := range d.Committees {
				if d.Committees[i] == u.Committee {
					d.Committees[i] = ""
				}
			}
		}
		d.Committees[u.Rank] = u.Committee

	case SetHometown:
		if u.Province != "" && !c.cat.IsProvince(u.Province) {
			return fmt.Errorf("%w: unknown province %q", ErrInvalidValue, u.Province)
		}
		d.Hometown = u.Province

	case SetFavoriteProvince:
		if u.Province != "" && !c.cat.IsProvince(u.Province) {
			return fmt.Errorf("%w: unknown province %q", ErrInvalidValue, u.Province)
		}
		d.FavoriteProvince = u.Province

	case SetFavoriteReason:
		if utf8.RuneCountInString(u.Reason) > models.MaxReasonLength {
			return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidValue, models.MaxReasonLength)
		}
		d.FavoriteProvinceReason = u.Reason

	default:
		return fmt.Errorf("%w: unsupported update %T", ErrInvalidValue, u)
	}
	return nil
}

func setWord(slots []string, index int, word string) error {
	if index < 0 || index >= len(slots) {
		return fmt.Errorf("%w: word index %d", ErrInvalidValue, index)
	}
	if word != "" && !models.ValidWord(word) {
		return fmt.Errorf("%w: word exceeds %d characters", ErrInvalidValue, models.MaxWordLength)
	}
	slots[index] = word
	return nil
}
