// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

// Step identifies one screen of the survey. Steps are totally ordered in
// the sequence a respondent sees them.
type Step int

const (
	Landing Step = iota
	Introduction
	WordsSelf
	WordsSelfSummary
	WordsDS
	WordsDSSummary
	Storytelling
	StorytellingSummary
	Analytics
	AnalyticsSummary
	Skills
	SkillsSummary
	Competitions
	CompetitionsSummary
	Committees
	CommitteesSummary
	Hometown
	HometownSummary
	FavoriteProvince
	FavoriteProvinceSummary
	Review
	Confirmation
	AggregateSummary
)

var stepNames = [...]string{
	Landing:                 "landing",
	Introduction:            "introduction",
	WordsSelf:               "words-about-self",
	WordsSelfSummary:        "words-about-self-summary",
	WordsDS:                 "words-about-ds",
	WordsDSSummary:          "words-about-ds-summary",
	Storytelling:            "storytelling-confidence",
	StorytellingSummary:     "storytelling-confidence-summary",
	Analytics:               "analytics-confidence",
	AnalyticsSummary:        "analytics-confidence-summary",
	Skills:                  "skills",
	SkillsSummary:           "skills-summary",
	Competitions:            "competitions",
	CompetitionsSummary:     "competitions-summary",
	Committees:              "committees",
	CommitteesSummary:       "committees-summary",
	Hometown:                "hometown",
	HometownSummary:         "hometown-summary",
	FavoriteProvince:        "favorite-province",
	FavoriteProvinceSummary: "favorite-province-summary",
	Review:                  "review",
	Confirmation:            "confirmation",
	AggregateSummary:        "aggregate-summary",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// Steps returns every step in order.
func Steps() []Step {
	steps := make([]Step, len(stepNames))
	for i := range steps {
		steps[i] = Step(i)
	}
	return steps
}

// IsDataEntry reports whether the step asks a question.
func (s Step) IsDataEntry() bool {
	switch s {
	case WordsSelf, WordsDS, Storytelling, Analytics, Skills,
		Competitions, Committees, Hometown, FavoriteProvince:
		return true
	}
	return false
}

// edges lists the steps reachable from a step. The first forward entry is
// the default for Next. AggregateSummary's back edge depends on how it was
// entered and is resolved by the controller.
type edges struct {
	forward []Step
	back    Step
	hasBack bool
}

var transitions = map[Step]edges{
	Landing:                 {forward: []Step{Introduction, AggregateSummary}},
	Introduction:            {forward: []Step{WordsSelf}, back: Landing, hasBack: true},
	WordsSelf:               {forward: []Step{WordsSelfSummary}, back: Introduction, hasBack: true},
	WordsSelfSummary:        {forward: []Step{WordsDS}, back: WordsSelf, hasBack: true},
	WordsDS:                 {forward: []Step{WordsDSSummary}, back: WordsSelfSummary, hasBack: true},
	WordsDSSummary:          {forward: []Step{Storytelling}, back: WordsDS, hasBack: true},
	Storytelling:            {forward: []Step{StorytellingSummary}, back: WordsDSSummary, hasBack: true},
	StorytellingSummary:     {forward: []Step{Analytics}, back: Storytelling, hasBack: true},
	Analytics:               {forward: []Step{AnalyticsSummary}, back: StorytellingSummary, hasBack: true},
	AnalyticsSummary:        {forward: []Step{Skills}, back: Analytics, hasBack: true},
	Skills:                  {forward: []Step{SkillsSummary}, back: AnalyticsSummary, hasBack: true},
	SkillsSummary:           {forward: []Step{Competitions}, back: Skills, hasBack: true},
	Competitions:            {forward: []Step{CompetitionsSummary}, back: SkillsSummary, hasBack: true},
	CompetitionsSummary:     {forward: []Step{Committees}, back: Competitions, hasBack: true},
	Committees:              {forward: []Step{CommitteesSummary}, back: CompetitionsSummary, hasBack: true},
	CommitteesSummary:       {forward: []Step{Hometown}, back: Committees, hasBack: true},
	Hometown:                {forward: []Step{HometownSummary}, back: CommitteesSummary, hasBack: true},
	HometownSummary:         {forward: []Step{FavoriteProvince}, back: Hometown, hasBack: true},
	FavoriteProvince:        {forward: []Step{FavoriteProvinceSummary}, back: HometownSummary, hasBack: true},
	FavoriteProvinceSummary: {forward: []Step{Review}, back: FavoriteProvince, hasBack: true},
	Review:                  {forward: []Step{Confirmation}, back: FavoriteProvinceSummary, hasBack: true},
	Confirmation:            {forward: []Step{AggregateSummary}, back: Review, hasBack: true},
	AggregateSummary:        {hasBack: true},
}

func (e edges) allows(target Step) bool {
	for _, s := range e.forward {
		if s == target {
			return true
		}
	}
	return false
}
