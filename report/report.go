// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/stimmie/aggregate"
)

// BarWidth is the width of the longest histogram bar in cells.
const BarWidth = 30

// TopWords is how many entries each word list shows.
const TopWords = 10

var (
	accent = lipgloss.Color("#4b7bec")
	muted  = lipgloss.Color("#6b7280")
	warn   = lipgloss.Color("#fab387")

	titleStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	noticeStyle  = lipgloss.NewStyle().Foreground(warn).Bold(true)
	barStyle     = lipgloss.NewStyle().Foreground(accent)
)

// Options controls what Render prints around the summary.
type Options struct {
	// Notice is printed above the report when non-empty.
	Notice string
	// Now anchors relative times. Zero means time.Now.
	Now time.Time
}

// Render writes the summary as a plain-text report.
func Render(w io.Writer, s aggregate.Summary, opts Options) error {
	_, err := io.WriteString(w, String(s, opts))
	return err
}

// String formats the summary.
func String(s aggregate.Summary, opts Options) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var blocks []string
	if opts.Notice != "" {
		blocks = append(blocks, noticeStyle.Render(opts.Notice))
	}

	header := titleStyle.Render("Stimmie results")
	line := fmt.Sprintf("%s responses", humanize.Comma(int64(s.Responses)))
	if s.LatestAt != nil {
		line += ", latest " + humanize.RelTime(*s.LatestAt, now, "ago", "from now")
	}
	blocks = append(blocks, header, mutedStyle.Render(line))

	if s.Responses == 0 {
		blocks = append(blocks, mutedStyle.Render("No responses yet."))
		return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"
	}

	blocks = append(blocks,
		section("Words about themselves", words(s.WordsAboutSelf)),
		section("Words about data science", words(s.WordsAboutDS)),
		section("Storytelling confidence", histogram(s.Storytelling)),
		section("Analytics confidence", histogram(s.Analytics)),
		section("Popular skills", counts(s.TopSkills)),
		section("Skills per member", histogram(s.SkillsPerMember)),
		section("Competitions joined", histogram(s.Competitions)),
		section("Committees", committees(s.Committees)),
		section(fmt.Sprintf("Hometowns (%s provinces)", humanize.Comma(int64(s.DistinctHometowns))),
			counts(aggregate.TopN(s.Hometowns.Counts, TopWords))),
		section(fmt.Sprintf("Favorite provinces (%s provinces)", humanize.Comma(int64(s.DistinctFavorites))),
			counts(aggregate.TopN(s.Favorites.Counts, TopWords))),
		section("Why that province", words(s.ProvinceReasons)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"
}

func section(title, body string) string {
	if body == "" {
		body = mutedStyle.Render("(none)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, sectionStyle.Render(title), body)
}

func words(freq map[string]int) string {
	return counts(aggregate.TopN(freq, TopWords))
}

func counts(entries []aggregate.Count) string {
	if len(entries) == 0 {
		return ""
	}
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Key))
	}
	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = fmt.Sprintf("  %-*s  %s", width, e.Key, humanize.Comma(int64(e.Count)))
	}
	return strings.Join(rows, "\n")
}

func histogram(h map[int]int) string {
	if len(h) == 0 {
		return ""
	}
	keys := make([]int, 0, len(h))
	peak := 0
	for k, c := range h {
		keys = append(keys, k)
		peak = max(peak, c)
	}
	sort.Ints(keys)

	rows := make([]string, len(keys))
	for i, k := range keys {
		n := h[k] * BarWidth / peak
		if n == 0 {
			n = 1
		}
		rows[i] = fmt.Sprintf("  %3d %s %d", k, barStyle.Render(strings.Repeat("█", n)), h[k])
	}
	return strings.Join(rows, "\n")
}

func committees(ranked []aggregate.RankedCount) string {
	if len(ranked) == 0 {
		return ""
	}
	width := 0
	for _, rc := range ranked {
		width = max(width, lipgloss.Width(rc.Name))
	}
	rows := []string{mutedStyle.Render(fmt.Sprintf("  %-*s  %5s %5s %5s %5s", width, "", "1st", "2nd", "3rd", "total"))}
	for _, rc := range ranked {
		rows = append(rows, fmt.Sprintf("  %-*s  %5d %5d %5d %5d", width, rc.Name, rc.First, rc.Second, rc.Third, rc.Total))
	}
	return strings.Join(rows, "\n")
}
