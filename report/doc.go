// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders an aggregate.Summary for the terminal.

The report lists the response count and how long ago the latest response
arrived, then one section per question: top words, confidence and count
histograms drawn as bars, the most popular skills, the committee rank
breakdown and the most common hometown and favorite provinces.

	s := aggregate.Summarize(records)
	report.Render(os.Stdout, s, report.Options{Notice: result.Notice()})

Styling uses lipgloss and degrades to plain text when the output is not a
terminal. Counts and relative times are formatted with go-humanize.
*/
package report
