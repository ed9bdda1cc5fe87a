// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate turns a collection of survey responses into the
structures shown on the summary screens.

All functions are pure: the same input always yields the same output, and
nil or empty input yields empty (non-nil) results.

# Tables

	WordFrequency(records, WordsAboutSelf)     // word -> count
	NumericHistogram(records, AnalyticsConfidence) // value -> count
	CategoryCounts(records, Hometown)          // province -> count
	RankedCategoryCounts(records)              // committee -> 1st/2nd/3rd/total

Map ordering is unspecified; TopN and RankedCategoryCounts return sorted
slices for display.

# Zero Values

NumericHistogram drops zeros because unanswered numeric fields decode as 0.
A genuine answer of 0 competitions is dropped with them.

# Choropleth

Choropleth bins province counts relative to the busiest province:

	bin = floor(count / max * (levels - 1))

Provinces without responses get bin -1 and NoDataColor.

# Summary

Summarize builds every table at once; it backs GET /api/summary and the
summary CLI command.
*/
package aggregate
