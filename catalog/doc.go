// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog provides the fixed answer choices of the survey.

The default catalog is embedded from catalog.yaml:

	cat := catalog.Default()
	cat.IsSkill("Python")        // true
	cat.IsCommittee("Finance")   // true
	cat.IsProvince("Cebu")       // true

Province names match the PROVINCE property of the map topology so that
choropleth counts line up with map features.
*/
package catalog
