// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey implements the step-by-step survey flow for one respondent.

A Controller owns the current Step and the Draft answers. Moving forward
requires the current step's gate to be open; moving back never does.

# Flow

	landing -> introduction -> words-about-self -> words-about-self-summary
	        -> ... -> favorite-province-summary -> review -> confirmation
	        -> aggregate-summary

Every question step is followed by a summary step. Landing can also jump
straight to aggregate-summary, and Back from aggregate-summary returns to
whichever step opened it.

# Gates

	words-about-self      all three words non-empty
	words-about-ds        all three words non-empty
	storytelling          confidence in 1..10
	analytics             confidence in 1..10
	skills                at least one skill
	competitions          a number was entered (0 counts)
	committees            three distinct committees
	hometown              province chosen
	favorite-province     province chosen and a non-blank reason
	review                response submitted

# Submitting

Submit runs only from review. It validates the whole record, writes it
through a gateway.Writer and moves to confirmation. A failed write leaves
the respondent on review with the draft untouched and Notice set; calling
Submit again retries. Once a write succeeds the draft is frozen.

	c := survey.New(gw, nil)
	if err := c.Update(survey.SetWordSelf{Index: 0, Word: "curious"}); err != nil {
		// ErrInvalidValue or ErrFrozen
	}

	// Or, from an answers file:
	err := survey.Complete(ctx, survey.New(gw, nil), answers)
*/
package survey
