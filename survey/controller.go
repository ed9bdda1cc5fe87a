// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/stimmie/catalog"
	"github.com/danielhkuo/stimmie/gateway"
	"github.com/danielhkuo/stimmie/models"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrGateClosed        = errors.New("current step is incomplete")
	ErrInvalidValue      = errors.New("invalid value")
	ErrFrozen            = errors.New("response is no longer editable")
	ErrSubmitInFlight    = errors.New("submission already in progress")
	ErrAlreadySubmitted  = errors.New("response already submitted")
)

// SubmitFailedNotice is shown inline on the review step after a failed write.
const SubmitFailedNotice = "submission failed, please retry"

// Controller drives one respondent through the survey. It is safe for
// concurrent use.
type Controller struct {
	mu sync.Mutex

	writer gateway.Writer
	cat    *catalog.Catalog

	step          Step
	summaryOrigin Step
	draft         Draft

	submitting bool
	submitted  bool
	lastErr    error
}

// New returns a controller on the Landing step. A nil catalog uses the
// embedded default.
func New(writer gateway.Writer, cat *catalog.Catalog) *Controller {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Controller{
		writer:        writer,
		cat:           cat,
		step:          Landing,
		summaryOrigin: Landing,
	}
}

func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Draft returns a copy of the in-progress answers.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.clone()
}

// Record returns the draft in submitted form.
func (c *Controller) Record() models.ResponseRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Record()
}

// CanAdvance reports whether the current step's gate is open.
func (c *Controller) CanAdvance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gateOpen(c.step)
}

func (c *Controller) gateOpen(step Step) bool {
	if step == Review {
		return c.submitted
	}
	return c.draft.gate(step)
}

// Advance moves forward to target.
func (c *Controller) Advance(target Step) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advance(target)
}

// Next advances along the current step's default forward edge.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := transitions[c.step]
	if len(e.forward) == 0 {
		return fmt.Errorf("%w: %s has no forward step", ErrInvalidTransition, c.step)
	}
	return c.advance(e.forward[0])
}

func (c *Controller) advance(target Step) error {
	if !transitions[c.step].allows(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.step, target)
	}
	if !c.gateOpen(c.step) {
		return fmt.Errorf("%w: %s", ErrGateClosed, c.step)
	}
	if target == AggregateSummary {
		c.summaryOrigin = c.step
	}
	c.moveTo(target)
	return nil
}

// Retreat moves back to target without validation.
func (c *Controller) Retreat(target Step) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	back, ok := c.backEdge()
	if !ok || back != target {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.step, target)
	}
	c.moveTo(target)
	return nil
}

// Back retreats along the current step's back edge.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	back, ok := c.backEdge()
	if !ok {
		return fmt.Errorf("%w: %s has no previous step", ErrInvalidTransition, c.step)
	}
	c.moveTo(back)
	return nil
}

func (c *Controller) backEdge() (Step, bool) {
	if c.step == AggregateSummary {
		return c.summaryOrigin, true
	}
	e := transitions[c.step]
	return e.back, e.hasBack
}

func (c *Controller) moveTo(target Step) {
	slog.Debug("Survey step changed", "from", c.step, "to", target)
	c.step = target
}

// Update applies one change to the draft.
func (c *Controller) Update(u Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitted || c.submitting {
		return ErrFrozen
	}
	return c.apply(u)
}

// Submit validates the draft and writes it through the gateway. It is only
// valid on the Review step. On failure the controller stays on Review with
// the draft intact so the respondent can retry.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.submitted:
		c.mu.Unlock()
		return ErrAlreadySubmitted
	case c.submitting:
		c.mu.Unlock()
		return ErrSubmitInFlight
	case c.step != Review:
		step := c.step
		c.mu.Unlock()
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, step)
	}

	rec := c.draft.Record()
	if err := rec.Validate(c.cat); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrGateClosed, err)
	}
	c.submitting = true
	c.mu.Unlock()

	err := c.writer.WriteResponse(ctx, rec)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if err != nil {
		c.lastErr = err
		slog.Warn("Survey submission failed", "error", err)
		return err
	}

	c.submitted = true
	c.lastErr = nil
	slog.Info("Survey submitted", "hometown", rec.Hometown)
	c.moveTo(Confirmation)
	return nil
}

// Submitted reports whether the response has been stored.
func (c *Controller) Submitted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitted
}

// LastError returns the error from the most recent failed submit, or nil.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Notice returns the inline message to display, or "".
func (c *Controller) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastErr != nil {
		return SubmitFailedNotice
	}
	return ""
}
