package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jordan/job-tracker/internal/types"
)

// DefaultResetDelay is how long the success/error affordance state is shown
// before auto-resetting to idle.
const DefaultResetDelay = 2 * time.Second

// ButtonState is the affordance state machine:
// idle → submitting → success|error → (timeout) → idle.
// There is no path from success or error back into submitting except through
// a fresh idle.
type ButtonState string

// Affordance states.
const (
	StateIdle       ButtonState = "idle"
	StateSubmitting ButtonState = "submitting"
	StateSuccess    ButtonState = "success"
	StateError      ButtonState = "error"
)

// ErrBusy rejects a track attempt while the affordance is not idle.
var ErrBusy = errors.New("a tracking operation is already in progress")

// CooldownError rejects a repeat track of the same job within its window.
type CooldownError struct {
	RemainingSeconds int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("already tracked; wait %ds before tracking this job again", e.RemainingSeconds)
}

// Submitter persists a job posting externally. Implementations report
// auth, validation, and network failures uniformly as an error with a short
// human-readable message.
type Submitter interface {
	SubmitJobPosting(ctx context.Context, posting *types.JobPosting) error
}

// Coordinator deduplicates track requests and drives the affordance state.
// One Coordinator owns one affordance and one cooldown map; its scope is one
// runtime context, not shared across processes.
type Coordinator struct {
	cooldowns *Cooldowns
	submitter Submitter

	mu         sync.Mutex
	state      ButtonState
	resetDelay time.Duration
	onState    func(ButtonState)
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithResetDelay overrides the success/error auto-reset delay.
func WithResetDelay(d time.Duration) Option {
	return func(c *Coordinator) { c.resetDelay = d }
}

// WithStateListener registers a callback invoked on every affordance state
// change, e.g. to repaint a button.
func WithStateListener(fn func(ButtonState)) Option {
	return func(c *Coordinator) { c.onState = fn }
}

// WithCooldownWindow overrides the cooldown window.
func WithCooldownWindow(d time.Duration) Option {
	return func(c *Coordinator) { c.cooldowns = NewCooldowns(d) }
}

// NewCoordinator creates a Coordinator that submits through submitter.
func NewCoordinator(submitter Submitter, opts ...Option) *Coordinator {
	c := &Coordinator{
		cooldowns:  NewCooldowns(DefaultCooldown),
		submitter:  submitter,
		state:      StateIdle,
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current affordance state.
func (c *Coordinator) State() ButtonState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Cooldowns exposes the cooldown map, mainly for status queries.
func (c *Coordinator) Cooldowns() *Cooldowns { return c.cooldowns }

// Track submits posting unless the affordance is busy or the job identity is
// inside its cooldown window. On success the cooldown is recorded. The
// rejected posting is discarded, never queued or retried.
func (c *Coordinator) Track(ctx context.Context, posting *types.JobPosting) error {
	key := IdentityKey(posting.CompanyName, posting.Title, posting.SourceURL)

	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrBusy
	}
	if remaining := c.cooldowns.RemainingSeconds(key); remaining > 0 {
		c.mu.Unlock()
		return &CooldownError{RemainingSeconds: remaining}
	}
	c.setStateLocked(StateSubmitting)
	c.mu.Unlock()

	err := c.submitter.SubmitJobPosting(ctx, posting)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.setStateLocked(StateError)
		c.scheduleResetLocked(StateError)
		return fmt.Errorf("failed to track job: %w", err)
	}

	c.cooldowns.Record(key)
	c.setStateLocked(StateSuccess)
	c.scheduleResetLocked(StateSuccess)
	return nil
}

// setStateLocked transitions the affordance and notifies the listener.
// Caller holds c.mu.
func (c *Coordinator) setStateLocked(s ButtonState) {
	c.state = s
	if c.onState != nil {
		c.onState(s)
	}
}

// scheduleResetLocked arms the auto-reset back to idle. The reset only fires
// if the state is still the one that scheduled it; a newer transition wins.
func (c *Coordinator) scheduleResetLocked(from ButtonState) {
	time.AfterFunc(c.resetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state == from {
			c.setStateLocked(StateIdle)
		}
	})
}
