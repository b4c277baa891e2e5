// Package tracking deduplicates track requests and mediates the user-facing
// affordance state for submissions to the persistence API.
package tracking

import (
	"math"
	"regexp"
	"strings"
	"sync"
	"time"
)

// DefaultCooldown is the window during which repeat tracks of the same job
// identity are rejected.
const DefaultCooldown = 10 * time.Second

var nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9]+`)

// IdentityKey derives the heuristic job identity used for deduplication:
// lowercased company, title, and page URL with runs of non-alphanumeric
// characters collapsed to a single separator. Not guaranteed unique; two
// postings with identical company+title on the same URL are the same job.
func IdentityKey(company, title, url string) string {
	raw := strings.ToLower(company + "|" + title + "|" + url)
	return strings.Trim(nonAlphanumericRe.ReplaceAllString(raw, "-"), "-")
}

// Cooldowns tracks the last successful submission per job identity. Entries
// are overwritten on each success and never evicted; the map lives only as
// long as the process. Owned by one Coordinator, safe for its callbacks.
type Cooldowns struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]time.Time
	now     func() time.Time
}

// NewCooldowns creates a cooldown tracker. window <= 0 uses DefaultCooldown.
func NewCooldowns(window time.Duration) *Cooldowns {
	if window <= 0 {
		window = DefaultCooldown
	}
	return &Cooldowns{
		window:  window,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// IsInCooldown reports whether key was successfully tracked within the window.
func (c *Cooldowns) IsInCooldown(key string) bool {
	return c.RemainingSeconds(key) > 0
}

// RemainingSeconds returns the whole seconds left in key's cooldown window,
// rounded up, or 0 when the key may be tracked.
func (c *Cooldowns) RemainingSeconds(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.entries[key]
	if !ok {
		return 0
	}
	remaining := c.window - c.now().Sub(last)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}

// Record marks key as successfully tracked now, starting a fresh window.
func (c *Cooldowns) Record(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = c.now()
}
