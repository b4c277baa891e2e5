package extraction

import (
	"sync"
	"time"
)

// DefaultDebounce is the default quiet period before a URL change triggers
// re-extraction.
const DefaultDebounce = 300 * time.Millisecond

// Watcher debounces rapid URL changes on single-page-app sites so overlapping
// extractions never run. The last URL seen during the quiet period wins;
// earlier ones are discarded.
type Watcher struct {
	mu       sync.Mutex
	debounce time.Duration
	timer    *time.Timer
	lastURL  string
	fire     func(url string)
}

// NewWatcher creates a Watcher that calls fire with the settled URL after the
// debounce period. debounce <= 0 uses DefaultDebounce.
func NewWatcher(debounce time.Duration, fire func(url string)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce, fire: fire}
}

// OnURLChange records a navigation. Repeated calls within the debounce window
// reset the timer; only the final URL is delivered.
func (w *Watcher) OnURLChange(url string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if url == w.lastURL {
		return
	}
	w.lastURL = url

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.fire(url)
	})
}

// Stop cancels any pending delivery.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
