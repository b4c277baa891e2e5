package extraction

import "errors"

// ErrNoJobData signals that every extracted field was empty or unusable.
// Partial extractions are not errors; only a fully empty result is.
var ErrNoJobData = errors.New("could not extract job data")
