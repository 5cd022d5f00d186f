package recurrence

import (
	"errors"
	"fmt"
)

const (
	// DefaultTarget is the result the teleporter check expects
	DefaultTarget = 6

	// Progress reporting interval for the search loop
	defaultProgressInterval = 1024
)

// ErrNotFound is returned when no parameter in range produces the target.
var ErrNotFound = errors.New("no parameter produces the target")

// SearchOptions controls a search.
type SearchOptions struct {
	Target int
	Start  int
	End    int // inclusive

	// Progress, if set, receives a message every ProgressInterval parameters
	// and once when a match is found.
	Progress         func(string)
	ProgressInterval int
}

// DefaultSearchOptions scans the whole parameter domain for DefaultTarget.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Target:           DefaultTarget,
		Start:            0,
		End:              MaxParam,
		ProgressInterval: defaultProgressInterval,
	}
}

// Search returns the smallest c in [opts.Start, opts.End] whose result
// equals opts.Target. It stops at the first match.
func Search(opts SearchOptions) (int, error) {
	if opts.Start < 0 || opts.End > MaxParam || opts.Start > opts.End {
		return 0, fmt.Errorf("search range [%d, %d] not within [0, %d]: %w",
			opts.Start, opts.End, MaxParam, ErrDomain)
	}

	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = defaultProgressInterval
	}

	e := NewEvaluator()
	for c := opts.Start; c <= opts.End; c++ {
		got, err := e.Evaluate(c)
		if err != nil {
			return 0, fmt.Errorf("evaluate %d: %w", c, err)
		}

		if got == opts.Target {
			if opts.Progress != nil {
				opts.Progress(fmt.Sprintf("Found parameter %d after %d evaluations", c, c-opts.Start+1))
			}
			return c, nil
		}

		if opts.Progress != nil && (c-opts.Start+1)%interval == 0 {
			opts.Progress(fmt.Sprintf("  Checked %d/%d parameters (last result %d)",
				c-opts.Start+1, opts.End-opts.Start+1, got))
		}
	}

	return 0, fmt.Errorf("target %d in [%d, %d]: %w", opts.Target, opts.Start, opts.End, ErrNotFound)
}
