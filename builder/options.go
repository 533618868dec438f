package builder

import "errors"

// ErrOptionViolation is returned by the build functions when an option
// constructor received an invalid value.
var ErrOptionViolation = errors.New("builder: invalid option value")

// DefaultTimeWindowDays is the temporal graph window when none is set.
const DefaultTimeWindowDays = 7

// Options collects the tunable parameters of a build.
type Options struct {
	// TimeWindowDays bounds the date gap for temporal edges.
	TimeWindowDays int

	// ExpensesOnly restricts the input to records with Type "egreso".
	// By default all transaction types participate.
	ExpensesOnly bool

	err error // first option violation, surfaced at build time
}

// DefaultOptions returns the baseline configuration: a 7-day temporal
// window and no type filtering.
func DefaultOptions() Options {
	return Options{TimeWindowDays: DefaultTimeWindowDays}
}

// Option mutates Options before a build starts.
type Option func(*Options)

// WithTimeWindow sets the temporal window in days. Values below 1 are
// rejected; the violation is reported by the next build call.
func WithTimeWindow(days int) Option {
	return func(o *Options) {
		if days < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.TimeWindowDays = days
	}
}

// WithExpensesOnly narrows every build to expense records. Income and
// other types are dropped before any graph is derived.
func WithExpensesOnly() Option {
	return func(o *Options) {
		o.ExpensesOnly = true
	}
}

// resolve folds opts over the defaults and reports the first violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
