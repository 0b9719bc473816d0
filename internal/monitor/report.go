package monitor

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/hamed0406/resourcemonitor/internal/domain"
)

// Report is the per-run result: one outcome per resource, in input order.
type Report struct {
	Outcomes     []domain.Outcome
	Notified     int
	NotifyErrors []error
}

func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Success() {
			n++
		}
	}
	return n
}

// Err combines every resource failure, or returns nil if all resources passed.
func (r *Report) Err() error {
	var err error
	for _, o := range r.Outcomes {
		if o.Failure != nil {
			err = multierr.Append(err, o.Failure)
		}
	}
	return err
}

// Describe renders a fatal run error the way it is shown to operators.
func Describe(err error) string {
	var ce *domain.ConfigurationError
	if errors.As(err, &ce) {
		return "ConfigurationError: " + ce.Reason
	}
	var pe *domain.ParseError
	if errors.As(err, &pe) {
		if pe.Index < 0 {
			return "JSONDecodeError: " + pe.Error()
		}
		return "ParseError: " + pe.Error()
	}
	return err.Error()
}
