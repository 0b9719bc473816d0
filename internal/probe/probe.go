package probe

import (
	"context"

	"github.com/hamed0406/resourcemonitor/internal/domain"
)

// Checker performs a single check of one resource.
type Checker interface {
	Check(ctx context.Context, spec domain.ResourceSpec) domain.Outcome
}
