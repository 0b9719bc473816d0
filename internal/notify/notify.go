package notify

import "context"

// Notifier forwards a failure message to an external channel.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
