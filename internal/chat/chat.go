package chat

import "context"

type Notifier interface {
	Notify(ctx context.Context, text string) error
	Enabled() bool
}

// Disabled is used when no chat credentials are configured.
type Disabled struct{}

func (Disabled) Notify(ctx context.Context, text string) error { return nil }

func (Disabled) Enabled() bool { return false }
