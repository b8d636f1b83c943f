package ports

import "context"

// Notifier defines the contract for sending a warning back to the originating channel
type Notifier interface {
	// Notify posts text to the channel. Errors are reported to the caller,
	// which decides whether to continue with other links.
	Notify(ctx context.Context, channelID, text string) error
}
