package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stoik/link-guard/internal/ports"
)

// BreakerNotifier wraps a ports.Notifier with one circuit breaker per channel
//
// When deliveries to a channel keep failing (outage, sustained rate limiting)
// its breaker opens and Notify fails fast for that channel until timeout has
// passed. Other channels keep their own breakers and are unaffected.
type BreakerNotifier struct {
	next     ports.Notifier
	settings gobreaker.Settings

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewBreakerNotifier trips a channel's breaker after maxFailures consecutive
// delivery failures and keeps it open for timeout
//
// ignore, when non-nil, reports errors that do not count as failures, such as
// a channel rejecting the bot for missing permissions. Those errors are still
// returned to the caller.
func NewBreakerNotifier(next ports.Notifier, timeout time.Duration, maxFailures uint32, ignore func(error) bool) *BreakerNotifier {
	settings := gobreaker.Settings{
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	if ignore != nil {
		settings.IsSuccessful = func(err error) bool {
			return err == nil || ignore(err)
		}
	}
	return &BreakerNotifier{
		next:     next,
		settings: settings,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Notify forwards to the wrapped notifier unless channelID's breaker is open
func (n *BreakerNotifier) Notify(ctx context.Context, channelID, text string) error {
	cb := n.breaker(channelID)
	_, err := cb.Execute(func() (interface{}, error) {
		return nil, n.next.Notify(ctx, channelID, text)
	})
	if err != nil {
		return fmt.Errorf("breaker (%s): %w", cb.Name(), err)
	}
	return nil
}

// State returns the breaker state name of channelID ("closed", "half-open", "open")
func (n *BreakerNotifier) State(channelID string) string {
	return n.breaker(channelID).State().String()
}

func (n *BreakerNotifier) breaker(channelID string) *gobreaker.CircuitBreaker {
	n.mu.Lock()
	defer n.mu.Unlock()

	cb, ok := n.breakers[channelID]
	if !ok {
		settings := n.settings
		settings.Name = "notifier:" + channelID
		cb = gobreaker.NewCircuitBreaker(settings)
		n.breakers[channelID] = cb
	}
	return cb
}
