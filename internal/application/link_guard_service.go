package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stoik/link-guard/internal/domain"
	"github.com/stoik/link-guard/internal/domain/detection"
	"github.com/stoik/link-guard/internal/metrics"
	"github.com/stoik/link-guard/internal/ports"
)

// LinkGuardService scans chat messages for lookalike links and warns the channel
type LinkGuardService struct {
	finder   ports.LinkFinder
	detector *detection.Detector
	notifier ports.Notifier
	storage  ports.Storage
	metrics  *metrics.Metrics
	log      *logrus.Logger
}

// NewLinkGuardService creates a new link guard service with dependency injection
func NewLinkGuardService(
	finder ports.LinkFinder,
	detector *detection.Detector,
	notifier ports.Notifier,
	storage ports.Storage,
	m *metrics.Metrics,
	log *logrus.Logger,
) *LinkGuardService {
	return &LinkGuardService{
		finder:   finder,
		detector: detector,
		notifier: notifier,
		storage:  storage,
		metrics:  m,
		log:      log,
	}
}

// HandleMessage checks every link of a message and warns about each lookalike
//
// Error handling strategy:
//   - Messages from bots are ignored before any link discovery
//   - A failed warning delivery is logged and recorded; the remaining links
//     are still checked and warned about
//   - A failed audit write is logged and does not affect delivery
//
// The returned warnings reflect what was attempted, including failed deliveries.
// HandleMessage is safe to call concurrently for different messages.
func (s *LinkGuardService) HandleMessage(ctx context.Context, msg domain.Message) []domain.Warning {
	if msg.AuthorIsBot {
		s.metrics.Messages.WithLabelValues(metrics.OutcomeSkippedBot).Inc()
		return nil
	}
	s.metrics.Messages.WithLabelValues(metrics.OutcomeScanned).Inc()

	var warnings []domain.Warning
	for _, link := range s.finder.FindLinks(msg.Content) {
		s.metrics.Links.Inc()

		verdict := s.detector.Inspect(link)
		if !verdict.Matched() {
			continue
		}
		s.metrics.Warnings.WithLabelValues(verdict.Lookalike).Inc()

		warning := domain.Warning{
			ID:        uuid.New(),
			MessageID: msg.ID,
			ChannelID: msg.ChannelID,
			GuildID:   msg.GuildID,
			AuthorID:  msg.AuthorID,
			Link:      verdict.Link,
			Host:      verdict.Host,
			Lookalike: verdict.Lookalike,
			Distance:  verdict.Distance,
			CreatedAt: time.Now(),
		}

		fields := logrus.Fields{
			"message_id": msg.ID,
			"channel_id": msg.ChannelID,
			"link":       warning.Link,
			"lookalike":  warning.Lookalike,
			"distance":   warning.Distance,
		}

		if err := s.notifier.Notify(ctx, msg.ChannelID, warning.Text()); err != nil {
			s.metrics.NotifyFailures.Inc()
			s.log.WithFields(fields).WithError(err).Error("failed to send warning")
			warning.DeliveryError = err.Error()
		} else {
			warning.Delivered = true
			s.log.WithFields(fields).Info("lookalike link warned")
		}

		if err := s.storage.RecordWarning(ctx, &warning); err != nil {
			s.metrics.StoreFailures.Inc()
			s.log.WithFields(fields).WithError(err).Error("failed to record warning")
		}

		warnings = append(warnings, warning)
	}

	return warnings
}

// ScanText runs link discovery and detection without notifying or recording
//
// One verdict is returned per discovered link, matched or not.
func (s *LinkGuardService) ScanText(text string) []domain.Verdict {
	links := s.finder.FindLinks(text)
	verdicts := make([]domain.Verdict, 0, len(links))
	for _, link := range links {
		verdicts = append(verdicts, s.detector.Inspect(link))
	}
	return verdicts
}

// Bounds for RecentWarnings
const (
	DefaultRecentWarnings = 20
	MaxRecentWarnings     = 1000
)

// RecentWarnings retrieves the latest recorded warnings, newest first
//
// A limit of zero or less means DefaultRecentWarnings; limits above
// MaxRecentWarnings are capped.
func (s *LinkGuardService) RecentWarnings(ctx context.Context, limit int) ([]domain.Warning, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentWarnings
	case limit > MaxRecentWarnings:
		limit = MaxRecentWarnings
	}
	return s.storage.ListRecentWarnings(ctx, limit)
}
