package ports

import (
	"context"

	"github.com/stoik/link-guard/internal/domain"
)

// Storage defines the contract for persisting issued warnings
type Storage interface {
	// RecordWarning stores a warning after its delivery attempt
	RecordWarning(ctx context.Context, warning *domain.Warning) error

	// ListRecentWarnings returns up to limit warnings, newest first.
	// A limit of zero or less returns no warnings.
	ListRecentWarnings(ctx context.Context, limit int) ([]domain.Warning, error)

	// Lifecycle
	Close() error
}
