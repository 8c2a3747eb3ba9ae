package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"custodian/internal/lifecycle/ports"
	id "custodian/pkg/domain"
	audit "custodian/pkg/platform/audit"
)

// AgedDeleter is the slice of the relational adapter the sweeper needs.
type AgedDeleter interface {
	DeleteAged(ctx context.Context, classification id.DataClassification, before time.Time) (int64, error)
}

// Sweeper periodically removes records that aged out of their tier's
// retention window. Indefinite tiers are never swept; the policy type makes
// an indefinite SPECIAL_CATEGORY or FINANCIAL window unrepresentable.
type Sweeper struct {
	policy         *Policy
	store          AgedDeleter
	auditPublisher ports.AuditPublisher
	logger         *slog.Logger
	cron           *cron.Cron
}

// Option configures the Sweeper.
type Option func(*Sweeper)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sweeper) { s.logger = logger }
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Sweeper) { s.auditPublisher = publisher }
}

// NewSweeper constructs a retention sweeper.
func NewSweeper(policy *Policy, store AgedDeleter, opts ...Option) (*Sweeper, error) {
	if policy == nil {
		return nil, fmt.Errorf("retention policy is required")
	}
	if store == nil {
		return nil, fmt.Errorf("aged deleter is required")
	}
	s := &Sweeper{policy: policy, store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sweep runs one pass over every bounded tier, deleting rows older than the
// tier's cutoff. Per-tier failures are logged and the pass continues; the
// next scheduled run retries.
func (s *Sweeper) Sweep(ctx context.Context) error {
	now := time.Now().UTC()
	var total int64
	var firstErr error

	for _, c := range id.Classifications() {
		days, ok := s.policy.Window(c)
		if !ok || days == Indefinite {
			continue
		}
		cutoff := now.Add(-time.Duration(days) * hoursPerDay * time.Hour)
		deleted, err := s.store.DeleteAged(ctx, c, cutoff)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if s.logger != nil {
				s.logger.WarnContext(ctx, "retention sweep failed for tier",
					"classification", c.String(),
					"error", err,
				)
			}
			continue
		}
		total += deleted
	}

	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventRetentionSweepRun, "",
		"deleted", total,
		"had_errors", firstErr != nil,
	)
	return firstErr
}

// Start schedules Sweep on the given cron spec and returns the scheduler
// handle so callers can stop it during shutdown.
func (s *Sweeper) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := s.Sweep(context.Background()); err != nil && s.logger != nil {
			s.logger.Warn("scheduled retention sweep finished with errors", "error", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule retention sweep: %w", err)
	}
	c.Start()
	s.cron = c
	return c, nil
}

// Stop halts the scheduler, waiting for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
