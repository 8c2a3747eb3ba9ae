// Package service composes the three lifecycle orchestrators behind one
// constructor. The Exporter, Eraser, and Restricter stay independently
// testable; Service only wires shared dependencies and delegates.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"custodian/internal/lifecycle/config"
	"custodian/internal/lifecycle/metrics"
	"custodian/internal/lifecycle/models"
	"custodian/internal/lifecycle/ports"
	"custodian/internal/lifecycle/registry"
	"custodian/internal/lifecycle/service/eraser"
	"custodian/internal/lifecycle/service/exporter"
	"custodian/internal/lifecycle/service/restricter"
	id "custodian/pkg/domain"
)

type Service struct {
	exporter   *exporter.Exporter
	eraser     *eraser.Eraser
	restricter *restricter.Restricter
}

type options struct {
	logger         *slog.Logger
	auditPublisher ports.AuditPublisher
	metrics        *metrics.Metrics
	config         *config.Config
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(o *options) { o.auditPublisher = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.config = cfg }
}

// New wires the three orchestrators over explicit dependencies. No ambient
// registry or key service: everything arrives as a constructor argument and
// lives for the process lifetime.
//
// The adapter slice order is the erasure order; wire systems of record
// first. The first adapter implementing ports.Restrictor becomes the home
// of the restriction flag.
func New(reg *registry.Registry, adapters []ports.BackendAdapter, keys ports.KeyDestroyer, opts ...Option) (*Service, error) {
	o := &options{config: config.DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}

	exp, err := exporter.New(reg, adapters,
		exporter.WithLogger(o.logger),
		exporter.WithAuditPublisher(o.auditPublisher),
		exporter.WithMetrics(o.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("build exporter: %w", err)
	}

	ers, err := eraser.New(reg, adapters, keys,
		eraser.WithLogger(o.logger),
		eraser.WithAuditPublisher(o.auditPublisher),
		eraser.WithMetrics(o.metrics),
		eraser.WithConfig(o.config),
	)
	if err != nil {
		return nil, fmt.Errorf("build eraser: %w", err)
	}

	var record ports.Restrictor
	var recordName string
	for _, a := range adapters {
		if r, ok := a.(ports.Restrictor); ok {
			record = r
			recordName = a.Name()
			break
		}
	}
	res, err := restricter.New(reg, record, recordName,
		restricter.WithLogger(o.logger),
		restricter.WithAuditPublisher(o.auditPublisher),
		restricter.WithMetrics(o.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("build restricter: %w", err)
	}

	return &Service{exporter: exp, eraser: ers, restricter: res}, nil
}

// ExportUserData implements the right of access.
func (s *Service) ExportUserData(ctx context.Context, userID id.UserID) (*models.ExportPackage, error) {
	return s.exporter.Export(ctx, userID)
}

// DeleteUserData implements the right to be forgotten.
func (s *Service) DeleteUserData(ctx context.Context, userID id.UserID) (*models.ErasureReport, error) {
	return s.eraser.Delete(ctx, userID)
}

// BulkDeleteUsers erases many users with backend-specific batching.
func (s *Service) BulkDeleteUsers(ctx context.Context, userIDs []id.UserID) (*models.BulkErasureResult, error) {
	return s.eraser.BulkDelete(ctx, userIDs)
}

// FreezeUserData applies restriction of processing.
func (s *Service) FreezeUserData(ctx context.Context, userID id.UserID) (*models.RestrictionReport, error) {
	return s.restricter.Freeze(ctx, userID)
}

// UnfreezeUserData lifts restriction of processing.
func (s *Service) UnfreezeUserData(ctx context.Context, userID id.UserID) (*models.RestrictionReport, error) {
	return s.restricter.Unfreeze(ctx, userID)
}
