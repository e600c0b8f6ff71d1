package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cloud-ru/mcp-financing-go/internal/cache"
	"github.com/cloud-ru/mcp-financing-go/internal/config"
	"github.com/cloud-ru/mcp-financing-go/internal/export"
	"github.com/cloud-ru/mcp-financing-go/internal/financing"
	"github.com/cloud-ru/mcp-financing-go/internal/metrics"
	"github.com/cloud-ru/mcp-financing-go/internal/validators"
)

// ValidationError оборачивает нарушение лимитов сервиса или параметров расчета
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// FinancingService выполняет расчеты с учетом лимитов, кэша и экспорта
type FinancingService struct {
	cfg       *config.Config
	store     cache.Store
	exporters *export.Registry
	log       zerolog.Logger
}

// NewFinancingService создает сервис. store и exporters обязательны.
func NewFinancingService(cfg *config.Config, store cache.Store, exporters *export.Registry, log zerolog.Logger) *FinancingService {
	return &FinancingService{
		cfg:       cfg,
		store:     store,
		exporters: exporters,
		log:       log.With().Str("component", "financing_service").Logger(),
	}
}

func (s *FinancingService) validate(p financing.Parameters) error {
	if err := validators.CheckParameters(s.cfg, p); err != nil {
		return &ValidationError{Err: err}
	}
	if err := p.Validate(); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// Calculate возвращает результат расчета и признак попадания в кэш
func (s *FinancingService) Calculate(ctx context.Context, p financing.Parameters) (*financing.Result, bool, error) {
	if err := s.validate(p); err != nil {
		return nil, false, err
	}

	key := cache.Key(p)
	if cached, ok := s.store.Get(ctx, key); ok {
		metrics.CacheLookups.WithLabelValues(s.store.Backend(), "hit").Inc()
		return cached, true, nil
	}
	metrics.CacheLookups.WithLabelValues(s.store.Backend(), "miss").Inc()

	start := time.Now()
	result, err := financing.Calculate(p)
	metrics.CalculationDuration.WithLabelValues("calculate").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, false, err
	}

	if err := s.store.Set(ctx, key, result); err != nil {
		// Кэш не критичен для расчета
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to cache financing result")
	}

	s.log.Debug().
		Float64("loan_amount", result.LoanAmount).
		Int("months", result.Months).
		Dur("duration", time.Since(start)).
		Msg("Financing calculated")
	return result, false, nil
}

// Compare сравнивает график с досрочным погашением и без него
func (s *FinancingService) Compare(ctx context.Context, p financing.Parameters) (*financing.RepaymentComparison, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	comparison, err := financing.CompareRepayment(p)
	metrics.CalculationDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
	return comparison, err
}

// Export рассчитывает (или берет из кэша) результат и формирует документ
func (s *FinancingService) Export(ctx context.Context, p financing.Parameters, meta export.Metadata, format string) (*export.Document, error) {
	exporter, err := s.exporters.Get(format)
	if err != nil {
		return nil, err
	}

	result, _, err := s.Calculate(ctx, p)
	if err != nil {
		return nil, err
	}

	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}
	doc, err := exporter.Export(ctx, export.Snapshot{Parameters: p, Result: result, Metadata: meta})
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", exporter.Format(), err)
	}

	metrics.ExportedBytes.WithLabelValues(doc.Format).Add(float64(len(doc.Data)))
	s.log.Info().
		Str("format", doc.Format).
		Str("document_id", doc.ID).
		Int("bytes", len(doc.Data)).
		Msg("Financing document exported")
	return doc, nil
}

// Formats возвращает поддерживаемые форматы экспорта
func (s *FinancingService) Formats() []string {
	return s.exporters.Formats()
}
