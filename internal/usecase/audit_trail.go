package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/infrastructure/metrics"
)

// Logger channels for audited operations.
const (
	ChannelAuditActor = "audit.actor"
	ChannelAuditEvent = "audit.event"
)

// AuditTrail records the outcome of business operations. Records are written
// outside the business transaction: a record left in Processing marks an
// operation that died mid-flight.
type AuditTrail struct {
	auditRepo AuditRepository
	idGen     IDGenerator
	clock     Clock
	actorLog  zerolog.Logger
	eventLog  zerolog.Logger
	metrics   *metrics.Metrics
}

// NewAuditTrail creates a new AuditTrail.
func NewAuditTrail(auditRepo AuditRepository, idGen IDGenerator, clock Clock, logger zerolog.Logger, metrics *metrics.Metrics) *AuditTrail {
	return &AuditTrail{
		auditRepo: auditRepo,
		idGen:     idGen,
		clock:     clock,
		actorLog:  logger.With().Str("channel", ChannelAuditActor).Logger(),
		eventLog:  logger.With().Str("channel", ChannelAuditEvent).Logger(),
		metrics:   metrics,
	}
}

// Audit runs fn as an actor-initiated operation.
func (a *AuditTrail) Audit(ctx context.Context, category, message string, fn func(ctx context.Context) error) error {
	return a.Wrap(ctx, domain.AuditKindActor, category, message, fn)
}

// AuditEvent runs fn as a system-initiated operation.
func (a *AuditTrail) AuditEvent(ctx context.Context, category, message string, fn func(ctx context.Context) error) error {
	return a.Wrap(ctx, domain.AuditKindEvent, category, message, fn)
}

// Wrap runs fn between an opening and a closing audit record.
//
// Rejections are recorded as Cancelled and returned unchanged. Any other
// failure, including a panic in fn, is recorded as Error and returned as a
// domain.InvocationError. Failures to write either record are logged only.
func (a *AuditTrail) Wrap(ctx context.Context, kind domain.AuditKind, category, message string, fn func(ctx context.Context) error) error {
	log := a.logger(kind)
	actor := domain.ActorFrom(ctx)

	start := a.clock.Now()
	rec := domain.NewAuditRecord(a.idGen.Generate(), kind, actor, category, message, start)
	log = log.With().
		Str("audit_id", rec.ID).
		Str("actor", actor.ID).
		Str("category", category).
		Str("message", rec.Message).
		Logger()

	log.Trace().Msg("start")
	if err := a.auditRepo.Create(ctx, rec); err != nil {
		log.Error().Err(err).Msg("failed to open audit record")
		a.writeFailed("start")
		rec = nil
	}

	err := runRecovered(ctx, fn)
	now := a.clock.Now()
	elapsed := now.Sub(start).Milliseconds()

	switch {
	case err == nil:
		if rec != nil {
			rec.Finish(now)
		}
		log.Info().Int64("elapsed_ms", elapsed).Msg("finish")
		a.close(ctx, log, kind, rec, domain.StatusProcessed)
		return nil
	case domain.IsRejection(err):
		if rec != nil {
			rec.Cancel(err.Error(), now)
		}
		log.Warn().Err(err).Int64("elapsed_ms", elapsed).Msg("cancel")
		a.close(ctx, log, kind, rec, domain.StatusCancelled)
		return err
	default:
		if rec != nil {
			rec.Error(err.Error(), now)
		}
		log.Error().Err(err).Int64("elapsed_ms", elapsed).Msg("error")
		a.close(ctx, log, kind, rec, domain.StatusError)
		return domain.Invocation(err)
	}
}

// WrapValue is Wrap for operations that produce a value.
func WrapValue[T any](ctx context.Context, a *AuditTrail, kind domain.AuditKind, category, message string, fn func(ctx context.Context) (T, error)) (T, error) {
	var v T
	err := a.Wrap(ctx, kind, category, message, func(ctx context.Context) error {
		var err error
		v, err = fn(ctx)
		return err
	})
	return v, err
}

// Find lists audit records matching filter.
func (a *AuditTrail) Find(ctx context.Context, filter domain.AuditFilter, page domain.Pagination) (*domain.PagingList[*domain.AuditRecord], error) {
	return a.auditRepo.Find(ctx, filter, page.Normalize())
}

func (a *AuditTrail) close(ctx context.Context, log zerolog.Logger, kind domain.AuditKind, rec *domain.AuditRecord, status domain.ActionStatus) {
	if a.metrics != nil {
		a.metrics.AuditRecords.WithLabelValues(string(kind), string(status)).Inc()
	}
	if rec == nil {
		return
	}
	if err := a.auditRepo.Update(context.WithoutCancel(ctx), rec); err != nil {
		log.Error().Err(err).Str("status", string(status)).Msg("failed to close audit record")
		a.writeFailed("close")
	}
}

func (a *AuditTrail) writeFailed(phase string) {
	if a.metrics != nil {
		a.metrics.AuditWriteFailures.WithLabelValues(phase).Inc()
	}
}

func (a *AuditTrail) logger(kind domain.AuditKind) zerolog.Logger {
	if kind == domain.AuditKindEvent {
		return a.eventLog
	}
	return a.actorLog
}

func runRecovered(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.Recovered(r)
		}
	}()
	return fn(ctx)
}
