package domain

import (
	"time"
)

// AuditKind distinguishes actor-initiated operations from system events.
type AuditKind string

const (
	AuditKindActor AuditKind = "actor"
	AuditKindEvent AuditKind = "event"
)

// Limits applied to stored audit text.
const (
	AuditMessageMaxLength     = 300
	AuditErrorReasonMaxLength = 250
)

// AuditRecord is the persisted trace of one audited operation.
type AuditRecord struct {
	ID          string
	Kind        AuditKind
	ActorID     string
	Role        Role
	Source      string
	Category    string
	Message     string
	Status      ActionStatus
	ErrorReason string
	ElapsedMs   int64
	StartedAt   time.Time
	EndedAt     *time.Time
}

// NewAuditRecord opens a record in Processing state.
func NewAuditRecord(id string, kind AuditKind, actor Actor, category, message string, startedAt time.Time) *AuditRecord {
	return &AuditRecord{
		ID:        id,
		Kind:      kind,
		ActorID:   actor.ID,
		Role:      actor.Role,
		Source:    actor.Source,
		Category:  category,
		Message:   Left(message, AuditMessageMaxLength),
		Status:    StatusProcessing,
		StartedAt: startedAt,
	}
}

// Finish closes the record as Processed.
func (a *AuditRecord) Finish(now time.Time) {
	a.close(StatusProcessed, "", now)
}

// Cancel closes the record as Cancelled, used for rejected operations.
func (a *AuditRecord) Cancel(reason string, now time.Time) {
	a.close(StatusCancelled, reason, now)
}

// Error closes the record as Error.
func (a *AuditRecord) Error(reason string, now time.Time) {
	a.close(StatusError, reason, now)
}

func (a *AuditRecord) close(status ActionStatus, reason string, now time.Time) {
	a.Status = status
	a.ErrorReason = Abbreviate(reason, AuditErrorReasonMaxLength)
	a.ElapsedMs = now.Sub(a.StartedAt).Milliseconds()
	a.EndedAt = &now
}

// AuditFilter selects audit records. Zero values are ignored.
type AuditFilter struct {
	Kind     AuditKind
	Category string
	Status   ActionStatus
	Keyword  string
	FromDay  *time.Time
	ToDay    *time.Time
}
