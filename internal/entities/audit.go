package entities

import "time"

type AuditSeverity string

const (
	AuditInfo AuditSeverity = "info"
	AuditWarn AuditSeverity = "warn"
	// AuditCritical — целостность денег под вопросом (FareMismatch,
	// indeterminate от провайдера), требуется ручная сверка.
	AuditCritical AuditSeverity = "critical"
)

type AuditEvent struct {
	ID         string
	DeliveryID string
	ActorID    string
	Role       Role
	Action     string
	Outcome    string
	Reason     string
	Severity   AuditSeverity
	// AdminOverride помечает break-glass доступ администратора
	// для повышенной детализации аудита.
	AdminOverride bool
	At            time.Time
}
