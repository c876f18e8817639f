package domain

import "time"

// AuditEntry is an append-only record of a state change attempt. Audit is
// best-effort: a failed append is reported but never rolls back the change
// it describes.
type AuditEntry struct {
	ID          uint
	ActorID     string
	ActorRole   Role
	Action      string
	EntityType  string
	EntityID    string
	BeforeValue string
	AfterValue  string
	Note        string
	CreatedAt   time.Time
}

type AuditSink interface {
	Append(entry *AuditEntry) error
}
