package domain

import "time"

// Audit actions recorded by the auth core.
const (
	AuditSignup      = "signup"
	AuditLoginOK     = "login_ok"
	AuditLoginFailed = "login_failed"
	AuditRoleChange  = "role_change"
	AuditUserDeleted = "user_deleted"
)

// AuditRecord is one entry in the append-only auth audit trail.
// Subject is the login key for pre-authentication events (failed logins)
// and the user ID everywhere else. Detail never carries secrets.
type AuditRecord struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	ActorID   string    `json:"actor_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
