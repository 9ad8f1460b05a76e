package entity

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// Audit actions. Rows in timesheet_audit are append-only.
const (
	AuditCreate     = "create"
	AuditSubmit     = "submit"
	AuditSubmitEdit = "submit_edit"
	AuditCancelEdit = "cancel_edit"
	AuditApprove    = "approve"
	AuditReject     = "reject"
	AuditAutoSubmit = "auto_submit"
)

type TimesheetAudit struct {
	bun.BaseModel `bun:"table:timesheet_audit"`

	ID         int             `json:"id" bun:"id,pk,autoincrement"`
	SessionID  int             `json:"session_id"  bun:"session_id"`
	ActorID    int             `json:"actor_id"    bun:"actor_id"`
	ActorEmail string          `json:"actor_email" bun:"actor_email"`
	Action     string          `json:"action"      bun:"action"`
	FromStatus *string         `json:"from_status,omitempty" bun:"from_status"`
	ToStatus   *string         `json:"to_status,omitempty"   bun:"to_status"`
	Note       *string         `json:"note,omitempty"        bun:"note"`
	Payload    json.RawMessage `json:"payload,omitempty"     bun:"payload,type:jsonb"`
	CreatedAt  time.Time       `json:"created_at" bun:"created_at"`
}
