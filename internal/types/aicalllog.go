package types

import (
	"time"

	"gorm.io/datatypes"
)

// AICallLog records one completion call issued while handling a submission.
// Written best-effort: a failed audit write never fails the submission.
type AICallLog struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	SubmissionID *int64         `gorm:"column:submission_id;index" json:"submission_id,omitempty"`
	CallType     string         `gorm:"column:call_type;not null" json:"call_type"`
	Model        string         `gorm:"column:model;not null" json:"model"`
	Prompt       string         `gorm:"column:prompt;type:text" json:"prompt"`
	Response     string         `gorm:"column:response;type:text" json:"response"`
	Success      bool           `gorm:"column:success;not null" json:"success"`
	Error        string         `gorm:"column:error;type:text" json:"error"`
	Usage        datatypes.JSON `gorm:"type:jsonb;column:usage" json:"usage"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null" json:"created_at"`
}

func (AICallLog) TableName() string {
	return "ai_call_log"
}
