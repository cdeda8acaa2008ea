package types

import (
	"time"
)

type Submission struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserRating         int       `gorm:"column:user_rating;not null;index" json:"user_rating"`
	UserReview         string    `gorm:"column:user_review;type:text;not null" json:"user_review"`
	AIResponse         string    `gorm:"column:ai_response;type:text;not null" json:"ai_response"`
	AISummary          string    `gorm:"column:ai_summary;type:text;not null" json:"ai_summary"`
	RecommendedActions string    `gorm:"column:recommended_actions;type:text;not null" json:"recommended_actions"`
	CreatedAt          time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
}

func (Submission) TableName() string {
	return "submission"
}
