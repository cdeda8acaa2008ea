package repos

import (
	"context"
	"math"

	"gorm.io/gorm"

	"github.com/yungbote/feedback-backend/internal/logger"
	"github.com/yungbote/feedback-backend/internal/types"
)

type SubmissionStats struct {
	Total         int64         `json:"total_submissions"`
	AverageRating float64       `json:"average_rating"`
	Distribution  map[int]int64 `json:"rating_distribution"`
}

type SubmissionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, submission *types.Submission) error
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Submission, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Submission, int64, error)
	Stats(ctx context.Context, tx *gorm.DB) (*SubmissionStats, error)
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	repoLog := baseLog.With("repo", "SubmissionRepo")
	return &submissionRepo{db: db, log: repoLog}
}

func (r *submissionRepo) Create(ctx context.Context, tx *gorm.DB, submission *types.Submission) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(submission).Error; err != nil {
		return err
	}
	return nil
}

func (r *submissionRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Submission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var submission types.Submission
	if err := transaction.WithContext(ctx).First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Submission, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var total int64
	if err := transaction.WithContext(ctx).Model(&types.Submission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	submissions := []*types.Submission{}
	err := transaction.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (r *submissionRepo) Stats(ctx context.Context, tx *gorm.DB) (*SubmissionStats, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	stats := &SubmissionStats{Distribution: map[int]int64{}}

	if err := transaction.WithContext(ctx).Model(&types.Submission{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if stats.Total == 0 {
		return stats, nil
	}

	var avg float64
	err := transaction.WithContext(ctx).
		Model(&types.Submission{}).
		Select("AVG(user_rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	stats.AverageRating = math.Round(avg*100) / 100

	var rows []struct {
		UserRating int
		Count      int64
	}
	err = transaction.WithContext(ctx).
		Model(&types.Submission{}).
		Select("user_rating, COUNT(*) AS count").
		Group("user_rating").
		Order("user_rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.Distribution[row.UserRating] = row.Count
	}
	return stats, nil
}
