package repos

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/feedback-backend/internal/repos/testutil"
	"github.com/yungbote/feedback-backend/internal/types"
)

func TestAICallLogRepoCreate(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewAICallLogRepo(db, testutil.Logger(t))

	if err := repo.Create(ctx, nil, nil); err != nil {
		t.Fatalf("Create empty: %v", err)
	}

	submission := testutil.SeedSubmission(t, ctx, db, 5, time.Now().UTC())
	logs := []*types.AICallLog{
		{
			SubmissionID: &submission.ID,
			CallType:     "response",
			Model:        "test-model",
			Prompt:       "prompt",
			Response:     "text",
			Success:      true,
			Usage:        datatypes.JSON([]byte("{}")),
			CreatedAt:    time.Now().UTC(),
		},
		{
			SubmissionID: &submission.ID,
			CallType:     "summary",
			Model:        "test-model",
			Prompt:       "prompt",
			Success:      false,
			Error:        "upstream timeout",
			Usage:        datatypes.JSON([]byte("{}")),
			CreatedAt:    time.Now().UTC(),
		},
	}
	if err := repo.Create(ctx, nil, logs); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var count int64
	if err := db.Model(&types.AICallLog{}).Where("submission_id = ?", submission.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 audit rows, got %d", count)
	}
}
