package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/feedback-backend/internal/repos/testutil"
	"github.com/yungbote/feedback-backend/internal/types"
)

func TestSubmissionRepoCreateAndGet(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewSubmissionRepo(db, testutil.Logger(t))

	submission := &types.Submission{
		UserRating:         4,
		UserReview:         "solid product, arrived on time",
		AIResponse:         "thanks",
		AISummary:          "positive",
		RecommendedActions: "1. keep it up",
		CreatedAt:          time.Now().UTC(),
	}
	if err := repo.Create(ctx, nil, submission); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if submission.ID == 0 {
		t.Fatalf("Create: expected assigned id, got 0")
	}

	got, err := repo.GetByID(ctx, nil, submission.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.UserRating != 4 || got.UserReview != submission.UserReview {
		t.Fatalf("GetByID: fields do not round-trip: %+v", got)
	}
	if got.AIResponse != "thanks" || got.AISummary != "positive" || got.RecommendedActions != "1. keep it up" {
		t.Fatalf("GetByID: generated fields do not round-trip: %+v", got)
	}
}

func TestSubmissionRepoGetByIDNotFound(t *testing.T) {
	db := testutil.DB(t)
	repo := NewSubmissionRepo(db, testutil.Logger(t))

	_, err := repo.GetByID(context.Background(), nil, 9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByID: expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestSubmissionRepoListPagination(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewSubmissionRepo(db, testutil.Logger(t))

	now := time.Now().UTC()
	ids := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		s := testutil.SeedSubmission(t, ctx, db, 3, now.Add(time.Duration(i)*time.Minute))
		ids = append(ids, s.ID)
	}

	rows, total, err := repo.List(ctx, nil, 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Fatalf("List: expected total 5, got %d", total)
	}
	if len(rows) != 2 {
		t.Fatalf("List: expected 2 rows, got %d", len(rows))
	}
	// Newest first: the last two seeded rows, in reverse insertion order.
	if rows[0].ID != ids[4] || rows[1].ID != ids[3] {
		t.Fatalf("List: expected ids [%d %d], got [%d %d]", ids[4], ids[3], rows[0].ID, rows[1].ID)
	}

	rows, total, err = repo.List(ctx, nil, 2, 4)
	if err != nil {
		t.Fatalf("List offset: %v", err)
	}
	if total != 5 || len(rows) != 1 || rows[0].ID != ids[0] {
		t.Fatalf("List offset: expected last page with oldest row, got total=%d len=%d", total, len(rows))
	}
}

func TestSubmissionRepoStats(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewSubmissionRepo(db, testutil.Logger(t))

	empty, err := repo.Stats(ctx, nil)
	if err != nil {
		t.Fatalf("Stats empty: %v", err)
	}
	if empty.Total != 0 || empty.AverageRating != 0 || len(empty.Distribution) != 0 {
		t.Fatalf("Stats empty: expected zero stats, got %+v", empty)
	}

	now := time.Now().UTC()
	for _, rating := range []int{5, 5, 4, 2} {
		testutil.SeedSubmission(t, ctx, db, rating, now)
	}

	stats, err := repo.Stats(ctx, nil)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 4 {
		t.Fatalf("Stats: expected total 4, got %d", stats.Total)
	}
	if stats.AverageRating != 4.0 {
		t.Fatalf("Stats: expected average 4.0, got %v", stats.AverageRating)
	}
	want := map[int]int64{5: 2, 4: 1, 2: 1}
	if len(stats.Distribution) != len(want) {
		t.Fatalf("Stats: expected distribution %v, got %v", want, stats.Distribution)
	}
	for rating, count := range want {
		if stats.Distribution[rating] != count {
			t.Fatalf("Stats: expected %d submissions with rating %d, got %d", count, rating, stats.Distribution[rating])
		}
	}
}

func TestSubmissionRepoStatsRounding(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewSubmissionRepo(db, testutil.Logger(t))

	now := time.Now().UTC()
	for _, rating := range []int{5, 4, 4} {
		testutil.SeedSubmission(t, ctx, db, rating, now)
	}

	stats, err := repo.Stats(ctx, nil)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	// 13/3 = 4.333... rounds to two decimals.
	if stats.AverageRating != 4.33 {
		t.Fatalf("Stats: expected average 4.33, got %v", stats.AverageRating)
	}
}
