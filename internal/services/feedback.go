package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/feedback-backend/internal/logger"
	"github.com/yungbote/feedback-backend/internal/repos"
	"github.com/yungbote/feedback-backend/internal/types"
)

const (
	minReviewLength = 10
	maxReviewLength = 5000

	callTypeResponse = "response"
	callTypeSummary  = "summary"
	callTypeActions  = "actions"
)

type FeedbackService interface {
	Submit(ctx context.Context, rating int, review string) (*types.Submission, error)
	GetSubmission(ctx context.Context, id int64) (*types.Submission, error)
	ListSubmissions(ctx context.Context, limit, offset int) ([]*types.Submission, int64, error)
	Stats(ctx context.Context) (*repos.SubmissionStats, error)
}

type feedbackService struct {
	db               *gorm.DB
	log              *logger.Logger
	submissionRepo   repos.SubmissionRepo
	aiCallLogRepo    repos.AICallLogRepo
	completionClient CompletionClient
}

func NewFeedbackService(
	db *gorm.DB,
	baseLog *logger.Logger,
	submissionRepo repos.SubmissionRepo,
	aiCallLogRepo repos.AICallLogRepo,
	completionClient CompletionClient,
) FeedbackService {
	serviceLog := baseLog.With("service", "FeedbackService")
	return &feedbackService{
		db:               db,
		log:              serviceLog,
		submissionRepo:   submissionRepo,
		aiCallLogRepo:    aiCallLogRepo,
		completionClient: completionClient,
	}
}

type generationResult struct {
	callType string
	prompt   string
	text     string
	usage    []byte
	err      error
}

// generate runs one completion call, converting failure into the stored
// placeholder so an upstream outage never drops user data.
func (fs *feedbackService) generate(ctx context.Context, callType, kind, prompt string, temperature float64, maxTokens int) generationResult {
	gen, err := fs.completionClient.Generate(ctx, prompt, temperature, maxTokens)
	if err != nil {
		fs.log.Warn("Completion call failed, storing placeholder", "call_type", callType, "error", err)
		return generationResult{
			callType: callType,
			prompt:   prompt,
			text:     fmt.Sprintf("Error generating %s: %v", kind, err),
			err:      err,
		}
	}
	return generationResult{callType: callType, prompt: prompt, text: gen.Text, usage: gen.Usage}
}

func (fs *feedbackService) Submit(ctx context.Context, rating int, review string) (*types.Submission, error) {
	if rating < 1 || rating > 5 {
		return nil, newValidationError("invalid_rating", "Rating must be between 1 and 5")
	}
	// Bounds count characters, not bytes: multibyte reviews measure the
	// same as their visible length.
	if utf8.RuneCountInString(strings.TrimSpace(review)) < minReviewLength {
		return nil, newValidationError("review_too_short", "Review must be at least 10 characters")
	}
	if utf8.RuneCountInString(review) > maxReviewLength {
		return nil, newValidationError("review_too_long", "Review must be less than 5000 characters")
	}

	// The three generations are independent; run them concurrently and
	// join before persisting. Each arm converts its own failure into
	// placeholder text, so the group never carries an error.
	var response, summary, actions generationResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		response = fs.generate(gctx, callTypeResponse, "response", buildResponsePrompt(review, rating), responseTemperature, responseMaxTokens)
		return nil
	})
	g.Go(func() error {
		summary = fs.generate(gctx, callTypeSummary, "summary", buildSummaryPrompt(review), summaryTemperature, summaryMaxTokens)
		return nil
	})
	g.Go(func() error {
		actions = fs.generate(gctx, callTypeActions, "actions", buildActionsPrompt(review, rating), actionsTemperature, actionsMaxTokens)
		return nil
	})
	_ = g.Wait()

	submission := &types.Submission{
		UserRating:         rating,
		UserReview:         review,
		AIResponse:         response.text,
		AISummary:          summary.text,
		RecommendedActions: actions.text,
		CreatedAt:          time.Now().UTC(),
	}
	if err := fs.submissionRepo.Create(ctx, nil, submission); err != nil {
		fs.log.Error("Submit failed to persist submission", "error", err)
		return nil, fmt.Errorf("create submission: %w", err)
	}

	fs.auditCalls(ctx, submission.ID, []generationResult{response, summary, actions})

	return submission, nil
}

func (fs *feedbackService) auditCalls(ctx context.Context, submissionID int64, results []generationResult) {
	if fs.aiCallLogRepo == nil {
		return
	}
	now := time.Now().UTC()
	logs := make([]*types.AICallLog, 0, len(results))
	for _, res := range results {
		usage := res.usage
		if len(usage) == 0 {
			usage = []byte("{}")
		}
		entry := &types.AICallLog{
			SubmissionID: &submissionID,
			CallType:     res.callType,
			Model:        fs.completionClient.Model(),
			Prompt:       res.prompt,
			Response:     res.text,
			Success:      res.err == nil,
			Usage:        datatypes.JSON(usage),
			CreatedAt:    now,
		}
		if res.err != nil {
			entry.Error = res.err.Error()
		}
		logs = append(logs, entry)
	}
	if err := fs.aiCallLogRepo.Create(ctx, nil, logs); err != nil {
		fs.log.Warn("Failed to write AI call audit log", "error", err)
	}
}

func (fs *feedbackService) GetSubmission(ctx context.Context, id int64) (*types.Submission, error) {
	submission, err := fs.submissionRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("load submission: %w", err)
	}
	return submission, nil
}

func (fs *feedbackService) ListSubmissions(ctx context.Context, limit, offset int) ([]*types.Submission, int64, error) {
	submissions, total, err := fs.submissionRepo.List(ctx, nil, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, total, nil
}

func (fs *feedbackService) Stats(ctx context.Context) (*repos.SubmissionStats, error) {
	stats, err := fs.submissionRepo.Stats(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}
