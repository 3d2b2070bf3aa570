package services

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"snapquiz/internal/models/db_models"
	"snapquiz/internal/models/request_models"
	"snapquiz/internal/models/response_models"
	"snapquiz/internal/repositories"
	"snapquiz/pkg/utils"
)

type AnalyticsServiceInterface interface {
	RecordClick(ctx context.Context, request request_models.RecordClickRequest) error
	BuildReport(ctx context.Context, userID string) (*response_models.AnalyticsReport, error)
}

type AnalyticsService struct {
	quizRepo      repositories.QuizRepository
	attemptRepo   repositories.AttemptRepository
	linkClickRepo repositories.LinkClickRepository
}

func NewAnalyticsService(
	quizRepo repositories.QuizRepository,
	attemptRepo repositories.AttemptRepository,
	linkClickRepo repositories.LinkClickRepository,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		quizRepo:      quizRepo,
		attemptRepo:   attemptRepo,
		linkClickRepo: linkClickRepo,
	}
}

func (s *AnalyticsService) RecordClick(ctx context.Context, request request_models.RecordClickRequest) error {
	quizID, err := uuid.Parse(request.QuizID)
	if err != nil {
		return utils.ErrQuizNotFound
	}

	quiz, err := s.quizRepo.FindByID(ctx, quizID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if quiz == nil {
		return utils.ErrQuizNotFound
	}

	click := &db_models.LinkClick{
		QuizID:    quizID,
		ButtonURL: request.ButtonURL,
	}
	if err := s.linkClickRepo.Insert(ctx, click); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// BuildReport aggregates clicks and attempts across every quiz the caller
// owns. The conversion rate is clicks per attempt, kept as-is from the
// product's definition.
func (s *AnalyticsService) BuildReport(ctx context.Context, userID string) (*response_models.AnalyticsReport, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	quizzes, err := s.quizRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	report := &response_models.AnalyticsReport{
		QuizAnalytics: []response_models.QuizAnalytics{},
	}
	if len(quizzes) == 0 {
		return report, nil
	}

	quizIDs := make([]uuid.UUID, 0, len(quizzes))
	for _, quiz := range quizzes {
		quizIDs = append(quizIDs, quiz.ID)
	}

	clickCounts, err := s.linkClickRepo.CountByQuiz(ctx, quizIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	attemptCounts, err := s.attemptRepo.CountByQuiz(ctx, quizIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	for _, quiz := range quizzes {
		clicks := clickCounts[quiz.ID]
		attempts := attemptCounts[quiz.ID]

		var conversionRate int64
		if attempts > 0 {
			conversionRate = int64(math.Round(float64(clicks) / float64(attempts) * 100))
		}

		report.QuizAnalytics = append(report.QuizAnalytics, response_models.QuizAnalytics{
			ID:             quiz.ID.String(),
			Title:          quiz.Title,
			Clicks:         clicks,
			Attempts:       attempts,
			ConversionRate: conversionRate,
		})
		report.TotalClicks += clicks
		report.TotalAttempts += attempts
	}

	sort.SliceStable(report.QuizAnalytics, func(i, j int) bool {
		return report.QuizAnalytics[i].Clicks > report.QuizAnalytics[j].Clicks
	})

	return report, nil
}
