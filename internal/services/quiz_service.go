package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"snapquiz/internal/models/db_models"
	"snapquiz/internal/models/request_models"
	"snapquiz/internal/models/response_models"
	"snapquiz/internal/repositories"
	"snapquiz/pkg/utils"
)

type QuizServiceInterface interface {
	ListQuizzes(ctx context.Context, userID string) ([]response_models.QuizSummaryResponse, error)
	CreateQuiz(ctx context.Context, userID string, request request_models.CreateQuizRequest) (*response_models.QuizDetailResponse, error)
	GetQuiz(ctx context.Context, userID string, quizID string) (*response_models.QuizDetailResponse, error)
	UpdateQuiz(ctx context.Context, userID string, quizID string, request request_models.UpdateQuizRequest) (*response_models.QuizDetailResponse, error)
	DeleteQuiz(ctx context.Context, userID string, quizID string) error
	ExportQuiz(ctx context.Context, userID string, quizID string) (*response_models.QuizExport, string, error)
}

type QuizService struct {
	quizRepo    repositories.QuizRepository
	attemptRepo repositories.AttemptRepository
}

func NewQuizService(quizRepo repositories.QuizRepository, attemptRepo repositories.AttemptRepository) QuizServiceInterface {
	return &QuizService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *QuizService) ListQuizzes(ctx context.Context, userID string) ([]response_models.QuizSummaryResponse, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	quizzes, err := s.quizRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	quizIDs := make([]uuid.UUID, 0, len(quizzes))
	for _, quiz := range quizzes {
		quizIDs = append(quizIDs, quiz.ID)
	}

	questionCounts, err := s.quizRepo.CountQuestionsByQuiz(ctx, quizIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	attemptCounts, err := s.attemptRepo.CountByQuiz(ctx, quizIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.QuizSummaryResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, response_models.QuizSummaryResponse{
			ID:            quiz.ID.String(),
			Title:         quiz.Title,
			Description:   quiz.Description,
			Slug:          quiz.Slug,
			IsPublic:      quiz.IsPublic,
			QuestionCount: questionCounts[quiz.ID],
			AttemptCount:  attemptCounts[quiz.ID],
			CreatedAt:     quiz.CreatedAt,
			UpdatedAt:     quiz.UpdatedAt,
		})
	}

	return summaries, nil
}

func (s *QuizService) CreateQuiz(ctx context.Context, userID string, request request_models.CreateQuizRequest) (*response_models.QuizDetailResponse, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	slug, err := s.generateUniqueSlug(ctx)
	if err != nil {
		return nil, err
	}

	isPublic := true
	if request.IsPublic != nil {
		isPublic = *request.IsPublic
	}

	quiz := &db_models.Quiz{
		Title:       request.Title,
		Description: request.Description,
		Slug:        slug,
		IsPublic:    isPublic,
		AuthorID:    authorID,
		FinalPage:   datatypes.NewJSONType(db_models.DefaultFinalPage()),
	}

	if err := s.quizRepo.Insert(ctx, quiz); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildQuizDetail(quiz, nil), nil
}

func (s *QuizService) GetQuiz(ctx context.Context, userID string, quizID string) (*response_models.QuizDetailResponse, error) {
	quiz, err := s.findOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.quizRepo.QuestionsWithOptions(ctx, quiz.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildQuizDetail(quiz, questions), nil
}

func (s *QuizService) UpdateQuiz(ctx context.Context, userID string, quizID string, request request_models.UpdateQuizRequest) (*response_models.QuizDetailResponse, error) {
	quiz, err := s.findOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	// Validate the replacement set before touching anything.
	if request.Questions != nil {
		if err := validateQuestionSet(request.Questions); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if request.Title != nil {
		fields["title"] = *request.Title
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.IsPublic != nil {
		fields["is_public"] = *request.IsPublic
	}
	if request.FinalPage != nil {
		fields["final_page"] = datatypes.NewJSONType(*request.FinalPage)
	}

	if len(fields) > 0 {
		if err := s.quizRepo.UpdateFields(ctx, quiz.ID, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	if request.Questions != nil {
		if err := s.quizRepo.ReplaceQuestions(ctx, quiz.ID, questionRowsFromInput(quiz.ID, request.Questions)); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	updated, err := s.quizRepo.FindByID(ctx, quiz.ID)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	questions, err := s.quizRepo.QuestionsWithOptions(ctx, quiz.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildQuizDetail(updated, questions), nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, userID string, quizID string) error {
	quiz, err := s.findOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return err
	}

	if err := s.quizRepo.Delete(ctx, quiz.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *QuizService) ExportQuiz(ctx context.Context, userID string, quizID string) (*response_models.QuizExport, string, error) {
	quiz, err := s.findOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, "", err
	}

	questions, err := s.quizRepo.QuestionsWithOptions(ctx, quiz.ID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	export := &response_models.QuizExport{
		Title:       quiz.Title,
		Description: quiz.Description,
		IsPublic:    quiz.IsPublic,
		FinalPage:   quiz.FinalPage.Data(),
		Questions:   make([]response_models.ExportQuestion, 0, len(questions)),
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	for _, question := range questions {
		exportQuestion := response_models.ExportQuestion{
			Text:    question.Text,
			Order:   question.Position,
			Options: make([]response_models.ExportOption, 0, len(question.Options)),
		}
		for _, option := range question.Options {
			exportQuestion.Options = append(exportQuestion.Options, response_models.ExportOption{
				Text:      option.Text,
				IsCorrect: option.IsCorrect,
				Order:     option.Position,
			})
		}
		export.Questions = append(export.Questions, exportQuestion)
	}

	return export, quiz.Slug, nil
}

// findOwnedQuiz resolves a quiz id for the calling author. Existence is
// checked before ownership, so a missing quiz is a not-found even for
// callers who never owned it.
func (s *QuizService) findOwnedQuiz(ctx context.Context, userID string, quizID string) (*db_models.Quiz, error) {
	id, err := uuid.Parse(quizID)
	if err != nil {
		return nil, utils.ErrQuizNotFound
	}
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	quiz, err := s.quizRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}
	if quiz.AuthorID != authorID {
		return nil, utils.ErrNotQuizOwner
	}
	return quiz, nil
}

func (s *QuizService) generateUniqueSlug(ctx context.Context) (string, error) {
	for {
		slug := utils.GenerateSlug()
		exists, err := s.quizRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if !exists {
			return slug, nil
		}
	}
}

func validateQuestionSet(questions []request_models.QuestionInput) error {
	for _, question := range questions {
		if question.Text == "" || len(question.Options) < 2 {
			return utils.ErrInvalidQuestionSet
		}
		for _, option := range question.Options {
			if option.Text == "" {
				return utils.ErrInvalidQuestionSet
			}
		}
	}
	return nil
}

func questionRowsFromInput(quizID uuid.UUID, inputs []request_models.QuestionInput) []db_models.Question {
	rows := make([]db_models.Question, 0, len(inputs))
	for _, input := range inputs {
		row := db_models.Question{
			QuizID:   quizID,
			Text:     input.Text,
			Position: input.Order,
			Options:  make([]db_models.Option, 0, len(input.Options)),
		}
		for _, option := range input.Options {
			row.Options = append(row.Options, db_models.Option{
				Text:      option.Text,
				IsCorrect: option.IsCorrect,
				Position:  option.Order,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

func buildQuizDetail(quiz *db_models.Quiz, questions []db_models.Question) *response_models.QuizDetailResponse {
	detail := &response_models.QuizDetailResponse{
		ID:          quiz.ID.String(),
		Title:       quiz.Title,
		Description: quiz.Description,
		Slug:        quiz.Slug,
		IsPublic:    quiz.IsPublic,
		FinalPage:   quiz.FinalPage.Data(),
		Questions:   make([]response_models.QuestionResponse, 0, len(questions)),
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}

	for _, question := range questions {
		questionResponse := response_models.QuestionResponse{
			ID:      question.ID.String(),
			Text:    question.Text,
			Order:   question.Position,
			Options: make([]response_models.OptionResponse, 0, len(question.Options)),
		}
		for _, option := range question.Options {
			questionResponse.Options = append(questionResponse.Options, response_models.OptionResponse{
				ID:        option.ID.String(),
				Text:      option.Text,
				IsCorrect: option.IsCorrect,
				Order:     option.Position,
			})
		}
		detail.Questions = append(detail.Questions, questionResponse)
	}

	return detail
}
