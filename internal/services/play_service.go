package services

import (
	"context"

	"gorm.io/datatypes"

	"snapquiz/internal/models/db_models"
	"snapquiz/internal/models/response_models"
	"snapquiz/internal/repositories"
	"snapquiz/pkg/utils"
)

type PlayServiceInterface interface {
	GetQuizBySlug(ctx context.Context, slug string) (*response_models.PlayQuizResponse, error)
	SubmitAnswers(ctx context.Context, slug string, answers map[string]string) (*response_models.SubmitResultResponse, error)
}

type PlayService struct {
	quizRepo    repositories.QuizRepository
	attemptRepo repositories.AttemptRepository
}

func NewPlayService(quizRepo repositories.QuizRepository, attemptRepo repositories.AttemptRepository) PlayServiceInterface {
	return &PlayService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *PlayService) GetQuizBySlug(ctx context.Context, slug string) (*response_models.PlayQuizResponse, error) {
	quiz, questions, err := s.findPlayableQuiz(ctx, slug)
	if err != nil {
		return nil, err
	}

	response := &response_models.PlayQuizResponse{
		ID:          quiz.ID.String(),
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   make([]response_models.PlayQuestion, 0, len(questions)),
		FinalPage:   quiz.FinalPage.Data(),
	}

	// Correctness flags stay server-side.
	for _, question := range questions {
		playQuestion := response_models.PlayQuestion{
			ID:      question.ID.String(),
			Text:    question.Text,
			Order:   question.Position,
			Options: make([]response_models.PlayOption, 0, len(question.Options)),
		}
		for _, option := range question.Options {
			playQuestion.Options = append(playQuestion.Options, response_models.PlayOption{
				ID:    option.ID.String(),
				Text:  option.Text,
				Order: option.Position,
			})
		}
		response.Questions = append(response.Questions, playQuestion)
	}

	return response, nil
}

func (s *PlayService) SubmitAnswers(ctx context.Context, slug string, answers map[string]string) (*response_models.SubmitResultResponse, error) {
	quiz, questions, err := s.findPlayableQuiz(ctx, slug)
	if err != nil {
		return nil, err
	}

	if answers == nil {
		answers = map[string]string{}
	}

	result := ScoreAnswers(questions, answers)

	attempt := &db_models.Attempt{
		QuizID:  quiz.ID,
		Answers: datatypes.NewJSONType(answers),
		Score:   result.Score,
		Total:   result.Total,
	}
	if err := s.attemptRepo.Insert(ctx, attempt); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SubmitResultResponse{
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		FinalPage:  quiz.FinalPage.Data(),
	}, nil
}

func (s *PlayService) findPlayableQuiz(ctx context.Context, slug string) (*db_models.Quiz, []db_models.Question, error) {
	quiz, err := s.quizRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, nil, utils.ErrQuizNotFound
	}
	if !quiz.IsPublic {
		return nil, nil, utils.ErrQuizPrivate
	}

	questions, err := s.quizRepo.QuestionsWithOptions(ctx, quiz.ID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	return quiz, questions, nil
}
