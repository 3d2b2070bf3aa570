package quizfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"snapquiz/internal/repositories"
	"snapquiz/internal/services"
)

var Module = fx.Provide(
	provideQuizService, provideQuizRepo, provideAttemptRepo)

func provideQuizRepo(db *gorm.DB) repositories.QuizRepository {
	return repositories.NewQuizRepository(db)
}

func provideAttemptRepo(db *gorm.DB) repositories.AttemptRepository {
	return repositories.NewAttemptRepository(db)
}

func provideQuizService(quizRepo repositories.QuizRepository, attemptRepo repositories.AttemptRepository) services.QuizServiceInterface {
	return services.NewQuizService(quizRepo, attemptRepo)
}
