package playfx

import (
	"go.uber.org/fx"
	"snapquiz/internal/repositories"
	"snapquiz/internal/services"
)

var Module = fx.Provide(
	providePlayService)

func providePlayService(quizRepo repositories.QuizRepository, attemptRepo repositories.AttemptRepository) services.PlayServiceInterface {
	return services.NewPlayService(quizRepo, attemptRepo)
}
