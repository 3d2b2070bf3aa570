package analyticsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"snapquiz/internal/repositories"
	"snapquiz/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsService, provideLinkClickRepo)

func provideLinkClickRepo(db *gorm.DB) repositories.LinkClickRepository {
	return repositories.NewLinkClickRepository(db)
}

func provideAnalyticsService(
	quizRepo repositories.QuizRepository,
	attemptRepo repositories.AttemptRepository,
	linkClickRepo repositories.LinkClickRepository,
) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(quizRepo, attemptRepo, linkClickRepo)
}
