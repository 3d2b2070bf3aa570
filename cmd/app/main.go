package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"snapquiz/cmd/fx/accountfx"
	"snapquiz/cmd/fx/analyticsfx"
	"snapquiz/cmd/fx/controllersfx"
	"snapquiz/cmd/fx/dbfx"
	"snapquiz/cmd/fx/playfx"
	"snapquiz/cmd/fx/quizfx"
	"snapquiz/internal/api/controllers"
	"snapquiz/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		quizfx.Module,
		playfx.Module,
		analyticsfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideLogger),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	return logger
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	logger *zap.Logger,
	accountController *controllers.AccountController,
	quizController *controllers.QuizController,
	playController *controllers.PlayController,
	analyticsController *controllers.AnalyticsController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(os.Getenv("CORS_ORIGINS")))

	RegisterRoutes(r, accountController, quizController, playController, analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	quizController *controllers.QuizController,
	playController *controllers.PlayController,
	analyticsController *controllers.AnalyticsController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	quizzesGroup := r.Group("/quizzes")
	quizzesGroup.Use(middleware.JWTAuthMiddleware())
	quizzesGroup.GET("", quizController.ListQuizzes)
	quizzesGroup.POST("", quizController.CreateQuiz)
	quizzesGroup.GET("/:id", quizController.GetQuiz)
	quizzesGroup.PUT("/:id", quizController.UpdateQuiz)
	quizzesGroup.DELETE("/:id", quizController.DeleteQuiz)
	quizzesGroup.GET("/:id/export", quizController.ExportQuiz)

	playGroup := r.Group("/play")
	playGroup.GET("/:slug", playController.GetQuiz)
	playGroup.POST("/:slug/submit", playController.SubmitAnswers)

	analyticsGroup := r.Group("/analytics")
	analyticsGroup.POST("/click", analyticsController.RecordClick)
	analyticsGroup.GET("", middleware.JWTAuthMiddleware(), analyticsController.GetReport)
}
