package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"snapquiz/internal/models/db_models"
)

type AttemptRepository interface {
	Insert(ctx context.Context, attempt *db_models.Attempt) error
	CountByQuiz(ctx context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{
		db: db,
	}
}

func (r *attemptRepository) Insert(ctx context.Context, attempt *db_models.Attempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) CountByQuiz(ctx context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(quizIDs))
	if len(quizIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		QuizID uuid.UUID
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Attempt{}).
		Select("quiz_id, COUNT(*) AS n").
		Where("quiz_id IN ?", quizIDs).
		Group("quiz_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.QuizID] = row.N
	}
	return counts, nil
}
