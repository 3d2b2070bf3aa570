package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"snapquiz/internal/models/db_models"
)

type LinkClickRepository interface {
	Insert(ctx context.Context, click *db_models.LinkClick) error
	CountByQuiz(ctx context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type linkClickRepository struct {
	db *gorm.DB
}

func NewLinkClickRepository(db *gorm.DB) LinkClickRepository {
	return &linkClickRepository{
		db: db,
	}
}

func (r *linkClickRepository) Insert(ctx context.Context, click *db_models.LinkClick) error {
	return r.db.WithContext(ctx).Create(click).Error
}

func (r *linkClickRepository) CountByQuiz(ctx context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(quizIDs))
	if len(quizIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		QuizID uuid.UUID
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.LinkClick{}).
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
