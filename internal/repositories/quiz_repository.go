package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"snapquiz/internal/models/db_models"
)

type QuizRepository interface {
	Insert(ctx context.Context, quiz *db_models.Quiz) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Quiz, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Quiz, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]db_models.Quiz, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	QuestionsWithOptions(ctx context.Context, quizID uuid.UUID) ([]db_models.Question, error)
	ReplaceQuestions(ctx context.Context, quizID uuid.UUID, questions []db_models.Question) error
	CountQuestionsByQuiz(ctx context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{
		db: db,
	}
}

func (r *quizRepository) Insert(ctx context.Context, quiz *db_models.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *quizRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Quiz, error) {
	var quiz db_models.Quiz
	err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &quiz, nil
}

func (r *quizRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Quiz, error) {
	var quiz db_models.Quiz
	err := r.db.WithContext(ctx).First(&quiz, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &quiz, nil
}

func (r *quizRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Quiz{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *quizRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]db_models.Quiz, error) {
	var quizzes []db_models.Quiz
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("updated_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Quiz{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the quiz row itself; questions, options, attempts and
// link clicks go with it through the FK cascades.
func (r *quizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Delete(&db_models.Quiz{}, "id = ?", id).Error
}

func (r *quizRepository) QuestionsWithOptions(ctx context.Context, quizID uuid.UUID) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("quiz_id = ?", quizID).
		Order("position ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ReplaceQuestions swaps the quiz's whole question set in one transaction:
// delete everything, reinsert the new rows with their options.
func (r *quizRepository) ReplaceQuestions(ctx context.Context, quizID uuid.UUID, questions []db_models.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("quiz_id = ?", quizID).
			Delete(&db_models.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

func (r *quizRepository) CountQuestionsByQuiz(ctx context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(quizIDs))
	if len(quizIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		QuizID uuid.UUID
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Question{}).
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
