package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"snapquiz/internal/models/db_models"
)

type fakeQuizRepo struct {
	quizzes   []*db_models.Quiz
	questions map[uuid.UUID][]db_models.Question

	// collideFirst forces SlugExists to report a collision for the first
	// N calls regardless of the candidate.
	collideFirst    int
	slugExistsCalls int
	replaceCalls    int
	updateCalls     int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		questions: make(map[uuid.UUID][]db_models.Question),
	}
}

func (f *fakeQuizRepo) addQuiz(quiz *db_models.Quiz) {
	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	f.quizzes = append(f.quizzes, quiz)
}

func (f *fakeQuizRepo) Insert(_ context.Context, quiz *db_models.Quiz) error {
	f.addQuiz(quiz)
	return nil
}

func (f *fakeQuizRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Quiz, error) {
	for _, quiz := range f.quizzes {
		if quiz.ID == id {
			return quiz, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizRepo) FindBySlug(_ context.Context, slug string) (*db_models.Quiz, error) {
	for _, quiz := range f.quizzes {
		if quiz.Slug == slug {
			return quiz, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	f.slugExistsCalls++
	if f.slugExistsCalls <= f.collideFirst {
		return true, nil
	}
	for _, quiz := range f.quizzes {
		if quiz.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQuizRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]db_models.Quiz, error) {
	var out []db_models.Quiz
	for _, quiz := range f.quizzes {
		if quiz.AuthorID == authorID {
			out = append(out, *quiz)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	f.updateCalls++
	for _, quiz := range f.quizzes {
		if quiz.ID != id {
			continue
		}
		if v, ok := fields["title"]; ok {
			quiz.Title = v.(string)
		}
		if v, ok := fields["description"]; ok {
			quiz.Description = v.(string)
		}
		if v, ok := fields["is_public"]; ok {
			quiz.IsPublic = v.(bool)
		}
		if v, ok := fields["final_page"]; ok {
			quiz.FinalPage = v.(datatypes.JSONType[db_models.FinalPageConfig])
		}
	}
	return nil
}

func (f *fakeQuizRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.quizzes[:0]
	for _, quiz := range f.quizzes {
		if quiz.ID != id {
			kept = append(kept, quiz)
		}
	}
	f.quizzes = kept
	delete(f.questions, id)
	return nil
}

func (f *fakeQuizRepo) QuestionsWithOptions(_ context.Context, quizID uuid.UUID) ([]db_models.Question, error) {
	return f.questions[quizID], nil
}

func (f *fakeQuizRepo) ReplaceQuestions(_ context.Context, quizID uuid.UUID, questions []db_models.Question) error {
	f.replaceCalls++
	for i := range questions {
		if questions[i].ID == uuid.Nil {
			questions[i].ID = uuid.New()
		}
		for j := range questions[i].Options {
			if questions[i].Options[j].ID == uuid.Nil {
				questions[i].Options[j].ID = uuid.New()
			}
		}
	}
	f.questions[quizID] = questions
	return nil
}

func (f *fakeQuizRepo) CountQuestionsByQuiz(_ context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(quizIDs))
	for _, id := range quizIDs {
		if n := len(f.questions[id]); n > 0 {
			counts[id] = int64(n)
		}
	}
	return counts, nil
}

type fakeAttemptRepo struct {
	attempts     []*db_models.Attempt
	countsByQuiz map[uuid.UUID]int64
	insertErr    error
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{
		countsByQuiz: make(map[uuid.UUID]int64),
	}
}

func (f *fakeAttemptRepo) Insert(_ context.Context, attempt *db_models.Attempt) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.attempts = append(f.attempts, attempt)
	f.countsByQuiz[attempt.QuizID]++
	return nil
}

func (f *fakeAttemptRepo) CountByQuiz(_ context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(quizIDs))
	for _, id := range quizIDs {
		if n, ok := f.countsByQuiz[id]; ok {
			counts[id] = n
		}
	}
	return counts, nil
}

type fakeLinkClickRepo struct {
	clicks       []*db_models.LinkClick
	countsByQuiz map[uuid.UUID]int64
}

func newFakeLinkClickRepo() *fakeLinkClickRepo {
	return &fakeLinkClickRepo{
		countsByQuiz: make(map[uuid.UUID]int64),
	}
}

func (f *fakeLinkClickRepo) Insert(_ context.Context, click *db_models.LinkClick) error {
	f.clicks = append(f.clicks, click)
	f.countsByQuiz[click.QuizID]++
	return nil
}

func (f *fakeLinkClickRepo) CountByQuiz(_ context.Context, quizIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(quizIDs))
	for _, id := range quizIDs {
		if n, ok := f.countsByQuiz[id]; ok {
			counts[id] = n
		}
	}
	return counts, nil
}

type fakeAccountRepo struct {
	usersByEmail map[string]*db_models.User
	insertCalls  int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		usersByEmail: make(map[string]*db_models.User),
	}
}

func (f *fakeAccountRepo) Insert(_ context.Context, user *db_models.User) error {
	f.insertCalls++
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	for _, user := range f.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	if user, ok := f.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, nil
}

// newQuestion builds a question with the given correct-flag layout, one
// option per flag, positions in declaration order.
func newQuestion(position int, correct ...bool) db_models.Question {
	question := db_models.Question{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Position:  position,
	}
	for i, isCorrect := range correct {
		question.Options = append(question.Options, db_models.Option{
			BaseModel:  db_models.BaseModel{ID: uuid.New()},
			QuestionID: question.ID,
			IsCorrect:  isCorrect,
			Position:   i,
		})
	}
	return question
}
