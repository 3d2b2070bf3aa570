package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"snapquiz/internal/models/db_models"
	"snapquiz/internal/models/response_models"
	"snapquiz/pkg/utils"
)

type fakePlayService struct {
	quiz   *response_models.PlayQuizResponse
	result *response_models.SubmitResultResponse
	err    error

	lastSlug    string
	lastAnswers map[string]string
}

func (f *fakePlayService) GetQuizBySlug(_ context.Context, slug string) (*response_models.PlayQuizResponse, error) {
	f.lastSlug = slug
	if f.err != nil {
		return nil, f.err
	}
	return f.quiz, nil
}

func (f *fakePlayService) SubmitAnswers(_ context.Context, slug string, answers map[string]string) (*response_models.SubmitResultResponse, error) {
	f.lastSlug = slug
	f.lastAnswers = answers
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newPlayRouter(service *fakePlayService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewPlayController(service)
	r.GET("/play/:slug", controller.GetQuiz)
	r.POST("/play/:slug/submit", controller.SubmitAnswers)
	return r
}

func TestPlayGetQuiz(t *testing.T) {
	service := &fakePlayService{
		quiz: &response_models.PlayQuizResponse{
			ID:    "quiz-1",
			Title: "Capitals",
			Questions: []response_models.PlayQuestion{
				{ID: "q1", Text: "Capital of France?", Options: []response_models.PlayOption{
					{ID: "o1", Text: "Paris"},
					{ID: "o2", Text: "Lyon", Order: 1},
				}},
			},
			FinalPage: db_models.DefaultFinalPage(),
		},
	}
	router := newPlayRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/play/abc123XY", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if service.lastSlug != "abc123XY" {
		t.Fatalf("slug = %q, want abc123XY", service.lastSlug)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Capital of France?") {
		t.Fatalf("question missing from response: %s", body)
	}
	if strings.Contains(body, "isCorrect") {
		t.Fatalf("correctness flag leaked into the play view: %s", body)
	}
}

func TestPlayGetQuizNotFound(t *testing.T) {
	router := newPlayRouter(&fakePlayService{err: utils.ErrQuizNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/play/missing1", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestPlayGetQuizPrivate(t *testing.T) {
	router := newPlayRouter(&fakePlayService{err: utils.ErrQuizPrivate})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/play/private1", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestPlaySubmitAnswers(t *testing.T) {
	service := &fakePlayService{
		result: &response_models.SubmitResultResponse{Score: 2, Total: 3, Percentage: 67, FinalPage: db_models.DefaultFinalPage()},
	}
	router := newPlayRouter(service)

	body := `{"answers":{"q1":"o1","q2":"o4"}}`
	req := httptest.NewRequest(http.MethodPost, "/play/abc123XY/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if service.lastAnswers["q1"] != "o1" || service.lastAnswers["q2"] != "o4" {
		t.Fatalf("answers not forwarded: %v", service.lastAnswers)
	}
	if !strings.Contains(w.Body.String(), `"percentage":67`) {
		t.Fatalf("result missing from response: %s", w.Body.String())
	}
}

func TestPlaySubmitMalformedBody(t *testing.T) {
	service := &fakePlayService{}
	router := newPlayRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/play/abc123XY/submit", strings.NewReader(`{"answers": "nope"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if service.lastAnswers != nil {
		t.Fatalf("malformed payload reached the service")
	}
}

func TestPlaySubmitEmptyAnswers(t *testing.T) {
	service := &fakePlayService{
		result: &response_models.SubmitResultResponse{Total: 4, FinalPage: db_models.DefaultFinalPage()},
	}
	router := newPlayRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/play/abc123XY/submit", strings.NewReader(`{"answers":{}}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("empty answers map must be accepted, got %d", w.Code)
	}
}
