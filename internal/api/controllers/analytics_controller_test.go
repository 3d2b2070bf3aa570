package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"snapquiz/internal/models/request_models"
	"snapquiz/internal/models/response_models"
)

type fakeAnalyticsService struct {
	report *response_models.AnalyticsReport
	err    error

	lastClick  *request_models.RecordClickRequest
	lastUserID string
}

func (f *fakeAnalyticsService) RecordClick(_ context.Context, request request_models.RecordClickRequest) error {
	f.lastClick = &request
	return f.err
}

func (f *fakeAnalyticsService) BuildReport(_ context.Context, userID string) (*response_models.AnalyticsReport, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func newAnalyticsRouter(service *fakeAnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewAnalyticsController(service)
	r.POST("/analytics/click", controller.RecordClick)
	r.GET("/analytics", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		controller.GetReport(c)
	})
	return r
}

func TestRecordClick(t *testing.T) {
	service := &fakeAnalyticsService{}
	router := newAnalyticsRouter(service)

	body := `{"quizId":"a2e8b6a2-4a7e-4f3a-9a59-0a5f6f0a1b2c","buttonUrl":"https://example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/analytics/click", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if service.lastClick == nil || service.lastClick.ButtonURL != "https://example.com" {
		t.Fatalf("click not forwarded: %+v", service.lastClick)
	}
}

func TestRecordClickMissingQuizID(t *testing.T) {
	service := &fakeAnalyticsService{}
	router := newAnalyticsRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/analytics/click", strings.NewReader(`{"buttonUrl":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if service.lastClick != nil {
		t.Fatalf("request without quiz id reached the service")
	}
}

func TestRecordClickBadQuizID(t *testing.T) {
	router := newAnalyticsRouter(&fakeAnalyticsService{})

	req := httptest.NewRequest(http.MethodPost, "/analytics/click", strings.NewReader(`{"quizId":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetReport(t *testing.T) {
	service := &fakeAnalyticsService{
		report: &response_models.AnalyticsReport{
			TotalClicks:   5,
			TotalAttempts: 5,
			QuizAnalytics: []response_models.QuizAnalytics{
				{ID: "quiz-1", Title: "first", Clicks: 5, Attempts: 2, ConversionRate: 250},
			},
		},
	}
	router := newAnalyticsRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if service.lastUserID != "user-1" {
		t.Fatalf("user id = %q, want user-1", service.lastUserID)
	}
	if !strings.Contains(w.Body.String(), `"conversionRate":250`) {
		t.Fatalf("report missing from response: %s", w.Body.String())
	}
}
