package response_models

type QuizAnalytics struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Clicks   int64  `json:"clicks"`
	Attempts int64  `json:"attempts"`
	// ConversionRate is round(clicks/attempts*100). The ratio direction is
	// intentional: it measures completion-page clicks per attempt.
	ConversionRate int64 `json:"conversionRate"`
}

type AnalyticsReport struct {
	TotalClicks   int64           `json:"totalClicks"`
	TotalAttempts int64           `json:"totalAttempts"`
	QuizAnalytics []QuizAnalytics `json:"quizAnalytics"`
}
