package services

import (
	"math"

	"snapquiz/internal/models/db_models"
)

type ScoreResult struct {
	Score      int
	Total      int
	Percentage int
}

// ScoreAnswers grades a submission against the quiz's question set.
// Total is the number of questions that exist at scoring time, not the
// number answered. A question scores one point iff the submitted option id
// belongs to it and is flagged correct; unanswered questions and answers
// pointing at unknown options score zero.
func ScoreAnswers(questions []db_models.Question, answers map[string]string) ScoreResult {
	total := len(questions)
	score := 0

	for _, question := range questions {
		selected, ok := answers[question.ID.String()]
		if !ok || selected == "" {
			continue
		}
		for _, option := range question.Options {
			if option.ID.String() == selected {
				if option.IsCorrect {
					score++
				}
				break
			}
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	return ScoreResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
	}
}
