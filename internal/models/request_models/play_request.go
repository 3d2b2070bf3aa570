package request_models

// SubmitAnswersRequest maps questionID -> selected optionID. An empty map
// is a valid submission; every question then scores zero.
type SubmitAnswersRequest struct {
	Answers map[string]string `json:"answers"`
}

type RecordClickRequest struct {
	QuizID    string `json:"quizId" binding:"required,uuid4"`
	ButtonURL string `json:"buttonUrl"`
}
