package email

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeSurveyResults = "email:survey-results"

type SurveyResultsPayload struct {
	SessionID string `json:"sessionId"`
	To        string `json:"to"`
}

func NewSurveyResultsTask(sessionID, to string) (*asynq.Task, error) {
	p := SurveyResultsPayload{SessionID: sessionID, To: to}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSurveyResults, b), nil
}
