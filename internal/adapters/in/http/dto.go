package http

// TurnRequest is the webhook payload of one conversation turn: the action
// the dialogue runtime selected, the user's utterance, and the entities its
// NLU pipeline extracted from it.
type TurnRequest struct {
	Action   string          `json:"action"`
	Text     string          `json:"text"`
	Entities []EntityRequest `json:"entities"`
}

// EntityRequest is one extracted entity of the utterance.
type EntityRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// TurnResponse carries the assistant's reply messages, in the order they
// should be uttered.
type TurnResponse struct {
	Messages []string `json:"messages"`
}

// ErrorResponse is the error payload of a failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
