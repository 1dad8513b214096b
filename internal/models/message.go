package models

// Role identifies who produced a transcript message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleError     Role = "error"
)

// Message is one entry of the chat transcript.
// Prediction is set only for diagnosis cards; Text is ignored for those.
type Message struct {
	Role       Role
	Text       string
	Prediction *Prediction
}

// UserMessage builds a message typed by the user
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// AssistantMessage builds a plain assistant reply
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text}
}

// ErrorMessage builds an error-styled message for a server-reported error
func ErrorMessage(serverError string) Message {
	return Message{Role: RoleError, Text: "Error: " + serverError}
}

// PredictionMessage builds a diagnosis card
func PredictionMessage(p *Prediction) Message {
	return Message{Role: RoleAssistant, Prediction: p}
}

// IsCard reports whether the message renders as a prediction card
func (m Message) IsCard() bool {
	return m.Prediction != nil
}
