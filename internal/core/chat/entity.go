package chat

import (
	"strings"
	"time"
)

// ChatRequest is one inbound chat message bound to a session.
type ChatRequest struct {
	SessionID string
	Message   string
}

// ChatResult is the reply to a chat message. Outcome is ports.OutcomeCompleted
// when the completion service answered and ports.OutcomeFallback otherwise.
type ChatResult struct {
	Response string
	Topic    Topic
	Outcome  string
}

// InformationRequest asks for a structured write-up about a query.
type InformationRequest struct {
	Topic InformationTopic
	Query string
}

// Normalize trims the query and maps unknown topics to InformationGeneral.
func (r *InformationRequest) Normalize() {
	r.Query = strings.TrimSpace(r.Query)
	for _, known := range InformationTopics {
		if r.Topic == known {
			return
		}
	}
	r.Topic = InformationGeneral
}

// FarmingInformation is the structured answer returned by the completion service.
type FarmingInformation struct {
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	Details        string `json:"details"`
	Recommendation string `json:"recommendation"`
}

// HistoryEntry is a past exchange as shown to the session that made it.
type HistoryEntry struct {
	UserMessage string
	BotResponse string
	Timestamp   time.Time
}
