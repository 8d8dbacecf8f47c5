package models

// ChatTurn is a single entry of the conversation history sent along with a
// RAG query so the backend can answer follow-up questions in context.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type RagQueryRequest struct {
	Query               string     `json:"query" validate:"required"`
	CourseID            int64      `json:"course_id" validate:"required"`
	ConversationHistory []ChatTurn `json:"conversation_history"`
	MaterialIDs         []int64    `json:"material_ids,omitempty"`
}

type SourceDocument struct {
	Content  string         `json:"content"`
	Page     *int           `json:"page"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

type RagQueryResponse struct {
	Answer             string           `json:"answer"`
	Sources            []SourceDocument `json:"sources"`
	Confidence         float64          `json:"confidence"`
	ModerationPassed   bool             `json:"moderation_passed"`
	ModerationWarnings []string         `json:"moderation_warnings"`
}

type RagHealth struct {
	Status      string `json:"status"`
	Ollama      string `json:"ollama,omitempty"`
	VectorStore string `json:"vector_store,omitempty"`
}
