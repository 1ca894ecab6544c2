package request_models

// ChatMessage is one turn of the AI chat transcript the client hands us.
// Parts are concatenated in order; only assistant messages carry itinerary text.
type ChatMessage struct {
	Role  string   `json:"role" binding:"required"`
	Parts []string `json:"parts" binding:"required"`
}

type ExtractRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
}

type CreateTripRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
}
