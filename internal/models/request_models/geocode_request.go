package request_models

type ResolveRequest struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Destination string `json:"destination" binding:"required"`
}

type PlaceQuery struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
}

type ResolveBatchRequest struct {
	Destination string       `json:"destination" binding:"required"`
	Places      []PlaceQuery `json:"places" binding:"required"`
}
