package dto

type KnowledgeQueryRequest struct {
	Query  string `json:"query" validate:"required"`
	Domain string `json:"domain"`
	TopK   int    `json:"top_k" validate:"omitempty,min=1,max=20"`
}

type KnowledgeResultResponse struct {
	Title      string  `json:"title"`
	Text       string  `json:"text"`
	Domain     string  `json:"domain"`
	Similarity float32 `json:"similarity"`
}

type KnowledgeReloadResponse struct {
	Documents int `json:"documents"`
}
