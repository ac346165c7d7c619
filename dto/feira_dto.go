package dto

// FeiraRequest represents the full write payload of a market
type FeiraRequest struct {
	Nome   string `json:"nome" binding:"required,max=120"`
	Cidade string `json:"cidade" binding:"required,max=120"`
	Data   string `json:"data" binding:"required,datetime=2006-01-02"`
}

// Patch converts a full write into the sparse form used by the service
func (r FeiraRequest) Patch() FeiraPatchRequest {
	return FeiraPatchRequest{Nome: &r.Nome, Cidade: &r.Cidade, Data: &r.Data}
}

// FeiraPatchRequest carries a sparse update; only the fields present
// in the payload are applied
type FeiraPatchRequest struct {
	Nome   *string `json:"nome" binding:"omitempty,max=120"`
	Cidade *string `json:"cidade" binding:"omitempty,max=120"`
	Data   *string `json:"data" binding:"omitempty,datetime=2006-01-02"`
}
