package dto

import "github.com/kamuz-01/Sistema-Feira/models"

// ProdutorRequest represents the full write payload of a producer profile
type ProdutorRequest struct {
	NomeFazenda string `json:"nome_fazenda" binding:"required,max=120"`
	Cidade      string `json:"cidade" binding:"required,max=120"`
}

// Patch converts a full write into the sparse form used by the service
func (r ProdutorRequest) Patch() ProdutorPatchRequest {
	return ProdutorPatchRequest{NomeFazenda: &r.NomeFazenda, Cidade: &r.Cidade}
}

// ProdutorPatchRequest carries a sparse update; only the fields present
// in the payload are applied
type ProdutorPatchRequest struct {
	NomeFazenda *string `json:"nome_fazenda" binding:"omitempty,max=120"`
	Cidade      *string `json:"cidade" binding:"omitempty,max=120"`
}

// ProdutorResponse includes the derived, read-only username
type ProdutorResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	NomeFazenda string `json:"nome_fazenda"`
	Cidade      string `json:"cidade"`
}

// NewProdutorResponse maps a producer (with its user preloaded) to the wire shape
func NewProdutorResponse(p models.Produtor) ProdutorResponse {
	return ProdutorResponse{
		ID:          p.ID,
		Username:    p.User.Username,
		NomeFazenda: p.NomeFazenda,
		Cidade:      p.Cidade,
	}
}

// NewProdutorResponses maps a producer list to the wire shape
func NewProdutorResponses(produtores []models.Produtor) []ProdutorResponse {
	responses := make([]ProdutorResponse, 0, len(produtores))
	for _, p := range produtores {
		responses = append(responses, NewProdutorResponse(p))
	}
	return responses
}
