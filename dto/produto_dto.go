package dto

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kamuz-01/Sistema-Feira/models"
)

// Preco accepts both a JSON number and a decimal string ("5.50"), the
// two encodings clients of the original API produce for prices.
type Preco float64

func (p *Preco) UnmarshalJSON(data []byte) error {
	raw := data
	if len(raw) >= 2 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = []byte(s)
	}
	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("preço inválido: %s", string(data))
	}
	*p = Preco(value)
	return nil
}

// Float64 returns the plain value for storage
func (p Preco) Float64() float64 {
	return float64(p)
}

// ProdutoRequest represents the full write payload of a product.
// The owning producer is never accepted from the client; it is always
// resolved from the authenticated identity. Feira is validated in the
// service so its errors come back keyed by field.
type ProdutoRequest struct {
	Nome  string `json:"nome" binding:"required,max=120"`
	Preco *Preco `json:"preco" binding:"required,gte=0"`
	Feira uint   `json:"feira"`
}

// Patch converts a full write into the sparse form used by the service
func (r ProdutoRequest) Patch() ProdutoPatchRequest {
	return ProdutoPatchRequest{Nome: &r.Nome, Preco: r.Preco, Feira: &r.Feira}
}

// ProdutoPatchRequest carries a sparse update; only the fields present
// in the payload are applied
type ProdutoPatchRequest struct {
	Nome  *string `json:"nome" binding:"omitempty,max=120"`
	Preco *Preco  `json:"preco" binding:"omitempty,gte=0"`
	Feira *uint   `json:"feira"`
}

// ProdutoFilter narrows a product listing
type ProdutoFilter struct {
	Nome        string
	PrecoMax    *float64
	OwnerUserID uint
}

// ProdutoResponse is the read shape: market id plus embedded market and
// producer details
type ProdutoResponse struct {
	ID            uint             `json:"id"`
	Nome          string           `json:"nome"`
	Preco         float64          `json:"preco"`
	Feira         uint             `json:"feira"`
	FeiraDetalhes models.Feira     `json:"feira_detalhes"`
	Prod          ProdutorResponse `json:"prod"`
}

// NewProdutoResponse maps a product (with feira and produtor preloaded)
// to the wire shape
func NewProdutoResponse(p models.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Preco:         p.Preco,
		Feira:         p.FeiraID,
		FeiraDetalhes: p.Feira,
		Prod:          NewProdutorResponse(p.Prod),
	}
}

// NewProdutoResponses maps a product list to the wire shape
func NewProdutoResponses(produtos []models.Produto) []ProdutoResponse {
	responses := make([]ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		responses = append(responses, NewProdutoResponse(p))
	}
	return responses
}
