package models

// Produto is a priced product linked to one producer and one market
type Produto struct {
	ID      uint     `json:"id" gorm:"primaryKey"`
	Nome    string   `json:"nome" gorm:"size:120;not null"`
	Preco   float64  `json:"preco" gorm:"type:decimal(8,2);not null"`
	ProdID  uint     `json:"-" gorm:"index;not null"`
	Prod    Produtor `json:"prod" gorm:"foreignKey:ProdID;constraint:OnDelete:CASCADE"`
	FeiraID uint     `json:"feira" gorm:"index;not null"`
	Feira   Feira    `json:"feira_detalhes" gorm:"foreignKey:FeiraID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the original schema table name
func (Produto) TableName() string {
	return "produto"
}

// OwnerUserID implements policy.Ownable. The owning user is reached
// through the producer relation, which repositories always preload.
func (p *Produto) OwnerUserID() uint {
	return p.Prod.UserID
}
