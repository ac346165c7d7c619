package models

// Produtor is a producer profile, one per user
type Produtor struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      uint   `json:"-" gorm:"uniqueIndex;not null"`
	User        User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	NomeFazenda string `json:"nome_fazenda" gorm:"size:120;not null"`
	Cidade      string `json:"cidade" gorm:"size:120;not null"`
}

// TableName keeps the original schema table name
func (Produtor) TableName() string {
	return "produtor"
}

// OwnerUserID implements policy.Ownable
func (p *Produtor) OwnerUserID() uint {
	return p.UserID
}
